package response

import (
	"time"

	"imoveis_xpto/internal/domain/entities"
	"imoveis_xpto/internal/domain/valueobjects"
)

type ApartmentResponse struct {
	UnitCode    string                 `json:"unit_code"`
	Label       string                 `json:"label,omitempty"`
	Address     string                 `json:"address,omitempty"`
	BaseRent    float64                `json:"base_rent"`
	CleaningFee float64                `json:"cleaning_fee"`
	Status      string                 `json:"status"`
	RentalType  string                 `json:"rental_type"`
	Amenities   valueobjects.Amenities `json:"amenities"`
	ContactInfo string                 `json:"contact_info,omitempty"`
	AirbnbURL   string                 `json:"airbnb_url,omitempty"`

	IsAvailable   bool     `json:"is_available"`
	AvailableFrom *string  `json:"available_from,omitempty"`
	Images        []string `json:"images,omitempty"`

	Metadata MetadataResponse `json:"metadata"`
}

func FromApartment(a *entities.Apartment) ApartmentResponse {
	resp := ApartmentResponse{
		UnitCode:    a.UnitCode,
		Label:       a.Label,
		Address:     a.Address,
		BaseRent:    a.BaseRent,
		CleaningFee: a.CleaningFee,
		Status:      string(a.Status),
		RentalType:  string(a.RentalType),
		Amenities:   a.Amenities,
		ContactInfo: a.ContactInfo,
		AirbnbURL:   a.AirbnbURL,
		IsAvailable: a.IsAvailable,
		Images:      a.Images,
		Metadata:    fromMetadata(a.Metadata),
	}
	if a.AvailableFrom != nil {
		v := a.AvailableFrom.UTC().Format(time.RFC3339)
		resp.AvailableFrom = &v
	}
	return resp
}

func FromApartments(apartments []*entities.Apartment) []ApartmentResponse {
	out := make([]ApartmentResponse, 0, len(apartments))
	for _, a := range apartments {
		out = append(out, FromApartment(a))
	}
	return out
}
