package request

import (
	"strings"
	"time"

	"imoveis_xpto/internal/domain/entities"
	"imoveis_xpto/internal/domain/valueobjects"
	"imoveis_xpto/pkg"
)

type CreateApartmentRequest struct {
	UnitCode    string                  `json:"unit_code" binding:"required"`
	Label       string                  `json:"label"`
	Address     string                  `json:"address"`
	BaseRent    float64                 `json:"base_rent"`
	CleaningFee float64                 `json:"cleaning_fee"`
	RentalType  string                  `json:"rental_type"`
	Amenities   *valueobjects.Amenities `json:"amenities"`
	ContactInfo string                  `json:"contact_info"`
	AirbnbURL   string                  `json:"airbnb_url"`
	Images      []string                `json:"images"`
	Actor       string                  `json:"actor"`
}

func (r CreateApartmentRequest) Validate() error {
	var fields []pkg.FieldError
	if strings.TrimSpace(r.UnitCode) == "" {
		fields = append(fields, pkg.FieldError{Field: "unit_code", Message: "cannot be empty"})
	}
	if r.BaseRent < 0 {
		fields = append(fields, pkg.FieldError{Field: "base_rent", Message: "cannot be negative"})
	}
	if r.CleaningFee < 0 {
		fields = append(fields, pkg.FieldError{Field: "cleaning_fee", Message: "cannot be negative"})
	}
	if len(fields) > 0 {
		return pkg.NewValidationErrorFields(fields)
	}
	return nil
}

func (r CreateApartmentRequest) ToProps() entities.NewApartmentProps {
	return entities.NewApartmentProps{
		UnitCode:    strings.TrimSpace(r.UnitCode),
		Label:       strings.TrimSpace(r.Label),
		Address:     strings.TrimSpace(r.Address),
		BaseRent:    r.BaseRent,
		CleaningFee: r.CleaningFee,
		RentalType:  entities.RentalType(r.RentalType),
		Amenities:   r.Amenities,
		ContactInfo: strings.TrimSpace(r.ContactInfo),
		AirbnbURL:   strings.TrimSpace(r.AirbnbURL),
		Images:      r.Images,
		CreatedBy:   actorOrDefault(r.Actor),
	}
}

type UpdateApartmentRequest struct {
	Label       *string                 `json:"label"`
	Address     *string                 `json:"address"`
	BaseRent    *float64                `json:"base_rent"`
	CleaningFee *float64                `json:"cleaning_fee"`
	RentalType  *string                 `json:"rental_type"`
	Amenities   *valueobjects.Amenities `json:"amenities"`
	ContactInfo *string                 `json:"contact_info"`
	AirbnbURL   *string                 `json:"airbnb_url"`
	Images      []string                `json:"images"`
	Actor       string                  `json:"actor"`
}

func (r UpdateApartmentRequest) Validate() error {
	var fields []pkg.FieldError
	if r.BaseRent != nil && *r.BaseRent < 0 {
		fields = append(fields, pkg.FieldError{Field: "base_rent", Message: "cannot be negative"})
	}
	if r.CleaningFee != nil && *r.CleaningFee < 0 {
		fields = append(fields, pkg.FieldError{Field: "cleaning_fee", Message: "cannot be negative"})
	}
	if len(fields) > 0 {
		return pkg.NewValidationErrorFields(fields)
	}
	return nil
}

func (r UpdateApartmentRequest) ToUpdate() entities.ApartmentUpdate {
	upd := entities.ApartmentUpdate{
		Label:       r.Label,
		Address:     r.Address,
		BaseRent:    r.BaseRent,
		CleaningFee: r.CleaningFee,
		Amenities:   r.Amenities,
		ContactInfo: r.ContactInfo,
		AirbnbURL:   r.AirbnbURL,
		Images:      r.Images,
	}
	if r.RentalType != nil {
		rt := entities.RentalType(*r.RentalType)
		upd.RentalType = &rt
	}
	return upd
}

type ChangeApartmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Actor  string `json:"actor"`
}

func (r ChangeApartmentStatusRequest) Validate() error {
	if strings.TrimSpace(r.Status) == "" {
		return pkg.NewValidationErrorFields([]pkg.FieldError{
			{Field: "status", Message: "cannot be empty"},
		})
	}
	return nil
}

type MarkAvailableRequest struct {
	AvailableFrom *time.Time `json:"available_from"`
	Actor         string     `json:"actor"`
}
