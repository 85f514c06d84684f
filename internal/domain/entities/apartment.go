package entities

import (
	"net/url"
	"strings"
	"time"

	"imoveis_xpto/internal/domain/valueobjects"
	"imoveis_xpto/pkg"
)

type ApartmentStatus string

const (
	ApartmentStatusAvailable   ApartmentStatus = "available"
	ApartmentStatusOccupied    ApartmentStatus = "occupied"
	ApartmentStatusVacant      ApartmentStatus = "vacant"
	ApartmentStatusReserved    ApartmentStatus = "reserved"
	ApartmentStatusMaintenance ApartmentStatus = "maintenance"
	ApartmentStatusInactive    ApartmentStatus = "inactive"
)

var apartmentStatuses = map[ApartmentStatus]struct{}{
	ApartmentStatusAvailable:   {},
	ApartmentStatusOccupied:    {},
	ApartmentStatusVacant:      {},
	ApartmentStatusReserved:    {},
	ApartmentStatusMaintenance: {},
	ApartmentStatusInactive:    {},
}

type RentalType string

const (
	RentalTypeLongTerm RentalType = "long_term"
	RentalTypeAirbnb   RentalType = "airbnb"
	RentalTypeBoth     RentalType = "both"
)

// Apartment is a rentable unit. Storage model:
//   - PK: APARTMENT#<unitCode>
//   - SK: APARTMENT
//   - GSI1 (status lookups): GSI1PK: STATUS#<status>

type Apartment struct {
	UnitCode    string
	Label       string
	Address     string
	BaseRent    float64
	CleaningFee float64
	Status      ApartmentStatus
	RentalType  RentalType
	Amenities   valueobjects.Amenities
	ContactInfo string
	AirbnbURL   string

	IsAvailable   bool
	AvailableFrom *time.Time
	Images        []string

	Metadata valueobjects.EntityMetadata
}

type NewApartmentProps struct {
	UnitCode    string
	Label       string
	Address     string
	BaseRent    float64
	CleaningFee float64
	RentalType  RentalType
	Amenities   *valueobjects.Amenities
	ContactInfo string
	AirbnbURL   string
	Images      []string
	CreatedBy   string
}

func NewApartment(props NewApartmentProps) (*Apartment, error) {
	unitCode := strings.TrimSpace(props.UnitCode)
	if unitCode == "" {
		return nil, pkg.NewValidationError("apartment.unit_code: cannot be empty")
	}
	if strings.TrimSpace(props.Label) == "" {
		return nil, pkg.NewValidationError("apartment.label: cannot be empty")
	}
	if props.BaseRent < 0 {
		return nil, pkg.NewValidationError("apartment.base_rent: cannot be negative")
	}
	if props.CleaningFee < 0 {
		return nil, pkg.NewValidationError("apartment.cleaning_fee: cannot be negative")
	}

	rentalType := props.RentalType
	if rentalType == "" {
		rentalType = RentalTypeLongTerm
	}
	switch rentalType {
	case RentalTypeLongTerm, RentalTypeAirbnb, RentalTypeBoth:
	default:
		return nil, pkg.NewValidationError("apartment.rental_type: unknown type " + string(rentalType))
	}

	airbnbURL := strings.TrimSpace(props.AirbnbURL)
	if airbnbURL != "" {
		parsed, err := url.Parse(airbnbURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return nil, pkg.NewValidationError("apartment.airbnb_url: invalid URL")
		}
	}

	amenities := valueobjects.DefaultAmenities()
	if props.Amenities != nil {
		amenities = *props.Amenities
	}

	return &Apartment{
		UnitCode:    unitCode,
		Label:       strings.TrimSpace(props.Label),
		Address:     strings.TrimSpace(props.Address),
		BaseRent:    props.BaseRent,
		CleaningFee: props.CleaningFee,
		Status:      ApartmentStatusAvailable,
		RentalType:  rentalType,
		Amenities:   amenities,
		ContactInfo: strings.TrimSpace(props.ContactInfo),
		AirbnbURL:   airbnbURL,
		IsAvailable: true,
		Images:      props.Images,
		Metadata:    valueobjects.NewEntityMetadata(props.CreatedBy),
	}, nil
}

func (a *Apartment) PK() string { return ApartmentPartitionKey(a.UnitCode) }
func (a *Apartment) SK() string { return apartmentSortKey }

func (a *Apartment) GSI1PK() string { return "STATUS#" + string(a.Status) }

// ChangeStatus moves the apartment to a new status; same-status changes
// are rejected so callers notice redundant updates.
func (a *Apartment) ChangeStatus(status ApartmentStatus, actor string) error {
	if _, ok := apartmentStatuses[status]; !ok {
		return pkg.NewValidationError("apartment.status: unknown status " + string(status))
	}
	if a.Status == status {
		return pkg.NewBusinessRuleViolation("apartment is already " + string(status))
	}
	a.Status = status
	a.IsAvailable = status == ApartmentStatusAvailable || status == ApartmentStatusVacant
	a.Metadata = a.Metadata.Touch(actor)
	return nil
}

func (a *Apartment) MarkOccupied(actor string) error {
	return a.ChangeStatus(ApartmentStatusOccupied, actor)
}

func (a *Apartment) MarkAvailable(availableFrom *time.Time, actor string) error {
	if err := a.ChangeStatus(ApartmentStatusAvailable, actor); err != nil {
		return err
	}
	a.AvailableFrom = availableFrom
	return nil
}

type ApartmentUpdate struct {
	Label       *string
	Address     *string
	BaseRent    *float64
	CleaningFee *float64
	RentalType  *RentalType
	Amenities   *valueobjects.Amenities
	ContactInfo *string
	AirbnbURL   *string
	Images      []string
}

func (a *Apartment) Update(upd ApartmentUpdate, actor string) error {
	if upd.Label != nil {
		if strings.TrimSpace(*upd.Label) == "" {
			return pkg.NewValidationError("apartment.label: cannot be empty")
		}
		a.Label = strings.TrimSpace(*upd.Label)
	}
	if upd.Address != nil {
		a.Address = strings.TrimSpace(*upd.Address)
	}
	if upd.BaseRent != nil {
		if *upd.BaseRent < 0 {
			return pkg.NewValidationError("apartment.base_rent: cannot be negative")
		}
		a.BaseRent = *upd.BaseRent
	}
	if upd.CleaningFee != nil {
		if *upd.CleaningFee < 0 {
			return pkg.NewValidationError("apartment.cleaning_fee: cannot be negative")
		}
		a.CleaningFee = *upd.CleaningFee
	}
	if upd.RentalType != nil {
		switch *upd.RentalType {
		case RentalTypeLongTerm, RentalTypeAirbnb, RentalTypeBoth:
			a.RentalType = *upd.RentalType
		default:
			return pkg.NewValidationError("apartment.rental_type: unknown type " + string(*upd.RentalType))
		}
	}
	if upd.Amenities != nil {
		a.Amenities = *upd.Amenities
	}
	if upd.ContactInfo != nil {
		a.ContactInfo = strings.TrimSpace(*upd.ContactInfo)
	}
	if upd.AirbnbURL != nil {
		trimmed := strings.TrimSpace(*upd.AirbnbURL)
		if trimmed != "" {
			parsed, err := url.Parse(trimmed)
			if err != nil || parsed.Scheme == "" || parsed.Host == "" {
				return pkg.NewValidationError("apartment.airbnb_url: invalid URL")
			}
		}
		a.AirbnbURL = trimmed
	}
	if upd.Images != nil {
		a.Images = upd.Images
	}

	a.Metadata = a.Metadata.Touch(actor)
	return nil
}

func (a *Apartment) IsOccupied() bool {
	return a.Status == ApartmentStatusOccupied
}
