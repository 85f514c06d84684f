package valueobjects

// Amenities are the twelve boolean feature flags of an apartment.
// A kitchen is assumed unless explicitly disabled.

type Amenities struct {
	HasKitchen         bool `json:"has_kitchen"`
	HasAirConditioning bool `json:"has_air_conditioning"`
	HasWasher          bool `json:"has_washer"`
	HasFurniture       bool `json:"has_furniture"`
	HasInternet        bool `json:"has_internet"`
	HasTV              bool `json:"has_tv"`
	HasParking         bool `json:"has_parking"`
	HasBalcony         bool `json:"has_balcony"`
	HasPool            bool `json:"has_pool"`
	HasGym             bool `json:"has_gym"`
	HasElevator        bool `json:"has_elevator"`
	PetsAllowed        bool `json:"pets_allowed"`
}

func DefaultAmenities() Amenities {
	return Amenities{HasKitchen: true}
}
