package entities

import (
	"testing"

	"imoveis_xpto/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApartment(t *testing.T) *Apartment {
	t.Helper()
	a, err := NewApartment(NewApartmentProps{
		UnitCode:  "APT-101",
		Label:     "Studio 101",
		Address:   "Rua das Flores, 123",
		BaseRent:  2000,
		CreatedBy: "admin",
	})
	require.NoError(t, err)
	return a
}

func TestNewApartment_Defaults(t *testing.T) {
	a := newTestApartment(t)
	assert.Equal(t, ApartmentStatusAvailable, a.Status)
	assert.Equal(t, RentalTypeLongTerm, a.RentalType)
	assert.True(t, a.Amenities.HasKitchen)
	assert.True(t, a.IsAvailable)
	assert.Equal(t, "APARTMENT#APT-101", a.PK())
	assert.Equal(t, "STATUS#available", a.GSI1PK())
}

func TestNewApartment_Validation(t *testing.T) {
	t.Run("negative rent", func(t *testing.T) {
		_, err := NewApartment(NewApartmentProps{UnitCode: "A", Label: "x", BaseRent: -1})
		require.Error(t, err)
		assert.True(t, pkg.IsValidation(err))
	})

	t.Run("invalid airbnb url", func(t *testing.T) {
		_, err := NewApartment(NewApartmentProps{UnitCode: "A", Label: "x", AirbnbURL: "not a url"})
		require.Error(t, err)
	})

	t.Run("valid airbnb url", func(t *testing.T) {
		a, err := NewApartment(NewApartmentProps{UnitCode: "A", Label: "x", AirbnbURL: "https://airbnb.com/rooms/42"})
		require.NoError(t, err)
		assert.Equal(t, "https://airbnb.com/rooms/42", a.AirbnbURL)
	})
}

func TestApartment_ChangeStatus(t *testing.T) {
	a := newTestApartment(t)

	err := a.ChangeStatus(ApartmentStatusAvailable, "admin")
	require.Error(t, err)
	assert.True(t, pkg.IsBusinessRuleViolation(err))

	require.NoError(t, a.MarkOccupied("admin"))
	assert.Equal(t, ApartmentStatusOccupied, a.Status)
	assert.False(t, a.IsAvailable)
	assert.Equal(t, 2, a.Metadata.Version)

	require.NoError(t, a.MarkAvailable(nil, "admin"))
	assert.True(t, a.IsAvailable)

	err = a.ChangeStatus("demolished", "admin")
	require.Error(t, err)
	assert.True(t, pkg.IsValidation(err))
}

func TestApartment_Update(t *testing.T) {
	a := newTestApartment(t)

	rent := 2500.0
	label := "Studio 101 renovated"
	require.NoError(t, a.Update(ApartmentUpdate{BaseRent: &rent, Label: &label}, "admin"))
	assert.Equal(t, 2500.0, a.BaseRent)
	assert.Equal(t, "Studio 101 renovated", a.Label)
	assert.Equal(t, 2, a.Metadata.Version)

	bad := -1.0
	require.Error(t, a.Update(ApartmentUpdate{BaseRent: &bad}, "admin"))
}
