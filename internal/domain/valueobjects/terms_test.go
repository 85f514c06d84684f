package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTerms() ContractTerms {
	return ContractTerms{MonthlyRent: 2500, PaymentDueDay: 5, SecurityDeposit: 2500}
}

func TestContractTerms_Validate(t *testing.T) {
	require.NoError(t, validTerms().Validate())

	bad := validTerms()
	bad.MonthlyRent = 0
	require.Error(t, bad.Validate())

	bad = validTerms()
	bad.PaymentDueDay = 0
	require.Error(t, bad.Validate())

	bad = validTerms()
	bad.PaymentDueDay = 32
	require.Error(t, bad.Validate())

	bad = validTerms()
	bad.SecurityDeposit = -1
	require.Error(t, bad.Validate())
}

func TestContractTerms_Merge(t *testing.T) {
	rent := 3000.0
	internet := true
	merged, err := validTerms().Merge(TermsUpdate{MonthlyRent: &rent, IncludesInternet: &internet})
	require.NoError(t, err)
	assert.Equal(t, 3000.0, merged.MonthlyRent)
	assert.True(t, merged.IncludesInternet)
	assert.Equal(t, 5, merged.PaymentDueDay)
}

func TestContractTerms_Merge_RejectsInvalidResult(t *testing.T) {
	rent := -10.0
	_, err := validTerms().Merge(TermsUpdate{MonthlyRent: &rent})
	require.Error(t, err)
}

func TestDefaultAmenities(t *testing.T) {
	a := DefaultAmenities()
	assert.True(t, a.HasKitchen)
	assert.False(t, a.HasPool)
}
