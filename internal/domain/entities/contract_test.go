package entities

import (
	"testing"
	"time"

	"imoveis_xpto/internal/domain/valueobjects"
	"imoveis_xpto/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContract(t *testing.T) *Contract {
	t.Helper()
	c, err := NewContract(NewContractProps{
		ID:                "ctr-1",
		ApartmentUnitCode: "APT-101",
		TenantPhone:       "+5511912345678",
		StartDate:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:           time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		Terms:             valueobjects.ContractTerms{MonthlyRent: 2000, PaymentDueDay: 5, SecurityDeposit: 2000},
		CreatedBy:         "admin",
	})
	require.NoError(t, err)
	return c
}

func TestNewContract_StartsPending(t *testing.T) {
	c := newTestContract(t)
	assert.True(t, c.IsPending())
	assert.Equal(t, 1, c.Metadata.Version)
	assert.Equal(t, "CONTRACT#ctr-1", c.PK())
	assert.Equal(t, "APARTMENT#APT-101", c.GSI1PK())
}

func TestNewContract_Validation(t *testing.T) {
	_, err := NewContract(NewContractProps{
		ID:                "ctr-1",
		ApartmentUnitCode: "APT-101",
		TenantPhone:       "+5511912345678",
		StartDate:         time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		EndDate:           time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Terms:             valueobjects.ContractTerms{MonthlyRent: 2000, PaymentDueDay: 5},
	})
	require.Error(t, err)
	assert.True(t, pkg.IsValidation(err))
}

func TestContract_Lifecycle(t *testing.T) {
	c := newTestContract(t)

	require.NoError(t, c.Activate("admin"))
	assert.True(t, c.IsActive())
	assert.Equal(t, 2, c.Metadata.Version)

	err := c.Activate("admin")
	require.Error(t, err)
	assert.True(t, pkg.IsBusinessRuleViolation(err))

	require.NoError(t, c.Expire("system"))
	assert.True(t, c.IsExpired())

	err = c.Expire("system")
	require.Error(t, err)
}

func TestContract_Terminate(t *testing.T) {
	c := newTestContract(t)
	require.NoError(t, c.Terminate("admin", "tenant moved out"))
	assert.True(t, c.IsTerminated())
	assert.Equal(t, "tenant moved out", c.TerminationReason)

	err := c.Terminate("admin", "")
	require.Error(t, err)
	assert.True(t, pkg.IsBusinessRuleViolation(err))
}

func TestContract_Extend(t *testing.T) {
	c := newTestContract(t)

	// pending contracts cannot be renewed
	err := c.Extend(c.EndDate.AddDate(1, 0, 0), "admin")
	require.Error(t, err)
	assert.True(t, pkg.IsBusinessRuleViolation(err))

	require.NoError(t, c.Activate("admin"))
	require.NoError(t, c.Expire("system"))

	// renewal from expired reactivates
	newEnd := c.EndDate.AddDate(1, 0, 0)
	require.NoError(t, c.Extend(newEnd, "admin"))
	assert.True(t, c.IsActive())
	assert.True(t, c.EndDate.Equal(newEnd))

	// new end must move forward
	err = c.Extend(newEnd, "admin")
	require.Error(t, err)
	assert.True(t, pkg.IsValidation(err))
}

func TestContract_UpdateTerms(t *testing.T) {
	c := newTestContract(t)
	rent := 2300.0
	require.NoError(t, c.UpdateTerms(valueobjects.TermsUpdate{MonthlyRent: &rent}, "admin"))
	assert.Equal(t, 2300.0, c.Terms.MonthlyRent)
	assert.Equal(t, 2, c.Metadata.Version)

	require.NoError(t, c.Terminate("admin", "sold"))
	err := c.UpdateTerms(valueobjects.TermsUpdate{MonthlyRent: &rent}, "admin")
	require.Error(t, err)
	assert.True(t, pkg.IsBusinessRuleViolation(err))
}

func TestContract_UpdateLastPayment(t *testing.T) {
	c := newTestContract(t)
	paid := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)
	require.NoError(t, c.UpdateLastPayment("pay-9", paid, "system"))
	assert.Equal(t, "pay-9", c.LastPaymentID)
	require.NotNil(t, c.LastPaymentDate)
	assert.True(t, c.LastPaymentDate.Equal(paid))

	require.Error(t, c.UpdateLastPayment(" ", paid, "system"))
}
