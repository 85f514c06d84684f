package entities

import (
	"testing"
	"time"

	"imoveis_xpto/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPayment(t *testing.T) *Payment {
	t.Helper()
	p, err := NewPayment(NewPaymentProps{
		ID:                "pay-1",
		ApartmentUnitCode: "APT-101",
		PayerPhone:        "+5511912345678",
		Amount:            2000,
		DueDate:           time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		ContractID:        "ctr-1",
		CreatedBy:         "admin",
	})
	require.NoError(t, err)
	return p
}

func TestNewPayment_Defaults(t *testing.T) {
	p := newTestPayment(t)
	assert.Equal(t, PaymentStatusPending, p.Status)
	assert.Equal(t, PaymentTypeRent, p.Type)
	assert.Equal(t, 1, p.Metadata.Version)
	assert.Equal(t, p.Metadata.CreatedAt.UnixMilli(), p.CreatedAtMillis)
}

func TestNewPayment_Validation(t *testing.T) {
	base := NewPaymentProps{
		ID:                "pay-1",
		ApartmentUnitCode: "APT-101",
		PayerPhone:        "+5511912345678",
		Amount:            2000,
		DueDate:           time.Now(),
		ContractID:        "ctr-1",
	}

	tests := []struct {
		name   string
		mutate func(*NewPaymentProps)
	}{
		{"zero amount", func(p *NewPaymentProps) { p.Amount = 0 }},
		{"negative amount", func(p *NewPaymentProps) { p.Amount = -1 }},
		{"missing unit code", func(p *NewPaymentProps) { p.ApartmentUnitCode = " " }},
		{"missing payer", func(p *NewPaymentProps) { p.PayerPhone = "" }},
		{"missing due date", func(p *NewPaymentProps) { p.DueDate = time.Time{} }},
		{"missing contract", func(p *NewPaymentProps) { p.ContractID = "" }},
		{"unknown type", func(p *NewPaymentProps) { p.Type = "barter" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := base
			tt.mutate(&props)
			_, err := NewPayment(props)
			require.Error(t, err)
			assert.True(t, pkg.IsValidation(err))
		})
	}
}

func TestPayment_Keys(t *testing.T) {
	p := newTestPayment(t)
	assert.Equal(t, "APARTMENT#APT-101", p.PK())
	assert.Equal(t, paymentSortKey(p.CreatedAtMillis, "pay-1"), p.SK())
	assert.Contains(t, p.SK(), "PAYMENT#")
	assert.Equal(t, "CONTRACT#ctr-1", p.GSI1PK())
}

func TestPayment_HappyFlow(t *testing.T) {
	p := newTestPayment(t)

	require.NoError(t, p.SubmitProof("proofs/key.pdf", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), "tenant"))
	assert.Equal(t, PaymentStatusPaid, p.Status)
	assert.Equal(t, 2, p.Metadata.Version)
	require.NotNil(t, p.PaymentDate)

	require.NoError(t, p.Validate("admin"))
	assert.Equal(t, PaymentStatusValidated, p.Status)
	assert.Equal(t, "admin", p.ValidatedBy)
	require.NotNil(t, p.ValidatedAt)
	assert.Equal(t, 3, p.Metadata.Version)

	err := p.UpdateAmount(2000, "admin")
	require.Error(t, err)
	assert.True(t, pkg.IsBusinessRuleViolation(err))
}

func TestPayment_ProofBlockedOnTerminalStates(t *testing.T) {
	validated := newTestPayment(t)
	require.NoError(t, validated.SubmitProof("k.pdf", time.Now(), ""))
	require.NoError(t, validated.Validate("admin"))
	err := validated.SubmitProof("k2.pdf", time.Now(), "")
	require.Error(t, err)
	assert.True(t, pkg.IsBusinessRuleViolation(err))

	rejected := newTestPayment(t)
	require.NoError(t, rejected.SubmitProof("k.pdf", time.Now(), ""))
	require.NoError(t, rejected.Reject("admin", "blurry receipt"))
	err = rejected.SubmitProof("k2.pdf", time.Now(), "")
	require.Error(t, err)
	assert.True(t, pkg.IsBusinessRuleViolation(err))
}

func TestPayment_ResubmissionWhilePaidOverwrites(t *testing.T) {
	p := newTestPayment(t)
	require.NoError(t, p.SubmitProof("first.pdf", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), ""))
	require.NoError(t, p.SubmitProof("second.pdf", time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC), ""))
	assert.Equal(t, "second.pdf", p.ProofDocumentKey)
	assert.Equal(t, PaymentStatusPaid, p.Status)
	assert.Equal(t, 3, p.Metadata.Version)
}

func TestPayment_ValidateRejectRequirePaid(t *testing.T) {
	p := newTestPayment(t)

	err := p.Validate("admin")
	require.Error(t, err)
	assert.True(t, pkg.IsBusinessRuleViolation(err))

	err = p.Reject("admin", "")
	require.Error(t, err)
	assert.True(t, pkg.IsBusinessRuleViolation(err))
}

func TestPayment_MarkOverdue(t *testing.T) {
	p := newTestPayment(t)
	require.NoError(t, p.MarkOverdue("sweeper"))
	assert.Equal(t, PaymentStatusOverdue, p.Status)

	// second call is not a no-op: only pending payments flip
	err := p.MarkOverdue("sweeper")
	require.Error(t, err)
	assert.True(t, pkg.IsBusinessRuleViolation(err))

	// proof submission recovers an overdue payment
	require.NoError(t, p.SubmitProof("late.pdf", time.Now(), ""))
	assert.Equal(t, PaymentStatusPaid, p.Status)
}

func TestPayment_UpdateGuards(t *testing.T) {
	p := newTestPayment(t)

	err := p.UpdateAmount(-5, "admin")
	require.Error(t, err)
	assert.True(t, pkg.IsValidation(err))

	require.NoError(t, p.UpdateAmount(2500, "admin"))
	assert.Equal(t, 2500.0, p.Amount)

	require.NoError(t, p.SubmitProof("k.pdf", time.Now(), ""))
	require.NoError(t, p.Validate("admin"))

	require.Error(t, p.UpdateDueDate(time.Now().Add(time.Hour), "admin"))
	require.Error(t, p.UpdateDescription("late fee waived", "admin"))
}

func TestPayment_DaysUntilDue(t *testing.T) {
	p := newTestPayment(t)
	due := p.DueDate

	assert.Equal(t, 5, p.DaysUntilDue(due.AddDate(0, 0, -5)))
	assert.Equal(t, 0, p.DaysUntilDue(due))
	assert.Equal(t, -3, p.DaysUntilDue(due.AddDate(0, 0, 3)))
	// still negative right after an early payment: computed from now
	require.NoError(t, p.SubmitProof("k.pdf", due.AddDate(0, 0, -2), ""))
	assert.Equal(t, -3, p.DaysUntilDue(due.AddDate(0, 0, 3)))
}

func TestPayment_DaysOverdue(t *testing.T) {
	p := newTestPayment(t)
	due := p.DueDate

	assert.Equal(t, 0, p.DaysOverdue(due.AddDate(0, 0, -1)))
	assert.Equal(t, 4, p.DaysOverdue(due.AddDate(0, 0, 4)))

	require.NoError(t, p.SubmitProof("k.pdf", due, ""))
	assert.Equal(t, 0, p.DaysOverdue(due.AddDate(0, 0, 4)))
}

func TestPayment_JSONRoundTrip(t *testing.T) {
	p := newTestPayment(t)
	require.NoError(t, p.SubmitProof("proofs/jan.pdf", time.Date(2024, 1, 12, 10, 30, 0, 0, time.UTC), "tenant"))

	data, err := p.ToJSON()
	require.NoError(t, err)

	restored, err := PaymentFromJSON(data)
	require.NoError(t, err)

	assert.Equal(t, p.ID, restored.ID)
	assert.Equal(t, p.Status, restored.Status)
	assert.Equal(t, p.Amount, restored.Amount)
	assert.True(t, p.DueDate.Equal(restored.DueDate))
	assert.Equal(t, p.Metadata.Version, restored.Metadata.Version)
	assert.Equal(t, p.SK(), restored.SK())
}

func TestPaymentFromJSON_Invalid(t *testing.T) {
	_, err := PaymentFromJSON([]byte("{"))
	require.Error(t, err)

	_, err = PaymentFromJSON([]byte(`{"payment_id":"x","due_date":"yesterday"}`))
	require.Error(t, err)
}
