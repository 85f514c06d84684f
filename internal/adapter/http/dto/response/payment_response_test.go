package response

import (
	"testing"
	"time"

	"imoveis_xpto/internal/domain/entities"
)

func TestFromPayment(t *testing.T) {
	due := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	p, err := entities.NewPayment(entities.NewPaymentProps{
		ID:                "pay-1",
		ApartmentUnitCode: "APT-101",
		PayerPhone:        "+5511912345678",
		Amount:            2500,
		DueDate:           due,
		ContractID:        "ct-1",
		Type:              entities.PaymentTypeRent,
		CreatedBy:         "test",
	})
	if err != nil {
		t.Fatalf("unexpected error building payment: %v", err)
	}

	res := FromPayment(p)
	if res.ID != "pay-1" || res.ApartmentUnitCode != "APT-101" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Amount != 2500 || res.Status != "pending" || res.Type != "rent" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.DueDate != "2026-03-05T00:00:00Z" {
		t.Fatalf("unexpected due date: %q", res.DueDate)
	}
	if res.PaymentDate != nil || res.ValidatedAt != nil {
		t.Fatalf("expected nil dates on a pending payment: %+v", res)
	}
	if res.Metadata.Version != 1 || res.Metadata.CreatedBy != "test" {
		t.Fatalf("unexpected metadata: %+v", res.Metadata)
	}

	paidAt := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	if err := p.SubmitProof("receipts/pay-1.pdf", paidAt, "tenant"); err != nil {
		t.Fatalf("unexpected error submitting proof: %v", err)
	}

	res = FromPayment(p)
	if res.Status != "paid" || res.ProofDocumentKey != "receipts/pay-1.pdf" {
		t.Fatalf("unexpected paid fields: %+v", res)
	}
	if res.PaymentDate == nil || *res.PaymentDate != "2026-03-04T12:00:00Z" {
		t.Fatalf("unexpected payment date: %+v", res.PaymentDate)
	}
}
