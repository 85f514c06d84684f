package response

import (
	"time"

	"imoveis_xpto/internal/domain/entities"
)

type PaymentResponse struct {
	ID                string  `json:"id"`
	ApartmentUnitCode string  `json:"apartment_unit_code"`
	PayerPhone        string  `json:"payer_phone"`
	Amount            float64 `json:"amount"`
	DueDate           string  `json:"due_date"`
	ContractID        string  `json:"contract_id"`
	Status            string  `json:"status"`
	Type              string  `json:"type"`

	ProofDocumentKey string  `json:"proof_document_key,omitempty"`
	PaymentDate      *string `json:"payment_date,omitempty"`
	ValidatedBy      string  `json:"validated_by,omitempty"`
	ValidatedAt      *string `json:"validated_at,omitempty"`
	RejectionReason  string  `json:"rejection_reason,omitempty"`
	Description      string  `json:"description,omitempty"`

	Metadata MetadataResponse `json:"metadata"`
}

func FromPayment(p *entities.Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:                p.ID,
		ApartmentUnitCode: p.ApartmentUnitCode,
		PayerPhone:        p.PayerPhone,
		Amount:            p.Amount,
		DueDate:           p.DueDate.UTC().Format(time.RFC3339),
		ContractID:        p.ContractID,
		Status:            string(p.Status),
		Type:              string(p.Type),
		ProofDocumentKey:  p.ProofDocumentKey,
		ValidatedBy:       p.ValidatedBy,
		RejectionReason:   p.RejectionReason,
		Description:       p.Description,
		Metadata:          fromMetadata(p.Metadata),
	}
	if p.PaymentDate != nil {
		v := p.PaymentDate.UTC().Format(time.RFC3339)
		resp.PaymentDate = &v
	}
	if p.ValidatedAt != nil {
		v := p.ValidatedAt.UTC().Format(time.RFC3339)
		resp.ValidatedAt = &v
	}
	return resp
}

func FromPayments(payments []*entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}
