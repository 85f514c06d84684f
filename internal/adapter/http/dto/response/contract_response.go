package response

import (
	"time"

	"imoveis_xpto/internal/domain/entities"
	"imoveis_xpto/internal/domain/valueobjects"
)

type ContractResponse struct {
	ID                string                     `json:"id"`
	ApartmentUnitCode string                     `json:"apartment_unit_code"`
	TenantPhone       string                     `json:"tenant_phone"`
	StartDate         string                     `json:"start_date"`
	EndDate           string                     `json:"end_date"`
	Status            string                     `json:"status"`
	Terms             valueobjects.ContractTerms `json:"terms"`

	LastPaymentID   string  `json:"last_payment_id,omitempty"`
	LastPaymentDate *string `json:"last_payment_date,omitempty"`

	TerminationReason string `json:"termination_reason,omitempty"`

	Metadata MetadataResponse `json:"metadata"`
}

func FromContract(c *entities.Contract) ContractResponse {
	resp := ContractResponse{
		ID:                c.ID,
		ApartmentUnitCode: c.ApartmentUnitCode,
		TenantPhone:       c.TenantPhone,
		StartDate:         c.StartDate.UTC().Format(time.RFC3339),
		EndDate:           c.EndDate.UTC().Format(time.RFC3339),
		Status:            string(c.Status),
		Terms:             c.Terms,
		LastPaymentID:     c.LastPaymentID,
		TerminationReason: c.TerminationReason,
		Metadata:          fromMetadata(c.Metadata),
	}
	if c.LastPaymentDate != nil {
		v := c.LastPaymentDate.UTC().Format(time.RFC3339)
		resp.LastPaymentDate = &v
	}
	return resp
}

func FromContracts(contracts []*entities.Contract) []ContractResponse {
	out := make([]ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		out = append(out, FromContract(c))
	}
	return out
}
