package interfaces

import (
	"context"
	"encoding/json"
)

// PixChargeRequest describes the charge issued for a rent payment.
type PixChargeRequest struct {
	PaymentID   string
	Amount      float64
	PayerEmail  string
	Description string
}

// IPaymentGateway abstracts the external payment provider used to issue
// PIX charges for newly created rent payments. The raw provider
// response is kept for traceability.
type IPaymentGateway interface {
	CreatePixCharge(ctx context.Context, req PixChargeRequest) (providerChargeID string, providerStatus string, providerResponse json.RawMessage, err error)
}
