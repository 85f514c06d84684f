package request

import (
	"strings"
	"time"

	"imoveis_xpto/internal/domain/entities"
	"imoveis_xpto/internal/usecase"
	"imoveis_xpto/pkg"
)

type CreatePaymentRequest struct {
	ApartmentUnitCode string    `json:"apartment_unit_code" binding:"required"`
	PayerPhone        string    `json:"payer_phone" binding:"required"`
	PayerEmail        string    `json:"payer_email"`
	Amount            float64   `json:"amount" binding:"required"`
	DueDate           time.Time `json:"due_date" binding:"required"`
	ContractID        string    `json:"contract_id" binding:"required"`
	Type              string    `json:"type"`
	Description       string    `json:"description"`
	Actor             string    `json:"actor"`
}

func (r CreatePaymentRequest) Validate() error {
	var fields []pkg.FieldError
	if strings.TrimSpace(r.ApartmentUnitCode) == "" {
		fields = append(fields, pkg.FieldError{Field: "apartment_unit_code", Message: "cannot be empty"})
	}
	if strings.TrimSpace(r.PayerPhone) == "" {
		fields = append(fields, pkg.FieldError{Field: "payer_phone", Message: "cannot be empty"})
	}
	if r.Amount <= 0 {
		fields = append(fields, pkg.FieldError{Field: "amount", Message: "must be positive"})
	}
	if r.DueDate.IsZero() {
		fields = append(fields, pkg.FieldError{Field: "due_date", Message: "is required"})
	}
	if strings.TrimSpace(r.ContractID) == "" {
		fields = append(fields, pkg.FieldError{Field: "contract_id", Message: "cannot be empty"})
	}
	if len(fields) > 0 {
		return pkg.NewValidationErrorFields(fields)
	}
	return nil
}

func (r CreatePaymentRequest) ToInput() usecase.CreatePaymentInput {
	paymentType := entities.PaymentType(strings.TrimSpace(r.Type))
	if paymentType == "" {
		paymentType = entities.PaymentTypeRent
	}
	return usecase.CreatePaymentInput{
		ApartmentUnitCode: strings.TrimSpace(r.ApartmentUnitCode),
		PayerPhone:        strings.TrimSpace(r.PayerPhone),
		PayerEmail:        strings.TrimSpace(r.PayerEmail),
		Amount:            r.Amount,
		DueDate:           r.DueDate,
		ContractID:        strings.TrimSpace(r.ContractID),
		Type:              paymentType,
		Description:       strings.TrimSpace(r.Description),
		CreatedBy:         actorOrDefault(r.Actor),
	}
}

type SubmitProofRequest struct {
	DocumentKey string     `json:"document_key" binding:"required"`
	PaymentDate *time.Time `json:"payment_date"`
	Actor       string     `json:"actor"`
}

func (r SubmitProofRequest) Validate() error {
	if strings.TrimSpace(r.DocumentKey) == "" {
		return pkg.NewValidationErrorFields([]pkg.FieldError{
			{Field: "document_key", Message: "cannot be empty"},
		})
	}
	return nil
}

// ResolvePaymentDate defaults to now when the proof does not carry an
// explicit date.
func (r SubmitProofRequest) ResolvePaymentDate() time.Time {
	if r.PaymentDate != nil {
		return *r.PaymentDate
	}
	return time.Now().UTC()
}

type RejectPaymentRequest struct {
	Reason string `json:"reason" binding:"required"`
	Actor  string `json:"actor"`
}

func (r RejectPaymentRequest) Validate() error {
	if strings.TrimSpace(r.Reason) == "" {
		return pkg.NewValidationErrorFields([]pkg.FieldError{
			{Field: "reason", Message: "cannot be empty"},
		})
	}
	return nil
}

type UpdatePaymentRequest struct {
	Amount      *float64   `json:"amount"`
	DueDate     *time.Time `json:"due_date"`
	Description *string    `json:"description"`
	Actor       string     `json:"actor"`
}

func (r UpdatePaymentRequest) Validate() error {
	if r.Amount == nil && r.DueDate == nil && r.Description == nil {
		return pkg.NewValidationErrorFields([]pkg.FieldError{
			{Field: "body", Message: "nothing to update"},
		})
	}
	if r.Amount != nil && *r.Amount <= 0 {
		return pkg.NewValidationErrorFields([]pkg.FieldError{
			{Field: "amount", Message: "must be positive"},
		})
	}
	return nil
}

// ConfirmationEmailRequest is the payload posted by the inbound-mail
// webhook.
type ConfirmationEmailRequest struct {
	MessageID  string     `json:"message_id"`
	Subject    string     `json:"subject"`
	Body       string     `json:"body" binding:"required"`
	ReceivedAt *time.Time `json:"received_at"`
}

func (r ConfirmationEmailRequest) Validate() error {
	if strings.TrimSpace(r.Subject) == "" && strings.TrimSpace(r.Body) == "" {
		return pkg.NewValidationErrorFields([]pkg.FieldError{
			{Field: "body", Message: "cannot be empty"},
		})
	}
	return nil
}
