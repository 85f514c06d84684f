package entities

import (
	"encoding/json"
	"strings"
	"time"

	"imoveis_xpto/internal/domain/valueobjects"
	"imoveis_xpto/pkg"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusValidated PaymentStatus = "validated"
	PaymentStatusRejected  PaymentStatus = "rejected"
	PaymentStatusOverdue   PaymentStatus = "overdue"
)

type PaymentType string

const (
	PaymentTypeRent        PaymentType = "rent"
	PaymentTypeCleaningFee PaymentType = "cleaning_fee"
	PaymentTypeOther       PaymentType = "other"
)

// Payment is a rent/fee charge against an apartment. Storage model:
//   - PK: APARTMENT#<unitCode>
//   - SK: PAYMENT#<createdAtMillis>#<paymentID>  (chronological range queries)
//   - GSI1 (contract history): GSI1PK: CONTRACT#<contractID>,
//     GSI1SK: PAYMENT#<dueDate RFC3339>
//
// Lifecycle: pending -> paid -> validated | rejected, and
// pending -> overdue -> paid (proof submission recovers an overdue
// payment). Validated and rejected are terminal for proof submission.

type Payment struct {
	ID                string
	ApartmentUnitCode string
	PayerPhone        string
	Amount            float64
	DueDate           time.Time
	ContractID        string
	Status            PaymentStatus
	Type              PaymentType

	ProofDocumentKey string
	PaymentDate      *time.Time
	ValidatedBy      string
	ValidatedAt      *time.Time
	RejectionReason  string
	Description      string

	CreatedAtMillis int64
	Metadata        valueobjects.EntityMetadata
}

type NewPaymentProps struct {
	ID                string
	ApartmentUnitCode string
	PayerPhone        string
	Amount            float64
	DueDate           time.Time
	ContractID        string
	Type              PaymentType
	Description       string
	CreatedBy         string
}

// NewPayment validates and starts the payment as pending. The sort key
// embeds the creation instant, captured here.
func NewPayment(props NewPaymentProps) (*Payment, error) {
	if strings.TrimSpace(props.ID) == "" {
		return nil, pkg.NewValidationError("payment.id: cannot be empty")
	}
	if strings.TrimSpace(props.ApartmentUnitCode) == "" {
		return nil, pkg.NewValidationError("payment.apartment_unit_code: cannot be empty")
	}
	if strings.TrimSpace(props.PayerPhone) == "" {
		return nil, pkg.NewValidationError("payment.payer_phone: cannot be empty")
	}
	if props.Amount <= 0 {
		return nil, pkg.NewValidationError("payment.amount: must be greater than zero")
	}
	if props.DueDate.IsZero() {
		return nil, pkg.NewValidationError("payment.due_date: is required")
	}
	if strings.TrimSpace(props.ContractID) == "" {
		return nil, pkg.NewValidationError("payment.contract_id: cannot be empty")
	}

	paymentType := props.Type
	if paymentType == "" {
		paymentType = PaymentTypeRent
	}
	switch paymentType {
	case PaymentTypeRent, PaymentTypeCleaningFee, PaymentTypeOther:
	default:
		return nil, pkg.NewValidationError("payment.type: unknown type " + string(paymentType))
	}

	md := valueobjects.NewEntityMetadata(props.CreatedBy)
	return &Payment{
		ID:                strings.TrimSpace(props.ID),
		ApartmentUnitCode: strings.TrimSpace(props.ApartmentUnitCode),
		PayerPhone:        strings.TrimSpace(props.PayerPhone),
		Amount:            props.Amount,
		DueDate:           props.DueDate,
		ContractID:        strings.TrimSpace(props.ContractID),
		Status:            PaymentStatusPending,
		Type:              paymentType,
		Description:       strings.TrimSpace(props.Description),
		CreatedAtMillis:   md.CreatedAt.UnixMilli(),
		Metadata:          md,
	}, nil
}

func (p *Payment) PK() string     { return ApartmentPartitionKey(p.ApartmentUnitCode) }
func (p *Payment) SK() string     { return paymentSortKey(p.CreatedAtMillis, p.ID) }
func (p *Payment) GSI1PK() string { return ContractPartitionKey(p.ContractID) }
func (p *Payment) GSI1SK() string {
	return paymentKeyPrefix + p.DueDate.UTC().Format(time.RFC3339)
}

// SubmitProof records a proof document and moves the payment to paid.
// Re-submission while paid overwrites the previous proof; validated and
// rejected payments refuse new proof.
func (p *Payment) SubmitProof(documentKey string, paymentDate time.Time, updatedBy string) error {
	if p.Status == PaymentStatusValidated || p.Status == PaymentStatusRejected {
		return pkg.NewBusinessRuleViolation("cannot submit proof for already validated/rejected payment")
	}
	if strings.TrimSpace(documentKey) == "" {
		return pkg.NewValidationError("payment.proof_document_key: cannot be empty")
	}
	if paymentDate.IsZero() {
		return pkg.NewValidationError("payment.payment_date: is required")
	}
	p.ProofDocumentKey = strings.TrimSpace(documentKey)
	p.PaymentDate = &paymentDate
	p.Status = PaymentStatusPaid
	p.Metadata = p.Metadata.Touch(updatedBy)
	return nil
}

// Validate confirms a paid payment.
func (p *Payment) Validate(validatorID string) error {
	if p.Status != PaymentStatusPaid {
		return pkg.NewBusinessRuleViolation("only paid payments can be validated")
	}
	if strings.TrimSpace(validatorID) == "" {
		return pkg.NewValidationError("payment.validator_id: cannot be empty")
	}
	now := time.Now().UTC()
	p.Status = PaymentStatusValidated
	p.ValidatedBy = strings.TrimSpace(validatorID)
	p.ValidatedAt = &now
	p.Metadata = p.Metadata.Touch(validatorID)
	return nil
}

// Reject refuses a paid payment's proof.
func (p *Payment) Reject(validatorID, reason string) error {
	if p.Status != PaymentStatusPaid {
		return pkg.NewBusinessRuleViolation("only paid payments can be rejected")
	}
	if strings.TrimSpace(validatorID) == "" {
		return pkg.NewValidationError("payment.validator_id: cannot be empty")
	}
	now := time.Now().UTC()
	p.Status = PaymentStatusRejected
	p.ValidatedBy = strings.TrimSpace(validatorID)
	p.ValidatedAt = &now
	p.RejectionReason = strings.TrimSpace(reason)
	p.Metadata = p.Metadata.Touch(validatorID)
	return nil
}

// MarkOverdue flags a pending payment past its due date. Calling it on
// anything but pending (an already overdue payment included) errors.
func (p *Payment) MarkOverdue(actor string) error {
	if p.Status != PaymentStatusPending {
		return pkg.NewBusinessRuleViolation("only pending payments can be marked overdue")
	}
	p.Status = PaymentStatusOverdue
	p.Metadata = p.Metadata.Touch(actor)
	return nil
}

func (p *Payment) UpdateAmount(amount float64, actor string) error {
	if p.Status == PaymentStatusValidated {
		return pkg.NewBusinessRuleViolation("cannot update amount of validated payment")
	}
	if amount <= 0 {
		return pkg.NewValidationError("payment.amount: must be greater than zero")
	}
	p.Amount = amount
	p.Metadata = p.Metadata.Touch(actor)
	return nil
}

func (p *Payment) UpdateDueDate(dueDate time.Time, actor string) error {
	if p.Status == PaymentStatusValidated {
		return pkg.NewBusinessRuleViolation("cannot update due date of validated payment")
	}
	if dueDate.IsZero() {
		return pkg.NewValidationError("payment.due_date: is required")
	}
	p.DueDate = dueDate
	p.Metadata = p.Metadata.Touch(actor)
	return nil
}

func (p *Payment) UpdateDescription(description, actor string) error {
	if p.Status == PaymentStatusValidated {
		return pkg.NewBusinessRuleViolation("cannot update description of validated payment")
	}
	p.Description = strings.TrimSpace(description)
	p.Metadata = p.Metadata.Touch(actor)
	return nil
}

const oneDay = 24 * time.Hour

// DaysUntilDue is floor((dueDate-now)/day): positive before the due
// date, negative after it passes, regardless of payment state.
func (p *Payment) DaysUntilDue(now time.Time) int {
	diff := p.DueDate.Sub(now)
	days := int(diff / oneDay)
	if diff < 0 && diff%oneDay != 0 {
		days--
	}
	return days
}

// DaysOverdue is max(0, floor((now-dueDate)/day)), and zero once the
// payment left the pending/overdue states.
func (p *Payment) DaysOverdue(now time.Time) int {
	if p.Status != PaymentStatusPending && p.Status != PaymentStatusOverdue {
		return 0
	}
	days := int(now.Sub(p.DueDate) / oneDay)
	if days < 0 {
		return 0
	}
	return days
}

// IsSettled reports whether money changed hands (proof submitted).
func (p *Payment) IsSettled() bool {
	return p.Status == PaymentStatusPaid || p.Status == PaymentStatusValidated
}

type paymentJSON struct {
	ID                string  `json:"payment_id"`
	ApartmentUnitCode string  `json:"apartment_unit_code"`
	PayerPhone        string  `json:"payer_phone"`
	Amount            float64 `json:"amount"`
	DueDate           string  `json:"due_date"`
	ContractID        string  `json:"contract_id"`
	Status            string  `json:"status"`
	Type              string  `json:"type"`
	ProofDocumentKey  string  `json:"proof_document_key,omitempty"`
	PaymentDate       string  `json:"payment_date,omitempty"`
	ValidatedBy       string  `json:"validated_by,omitempty"`
	ValidatedAt       string  `json:"validated_at,omitempty"`
	RejectionReason   string  `json:"rejection_reason,omitempty"`
	Description       string  `json:"description,omitempty"`
	CreatedAtMillis   int64   `json:"created_at_millis"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	CreatedBy string `json:"created_by,omitempty"`
	UpdatedBy string `json:"updated_by,omitempty"`
	Version   int    `json:"version"`
}

// ToJSON serializes the payment with all dates in RFC 3339.
func (p *Payment) ToJSON() ([]byte, error) {
	out := paymentJSON{
		ID:                p.ID,
		ApartmentUnitCode: p.ApartmentUnitCode,
		PayerPhone:        p.PayerPhone,
		Amount:            p.Amount,
		DueDate:           p.DueDate.UTC().Format(time.RFC3339Nano),
		ContractID:        p.ContractID,
		Status:            string(p.Status),
		Type:              string(p.Type),
		ProofDocumentKey:  p.ProofDocumentKey,
		ValidatedBy:       p.ValidatedBy,
		RejectionReason:   p.RejectionReason,
		Description:       p.Description,
		CreatedAtMillis:   p.CreatedAtMillis,
		CreatedAt:         p.Metadata.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         p.Metadata.UpdatedAt.UTC().Format(time.RFC3339Nano),
		CreatedBy:         p.Metadata.CreatedBy,
		UpdatedBy:         p.Metadata.UpdatedBy,
		Version:           p.Metadata.Version,
	}
	if p.PaymentDate != nil {
		out.PaymentDate = p.PaymentDate.UTC().Format(time.RFC3339Nano)
	}
	if p.ValidatedAt != nil {
		out.ValidatedAt = p.ValidatedAt.UTC().Format(time.RFC3339Nano)
	}
	return json.Marshal(out)
}

// PaymentFromJSON rebuilds a payment serialized by ToJSON.
func PaymentFromJSON(data []byte) (*Payment, error) {
	var in paymentJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, pkg.NewValidationError("payment: invalid JSON: " + err.Error())
	}

	dueDate, err := time.Parse(time.RFC3339Nano, in.DueDate)
	if err != nil {
		return nil, pkg.NewValidationError("payment.due_date: invalid timestamp")
	}
	createdAt, err := time.Parse(time.RFC3339Nano, in.CreatedAt)
	if err != nil {
		return nil, pkg.NewValidationError("payment.created_at: invalid timestamp")
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, in.UpdatedAt)
	if err != nil {
		return nil, pkg.NewValidationError("payment.updated_at: invalid timestamp")
	}

	p := &Payment{
		ID:                in.ID,
		ApartmentUnitCode: in.ApartmentUnitCode,
		PayerPhone:        in.PayerPhone,
		Amount:            in.Amount,
		DueDate:           dueDate,
		ContractID:        in.ContractID,
		Status:            PaymentStatus(in.Status),
		Type:              PaymentType(in.Type),
		ProofDocumentKey:  in.ProofDocumentKey,
		ValidatedBy:       in.ValidatedBy,
		RejectionReason:   in.RejectionReason,
		Description:       in.Description,
		CreatedAtMillis:   in.CreatedAtMillis,
		Metadata: valueobjects.EntityMetadata{
			CreatedAt: createdAt,
			UpdatedAt: updatedAt,
			CreatedBy: in.CreatedBy,
			UpdatedBy: in.UpdatedBy,
			Version:   in.Version,
		},
	}
	if in.PaymentDate != "" {
		dt, err := time.Parse(time.RFC3339Nano, in.PaymentDate)
		if err != nil {
			return nil, pkg.NewValidationError("payment.payment_date: invalid timestamp")
		}
		p.PaymentDate = &dt
	}
	if in.ValidatedAt != "" {
		dt, err := time.Parse(time.RFC3339Nano, in.ValidatedAt)
		if err != nil {
			return nil, pkg.NewValidationError("payment.validated_at: invalid timestamp")
		}
		p.ValidatedAt = &dt
	}
	return p, nil
}
