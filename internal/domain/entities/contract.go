package entities

import (
	"strings"
	"time"

	"imoveis_xpto/internal/domain/valueobjects"
	"imoveis_xpto/pkg"
)

type ContractStatus string

const (
	ContractStatusPending    ContractStatus = "pending"
	ContractStatusActive     ContractStatus = "active"
	ContractStatusExpired    ContractStatus = "expired"
	ContractStatusTerminated ContractStatus = "terminated"
)

// Contract links one apartment to one tenant for a date range.
// Storage model:
//   - PK: CONTRACT#<contractID>
//   - SK: CONTRACT#<contractID>
//   - GSI1 (apartment history): GSI1PK: APARTMENT#<unitCode>,
//     GSI1SK: CONTRACT#<startDate RFC3339>

type Contract struct {
	ID                string
	ApartmentUnitCode string
	TenantPhone       string
	StartDate         time.Time
	EndDate           time.Time
	Status            ContractStatus
	Terms             valueobjects.ContractTerms

	// Last-payment pointer, so apartment summaries avoid a payment scan.
	LastPaymentID   string
	LastPaymentDate *time.Time

	TerminationReason string

	Metadata valueobjects.EntityMetadata
}

type NewContractProps struct {
	ID                string
	ApartmentUnitCode string
	TenantPhone       string
	StartDate         time.Time
	EndDate           time.Time
	Terms             valueobjects.ContractTerms
	CreatedBy         string
}

// NewContract validates and starts the contract as pending.
func NewContract(props NewContractProps) (*Contract, error) {
	if strings.TrimSpace(props.ID) == "" {
		return nil, pkg.NewValidationError("contract.id: cannot be empty")
	}
	if strings.TrimSpace(props.ApartmentUnitCode) == "" {
		return nil, pkg.NewValidationError("contract.apartment_unit_code: cannot be empty")
	}
	if strings.TrimSpace(props.TenantPhone) == "" {
		return nil, pkg.NewValidationError("contract.tenant_phone: cannot be empty")
	}
	if props.StartDate.IsZero() || props.EndDate.IsZero() {
		return nil, pkg.NewValidationError("contract.dates: start and end dates are required")
	}
	if !props.EndDate.After(props.StartDate) {
		return nil, pkg.NewValidationError("contract.dates: end date must be after start date")
	}
	if err := props.Terms.Validate(); err != nil {
		return nil, err
	}

	return &Contract{
		ID:                strings.TrimSpace(props.ID),
		ApartmentUnitCode: strings.TrimSpace(props.ApartmentUnitCode),
		TenantPhone:       strings.TrimSpace(props.TenantPhone),
		StartDate:         props.StartDate,
		EndDate:           props.EndDate,
		Status:            ContractStatusPending,
		Terms:             props.Terms,
		Metadata:          valueobjects.NewEntityMetadata(props.CreatedBy),
	}, nil
}

func (c *Contract) PK() string     { return ContractPartitionKey(c.ID) }
func (c *Contract) SK() string     { return ContractPartitionKey(c.ID) }
func (c *Contract) GSI1PK() string { return ApartmentPartitionKey(c.ApartmentUnitCode) }
func (c *Contract) GSI1SK() string {
	return contractKeyPrefix + c.StartDate.UTC().Format(time.RFC3339)
}

func (c *Contract) IsActive() bool     { return c.Status == ContractStatusActive }
func (c *Contract) IsPending() bool    { return c.Status == ContractStatusPending }
func (c *Contract) IsExpired() bool    { return c.Status == ContractStatusExpired }
func (c *Contract) IsTerminated() bool { return c.Status == ContractStatusTerminated }

// Activate puts a pending contract in force.
func (c *Contract) Activate(actor string) error {
	if c.Status != ContractStatusPending {
		return pkg.NewBusinessRuleViolation("only pending contracts can be activated")
	}
	c.Status = ContractStatusActive
	c.Metadata = c.Metadata.Touch(actor)
	return nil
}

// Terminate ends the contract early, from active or pending.
func (c *Contract) Terminate(actor, reason string) error {
	if c.Status != ContractStatusActive && c.Status != ContractStatusPending {
		return pkg.NewBusinessRuleViolation("only active or pending contracts can be terminated")
	}
	c.Status = ContractStatusTerminated
	c.TerminationReason = strings.TrimSpace(reason)
	c.Metadata = c.Metadata.Touch(actor)
	return nil
}

// Expire closes an active contract that reached its end date.
func (c *Contract) Expire(actor string) error {
	if c.Status != ContractStatusActive {
		return pkg.NewBusinessRuleViolation("only active contracts can expire")
	}
	c.Status = ContractStatusExpired
	c.Metadata = c.Metadata.Touch(actor)
	return nil
}

// Extend renews the contract to a later end date. Expired contracts
// become active again.
func (c *Contract) Extend(newEndDate time.Time, actor string) error {
	if c.Status != ContractStatusActive && c.Status != ContractStatusExpired {
		return pkg.NewBusinessRuleViolation("only active or expired contracts can be renewed")
	}
	if !newEndDate.After(c.EndDate) {
		return pkg.NewValidationError("contract.end_date: new end date must be after the current one")
	}
	c.EndDate = newEndDate
	c.Status = ContractStatusActive
	c.Metadata = c.Metadata.Touch(actor)
	return nil
}

// UpdateTerms merges a partial terms change; terminated contracts are
// immutable.
func (c *Contract) UpdateTerms(upd valueobjects.TermsUpdate, actor string) error {
	if c.Status == ContractStatusTerminated {
		return pkg.NewBusinessRuleViolation("cannot update terms of a terminated contract")
	}
	merged, err := c.Terms.Merge(upd)
	if err != nil {
		return err
	}
	c.Terms = merged
	c.Metadata = c.Metadata.Touch(actor)
	return nil
}

// UpdateLastPayment records the most recent payment pointer.
func (c *Contract) UpdateLastPayment(paymentID string, date time.Time, actor string) error {
	if strings.TrimSpace(paymentID) == "" {
		return pkg.NewValidationError("contract.last_payment_id: cannot be empty")
	}
	c.LastPaymentID = paymentID
	c.LastPaymentDate = &date
	c.Metadata = c.Metadata.Touch(actor)
	return nil
}
