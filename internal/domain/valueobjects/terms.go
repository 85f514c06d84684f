package valueobjects

import (
	"fmt"

	"imoveis_xpto/pkg"
)

// ContractTerms are the negotiated conditions of a rental contract.

type ContractTerms struct {
	MonthlyRent     float64 `json:"monthly_rent"`
	PaymentDueDay   int     `json:"payment_due_day"`
	SecurityDeposit float64 `json:"security_deposit"`

	IncludesWater       bool `json:"includes_water"`
	IncludesElectricity bool `json:"includes_electricity"`
	IncludesInternet    bool `json:"includes_internet"`
	IncludesGas         bool `json:"includes_gas"`

	Clauses string `json:"clauses,omitempty"`
}

func (t ContractTerms) Validate() error {
	if t.MonthlyRent <= 0 {
		return pkg.NewValidationError("terms.monthly_rent: must be greater than zero")
	}
	if t.PaymentDueDay < 1 || t.PaymentDueDay > 31 {
		return pkg.NewValidationError(fmt.Sprintf("terms.payment_due_day: %d is outside 1..31", t.PaymentDueDay))
	}
	if t.SecurityDeposit < 0 {
		return pkg.NewValidationError("terms.security_deposit: cannot be negative")
	}
	return nil
}

// TermsUpdate is a partial change to ContractTerms; nil fields keep the
// current value.
type TermsUpdate struct {
	MonthlyRent     *float64
	PaymentDueDay   *int
	SecurityDeposit *float64

	IncludesWater       *bool
	IncludesElectricity *bool
	IncludesInternet    *bool
	IncludesGas         *bool

	Clauses *string
}

// Merge applies the partial update and re-validates the result.
func (t ContractTerms) Merge(upd TermsUpdate) (ContractTerms, error) {
	next := t
	if upd.MonthlyRent != nil {
		next.MonthlyRent = *upd.MonthlyRent
	}
	if upd.PaymentDueDay != nil {
		next.PaymentDueDay = *upd.PaymentDueDay
	}
	if upd.SecurityDeposit != nil {
		next.SecurityDeposit = *upd.SecurityDeposit
	}
	if upd.IncludesWater != nil {
		next.IncludesWater = *upd.IncludesWater
	}
	if upd.IncludesElectricity != nil {
		next.IncludesElectricity = *upd.IncludesElectricity
	}
	if upd.IncludesInternet != nil {
		next.IncludesInternet = *upd.IncludesInternet
	}
	if upd.IncludesGas != nil {
		next.IncludesGas = *upd.IncludesGas
	}
	if upd.Clauses != nil {
		next.Clauses = *upd.Clauses
	}
	if err := next.Validate(); err != nil {
		return ContractTerms{}, err
	}
	return next, nil
}
