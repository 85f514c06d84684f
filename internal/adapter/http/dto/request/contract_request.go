package request

import (
	"strings"
	"time"

	"imoveis_xpto/internal/domain/valueobjects"
	"imoveis_xpto/internal/usecase"
	"imoveis_xpto/pkg"
)

type ContractTermsRequest struct {
	MonthlyRent     float64 `json:"monthly_rent" binding:"required"`
	PaymentDueDay   int     `json:"payment_due_day" binding:"required"`
	SecurityDeposit float64 `json:"security_deposit"`

	IncludesWater       bool `json:"includes_water"`
	IncludesElectricity bool `json:"includes_electricity"`
	IncludesInternet    bool `json:"includes_internet"`
	IncludesGas         bool `json:"includes_gas"`

	Clauses string `json:"clauses"`
}

func (r ContractTermsRequest) toTerms() valueobjects.ContractTerms {
	return valueobjects.ContractTerms{
		MonthlyRent:         r.MonthlyRent,
		PaymentDueDay:       r.PaymentDueDay,
		SecurityDeposit:     r.SecurityDeposit,
		IncludesWater:       r.IncludesWater,
		IncludesElectricity: r.IncludesElectricity,
		IncludesInternet:    r.IncludesInternet,
		IncludesGas:         r.IncludesGas,
		Clauses:             strings.TrimSpace(r.Clauses),
	}
}

type CreateContractRequest struct {
	ApartmentUnitCode string               `json:"apartment_unit_code" binding:"required"`
	TenantPhone       string               `json:"tenant_phone" binding:"required"`
	StartDate         time.Time            `json:"start_date" binding:"required"`
	EndDate           time.Time            `json:"end_date" binding:"required"`
	Terms             ContractTermsRequest `json:"terms" binding:"required"`
	Actor             string               `json:"actor"`
}

func (r CreateContractRequest) Validate() error {
	var fields []pkg.FieldError
	if strings.TrimSpace(r.ApartmentUnitCode) == "" {
		fields = append(fields, pkg.FieldError{Field: "apartment_unit_code", Message: "cannot be empty"})
	}
	if strings.TrimSpace(r.TenantPhone) == "" {
		fields = append(fields, pkg.FieldError{Field: "tenant_phone", Message: "cannot be empty"})
	}
	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		fields = append(fields, pkg.FieldError{Field: "start_date/end_date", Message: "are required"})
	} else if !r.EndDate.After(r.StartDate) {
		fields = append(fields, pkg.FieldError{Field: "end_date", Message: "must be after start_date"})
	}
	if r.Terms.MonthlyRent <= 0 {
		fields = append(fields, pkg.FieldError{Field: "terms.monthly_rent", Message: "must be positive"})
	}
	if r.Terms.PaymentDueDay < 1 || r.Terms.PaymentDueDay > 31 {
		fields = append(fields, pkg.FieldError{Field: "terms.payment_due_day", Message: "must be between 1 and 31"})
	}
	if len(fields) > 0 {
		return pkg.NewValidationErrorFields(fields)
	}
	return nil
}

func (r CreateContractRequest) ToInput() usecase.CreateContractInput {
	return usecase.CreateContractInput{
		ApartmentUnitCode: strings.TrimSpace(r.ApartmentUnitCode),
		TenantPhone:       strings.TrimSpace(r.TenantPhone),
		StartDate:         r.StartDate,
		EndDate:           r.EndDate,
		Terms:             r.Terms.toTerms(),
		CreatedBy:         actorOrDefault(r.Actor),
	}
}

type TerminateContractRequest struct {
	Reason string `json:"reason" binding:"required"`
	Actor  string `json:"actor"`
}

func (r TerminateContractRequest) Validate() error {
	if strings.TrimSpace(r.Reason) == "" {
		return pkg.NewValidationErrorFields([]pkg.FieldError{
			{Field: "reason", Message: "cannot be empty"},
		})
	}
	return nil
}

type ExtendContractRequest struct {
	NewEndDate time.Time `json:"new_end_date" binding:"required"`
	Actor      string    `json:"actor"`
}

func (r ExtendContractRequest) Validate() error {
	if r.NewEndDate.IsZero() {
		return pkg.NewValidationErrorFields([]pkg.FieldError{
			{Field: "new_end_date", Message: "is required"},
		})
	}
	return nil
}

type UpdateContractTermsRequest struct {
	MonthlyRent     *float64 `json:"monthly_rent"`
	PaymentDueDay   *int     `json:"payment_due_day"`
	SecurityDeposit *float64 `json:"security_deposit"`

	IncludesWater       *bool `json:"includes_water"`
	IncludesElectricity *bool `json:"includes_electricity"`
	IncludesInternet    *bool `json:"includes_internet"`
	IncludesGas         *bool `json:"includes_gas"`

	Clauses *string `json:"clauses"`
	Actor   string  `json:"actor"`
}

func (r UpdateContractTermsRequest) Validate() error {
	var fields []pkg.FieldError
	if r.MonthlyRent != nil && *r.MonthlyRent <= 0 {
		fields = append(fields, pkg.FieldError{Field: "monthly_rent", Message: "must be positive"})
	}
	if r.PaymentDueDay != nil && (*r.PaymentDueDay < 1 || *r.PaymentDueDay > 31) {
		fields = append(fields, pkg.FieldError{Field: "payment_due_day", Message: "must be between 1 and 31"})
	}
	if r.SecurityDeposit != nil && *r.SecurityDeposit < 0 {
		fields = append(fields, pkg.FieldError{Field: "security_deposit", Message: "cannot be negative"})
	}
	if len(fields) > 0 {
		return pkg.NewValidationErrorFields(fields)
	}
	return nil
}

func (r UpdateContractTermsRequest) ToUpdate() valueobjects.TermsUpdate {
	return valueobjects.TermsUpdate{
		MonthlyRent:         r.MonthlyRent,
		PaymentDueDay:       r.PaymentDueDay,
		SecurityDeposit:     r.SecurityDeposit,
		IncludesWater:       r.IncludesWater,
		IncludesElectricity: r.IncludesElectricity,
		IncludesInternet:    r.IncludesInternet,
		IncludesGas:         r.IncludesGas,
		Clauses:             r.Clauses,
	}
}
