package usecase

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"imoveis_xpto/internal/domain/entities"
	"imoveis_xpto/pkg"
)

const (
	PaymentAggregationErrorCode = "PAYMENT_AGGREGATION_ERROR"
	UserAggregationErrorCode    = "USER_AGGREGATION_ERROR"
)

// Payment status classification for an apartment as a whole.
const (
	ApartmentPaymentsNone     = "no_payments"
	ApartmentPaymentsOverdue  = "overdue"
	ApartmentPaymentsPending  = "pending"
	ApartmentPaymentsUpToDate = "up_to_date"
)

const recentPaymentsLimit = 10

// ApartmentPaymentSummary is the payment rollup for one apartment.
// Apartment may be nil when the caller could not load the unit; all
// sums then degrade to zero and the status is no_payments.
type ApartmentPaymentSummary struct {
	Apartment          *entities.Apartment
	TotalPayments      int
	TotalPaidAmount    float64
	TotalPendingAmount float64
	PendingCount       int
	OverdueCount       int
	LastPayment        *entities.Payment
	PaymentStatus      string
}

// UserWithRole pairs a user with the role a relation grants them.
type UserWithRole struct {
	User     *entities.User
	Role     string
	IsActive bool
}

// ApartmentDetails is the full read model for one apartment: residents,
// contract situation and the most recent payments.
type ApartmentDetails struct {
	Apartment       *entities.Apartment
	Residents       []UserWithRole
	ActiveContract  *entities.Contract
	ContractHistory []*entities.Contract
	RecentPayments  []*entities.Payment
}

// ApartmentLogEvent is one entry in an apartment's merged timeline.
type ApartmentLogEvent struct {
	Type        string
	Date        time.Time
	Description string
	ReferenceID string
}

// ApartmentLog is the apartment's timeline plus rollup statistics.
type ApartmentLog struct {
	Apartment      *entities.Apartment
	Events         []ApartmentLogEvent
	TotalContracts int
	TotalPayments  int
	TotalRevenue   float64
}

// ApartmentStatistics is the portfolio-wide rollup.
type ApartmentStatistics struct {
	TotalApartments    int
	OccupiedApartments int
	OccupancyRate      float64
	AverageRent        float64
	TotalPayments      int
	TotalRevenue       float64
}

// ApartmentAggregationService joins apartments with their payments,
// contracts and residents into read models. It is pure: all inputs are
// in-memory collections loaded by the caller.

type ApartmentAggregationService struct{}

func NewApartmentAggregationService() *ApartmentAggregationService {
	return &ApartmentAggregationService{}
}

// recoverAggregation converts a panic inside an aggregation into a
// domain error carrying the original message.
func recoverAggregation(err *error, code string) {
	if r := recover(); r != nil {
		*err = pkg.NewDomainError(code, fmt.Sprintf("%v", r), nil, http.StatusInternalServerError)
	}
}

// AggregateApartmentWithPaymentInfo filters payments down to the
// apartment's unit code and computes totals and a status
// classification. A nil apartment matches no payments.
func (s *ApartmentAggregationService) AggregateApartmentWithPaymentInfo(apartment *entities.Apartment, payments []*entities.Payment) (out ApartmentPaymentSummary, err error) {
	defer recoverAggregation(&err, PaymentAggregationErrorCode)

	unitCode := ""
	if apartment != nil {
		unitCode = apartment.UnitCode
	}

	out = ApartmentPaymentSummary{Apartment: apartment, PaymentStatus: ApartmentPaymentsNone}
	for _, p := range payments {
		if p == nil || p.ApartmentUnitCode != unitCode {
			continue
		}
		out.TotalPayments++
		switch p.Status {
		case entities.PaymentStatusPending:
			out.TotalPendingAmount += p.Amount
			out.PendingCount++
		case entities.PaymentStatusOverdue:
			out.TotalPendingAmount += p.Amount
			out.OverdueCount++
		default:
			// Proof was submitted: paid, validated or rejected.
			out.TotalPaidAmount += p.Amount
		}
		if out.LastPayment == nil || p.DueDate.After(out.LastPayment.DueDate) {
			out.LastPayment = p
		}
	}

	switch {
	case out.TotalPayments == 0:
		out.PaymentStatus = ApartmentPaymentsNone
	case out.OverdueCount > 0:
		out.PaymentStatus = ApartmentPaymentsOverdue
	case out.PendingCount > 0:
		out.PaymentStatus = ApartmentPaymentsPending
	default:
		out.PaymentStatus = ApartmentPaymentsUpToDate
	}
	return out, nil
}

// AggregateApartmentDetails joins users to their roles via relations,
// finds the contract in force plus the full history newest-first, and
// keeps the 10 most recent payments by due date.
func (s *ApartmentAggregationService) AggregateApartmentDetails(
	apartment *entities.Apartment,
	users []*entities.User,
	relations []*entities.UserApartmentRelation,
	contracts []*entities.Contract,
	payments []*entities.Payment,
) (out ApartmentDetails, err error) {
	defer recoverAggregation(&err, PaymentAggregationErrorCode)

	out = ApartmentDetails{Apartment: apartment}

	byPhone := make(map[string]*entities.User, len(users))
	for _, u := range users {
		if u != nil {
			byPhone[u.Phone.E164] = u
		}
	}
	for _, rel := range relations {
		if rel == nil {
			continue
		}
		user, ok := byPhone[rel.UserPhone]
		if !ok {
			continue
		}
		out.Residents = append(out.Residents, UserWithRole{User: user, Role: string(rel.Role), IsActive: rel.IsActive})
	}
	sort.SliceStable(out.Residents, func(i, j int) bool {
		ri := valueObjectRolePriority(out.Residents[i].Role)
		rj := valueObjectRolePriority(out.Residents[j].Role)
		return ri < rj
	})

	history := make([]*entities.Contract, 0, len(contracts))
	for _, c := range contracts {
		if c == nil {
			continue
		}
		history = append(history, c)
		if c.IsActive() && out.ActiveContract == nil {
			out.ActiveContract = c
		}
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].StartDate.After(history[j].StartDate)
	})
	out.ContractHistory = history

	recent := make([]*entities.Payment, 0, len(payments))
	for _, p := range payments {
		if p != nil {
			recent = append(recent, p)
		}
	}
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].DueDate.After(recent[j].DueDate)
	})
	if len(recent) > recentPaymentsLimit {
		recent = recent[:recentPaymentsLimit]
	}
	out.RecentPayments = recent

	return out, nil
}

// AggregateApartmentLog merges contract starts, payments and resident
// additions into one date-sorted timeline, oldest first, with revenue
// rollups. Revenue counts paid and validated payments only.
func (s *ApartmentAggregationService) AggregateApartmentLog(
	apartment *entities.Apartment,
	contracts []*entities.Contract,
	payments []*entities.Payment,
	relations []*entities.UserApartmentRelation,
) (out ApartmentLog, err error) {
	defer recoverAggregation(&err, PaymentAggregationErrorCode)

	out = ApartmentLog{Apartment: apartment}

	for _, c := range contracts {
		if c == nil {
			continue
		}
		out.TotalContracts++
		out.Events = append(out.Events, ApartmentLogEvent{
			Type:        "contract_started",
			Date:        c.StartDate,
			Description: fmt.Sprintf("contract with %s", c.TenantPhone),
			ReferenceID: c.ID,
		})
	}
	for _, p := range payments {
		if p == nil {
			continue
		}
		out.TotalPayments++
		if p.Status == entities.PaymentStatusPaid || p.Status == entities.PaymentStatusValidated {
			out.TotalRevenue += p.Amount
		}
		out.Events = append(out.Events, ApartmentLogEvent{
			Type:        "payment",
			Date:        p.DueDate,
			Description: fmt.Sprintf("%s payment of %.2f (%s)", p.Type, p.Amount, p.Status),
			ReferenceID: p.ID,
		})
	}
	for _, rel := range relations {
		if rel == nil {
			continue
		}
		out.Events = append(out.Events, ApartmentLogEvent{
			Type:        "user_added",
			Date:        rel.Metadata.CreatedAt,
			Description: fmt.Sprintf("%s added as %s", rel.UserPhone, rel.Role),
			ReferenceID: rel.UserPhone,
		})
	}

	sort.SliceStable(out.Events, func(i, j int) bool {
		return out.Events[i].Date.Before(out.Events[j].Date)
	})
	return out, nil
}

// AggregateApartmentStatistics computes portfolio occupancy and rent
// averages; empty portfolios yield zero rates instead of NaN.
func (s *ApartmentAggregationService) AggregateApartmentStatistics(apartments []*entities.Apartment, payments []*entities.Payment) (out ApartmentStatistics, err error) {
	defer recoverAggregation(&err, PaymentAggregationErrorCode)

	var rentSum float64
	for _, a := range apartments {
		if a == nil {
			continue
		}
		out.TotalApartments++
		rentSum += a.BaseRent
		if a.IsOccupied() {
			out.OccupiedApartments++
		}
	}
	if out.TotalApartments > 0 {
		out.OccupancyRate = float64(out.OccupiedApartments) / float64(out.TotalApartments) * 100
		out.AverageRent = rentSum / float64(out.TotalApartments)
	}

	for _, p := range payments {
		if p == nil {
			continue
		}
		out.TotalPayments++
		if p.Status == entities.PaymentStatusPaid || p.Status == entities.PaymentStatusValidated {
			out.TotalRevenue += p.Amount
		}
	}
	return out, nil
}
