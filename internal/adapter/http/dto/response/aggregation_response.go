package response

import (
	"time"

	"imoveis_xpto/internal/usecase"
)

type ApartmentSummaryResponse struct {
	Apartment          *ApartmentResponse `json:"apartment"`
	TotalPayments      int                `json:"total_payments"`
	TotalPaidAmount    float64            `json:"total_paid_amount"`
	TotalPendingAmount float64            `json:"total_pending_amount"`
	PendingCount       int                `json:"pending_count"`
	OverdueCount       int                `json:"overdue_count"`
	LastPayment        *PaymentResponse   `json:"last_payment,omitempty"`
	PaymentStatus      string             `json:"payment_status"`
}

func FromApartmentSummary(s usecase.ApartmentPaymentSummary) ApartmentSummaryResponse {
	resp := ApartmentSummaryResponse{
		TotalPayments:      s.TotalPayments,
		TotalPaidAmount:    s.TotalPaidAmount,
		TotalPendingAmount: s.TotalPendingAmount,
		PendingCount:       s.PendingCount,
		OverdueCount:       s.OverdueCount,
		PaymentStatus:      s.PaymentStatus,
	}
	if s.Apartment != nil {
		v := FromApartment(s.Apartment)
		resp.Apartment = &v
	}
	if s.LastPayment != nil {
		v := FromPayment(s.LastPayment)
		resp.LastPayment = &v
	}
	return resp
}

type ResidentResponse struct {
	User     UserResponse `json:"user"`
	Role     string       `json:"role"`
	IsActive bool         `json:"is_active"`
}

type ApartmentDetailsResponse struct {
	Apartment       *ApartmentResponse `json:"apartment"`
	Residents       []ResidentResponse `json:"residents"`
	ActiveContract  *ContractResponse  `json:"active_contract,omitempty"`
	ContractHistory []ContractResponse `json:"contract_history"`
	RecentPayments  []PaymentResponse  `json:"recent_payments"`
}

func FromApartmentDetails(d usecase.ApartmentDetails) ApartmentDetailsResponse {
	resp := ApartmentDetailsResponse{
		Residents:       make([]ResidentResponse, 0, len(d.Residents)),
		ContractHistory: FromContracts(d.ContractHistory),
		RecentPayments:  FromPayments(d.RecentPayments),
	}
	if d.Apartment != nil {
		v := FromApartment(d.Apartment)
		resp.Apartment = &v
	}
	if d.ActiveContract != nil {
		v := FromContract(d.ActiveContract)
		resp.ActiveContract = &v
	}
	for _, res := range d.Residents {
		if res.User == nil {
			continue
		}
		resp.Residents = append(resp.Residents, ResidentResponse{
			User:     FromUser(res.User),
			Role:     res.Role,
			IsActive: res.IsActive,
		})
	}
	return resp
}

// FromApartmentResidents maps the standalone resident listing; the
// slice arrives already sorted by role priority.
func FromApartmentResidents(residents []usecase.UserWithRole) []ResidentResponse {
	out := make([]ResidentResponse, 0, len(residents))
	for _, res := range residents {
		if res.User == nil {
			continue
		}
		out = append(out, ResidentResponse{
			User:     FromUser(res.User),
			Role:     res.Role,
			IsActive: res.IsActive,
		})
	}
	return out
}

type ApartmentLogEventResponse struct {
	Type        string `json:"type"`
	Date        string `json:"date"`
	Description string `json:"description"`
	ReferenceID string `json:"reference_id,omitempty"`
}

type ApartmentLogResponse struct {
	Apartment      *ApartmentResponse          `json:"apartment"`
	Events         []ApartmentLogEventResponse `json:"events"`
	TotalContracts int                         `json:"total_contracts"`
	TotalPayments  int                         `json:"total_payments"`
	TotalRevenue   float64                     `json:"total_revenue"`
}

func FromApartmentLog(l usecase.ApartmentLog) ApartmentLogResponse {
	resp := ApartmentLogResponse{
		Events:         make([]ApartmentLogEventResponse, 0, len(l.Events)),
		TotalContracts: l.TotalContracts,
		TotalPayments:  l.TotalPayments,
		TotalRevenue:   l.TotalRevenue,
	}
	if l.Apartment != nil {
		v := FromApartment(l.Apartment)
		resp.Apartment = &v
	}
	for _, ev := range l.Events {
		resp.Events = append(resp.Events, ApartmentLogEventResponse{
			Type:        ev.Type,
			Date:        ev.Date.UTC().Format(time.RFC3339),
			Description: ev.Description,
			ReferenceID: ev.ReferenceID,
		})
	}
	return resp
}

type ApartmentStatisticsResponse struct {
	TotalApartments    int     `json:"total_apartments"`
	OccupiedApartments int     `json:"occupied_apartments"`
	OccupancyRate      float64 `json:"occupancy_rate"`
	AverageRent        float64 `json:"average_rent"`
	TotalPayments      int     `json:"total_payments"`
	TotalRevenue       float64 `json:"total_revenue"`
}

func FromApartmentStatistics(s usecase.ApartmentStatistics) ApartmentStatisticsResponse {
	return ApartmentStatisticsResponse{
		TotalApartments:    s.TotalApartments,
		OccupiedApartments: s.OccupiedApartments,
		OccupancyRate:      s.OccupancyRate,
		AverageRent:        s.AverageRent,
		TotalPayments:      s.TotalPayments,
		TotalRevenue:       s.TotalRevenue,
	}
}

type UserPaymentSummaryResponse struct {
	TotalPayments      int     `json:"total_payments"`
	TotalPaidAmount    float64 `json:"total_paid_amount"`
	TotalPendingAmount float64 `json:"total_pending_amount"`
}

type UserDetailsResponse struct {
	User           *UserResponse              `json:"user"`
	PaymentSummary UserPaymentSummaryResponse `json:"payment_summary"`
	Relationships  []RelationshipResponse     `json:"relationships"`
	RelatedUsers   []UserResponse             `json:"related_users"`
}

func FromUserDetails(d usecase.UserDetails) UserDetailsResponse {
	resp := UserDetailsResponse{
		PaymentSummary: UserPaymentSummaryResponse{
			TotalPayments:      d.PaymentSummary.TotalPayments,
			TotalPaidAmount:    d.PaymentSummary.TotalPaidAmount,
			TotalPendingAmount: d.PaymentSummary.TotalPendingAmount,
		},
		Relationships: FromRelationships(d.Relationships),
		RelatedUsers:  FromUsers(d.RelatedUsers),
	}
	if d.User != nil {
		v := FromUser(d.User)
		resp.User = &v
	}
	return resp
}
