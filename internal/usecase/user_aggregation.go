package usecase

import (
	"sort"
	"strings"

	"imoveis_xpto/internal/domain/entities"
	"imoveis_xpto/internal/domain/valueobjects"
)

// UserPaymentSummary separates settled money from outstanding charges.
type UserPaymentSummary struct {
	TotalPayments      int
	TotalPaidAmount    float64
	TotalPendingAmount float64
}

// UserDetails is the full read model for one user: their payments,
// every relation touching them or someone possibly related.
type UserDetails struct {
	User           *entities.User
	PaymentSummary UserPaymentSummary
	Relationships  []*entities.UserApartmentRelation
	RelatedUsers   []*entities.User
}

// UserAggregationService joins users, relations and payments into read
// models. Pure over in-memory collections, like its apartment sibling.

type UserAggregationService struct{}

func NewUserAggregationService() *UserAggregationService {
	return &UserAggregationService{}
}

func valueObjectRolePriority(role string) int {
	return valueobjects.RelationRole(role).Priority()
}

// AggregateUserDetails builds the payment summary for a user and
// collects the relation records that touch the user or any of the
// possibly-related users. Paid amounts count paid and validated
// payments; pending amounts count pending only.
func (s *UserAggregationService) AggregateUserDetails(
	user *entities.User,
	relations []*entities.UserApartmentRelation,
	payments []*entities.Payment,
	relatedUsers []*entities.User,
) (out UserDetails, err error) {
	defer recoverAggregation(&err, UserAggregationErrorCode)

	out = UserDetails{User: user, RelatedUsers: relatedUsers}

	phones := make(map[string]struct{}, len(relatedUsers)+1)
	if user != nil {
		phones[user.Phone.E164] = struct{}{}
	}
	for _, ru := range relatedUsers {
		if ru != nil {
			phones[ru.Phone.E164] = struct{}{}
		}
	}

	for _, rel := range relations {
		if rel == nil {
			continue
		}
		if _, ok := phones[rel.UserPhone]; ok {
			out.Relationships = append(out.Relationships, rel)
		}
	}

	userPhone := ""
	if user != nil {
		userPhone = user.Phone.E164
	}
	for _, p := range payments {
		if p == nil || p.PayerPhone != userPhone {
			continue
		}
		out.PaymentSummary.TotalPayments++
		switch p.Status {
		case entities.PaymentStatusPaid, entities.PaymentStatusValidated:
			out.PaymentSummary.TotalPaidAmount += p.Amount
		case entities.PaymentStatusPending:
			out.PaymentSummary.TotalPendingAmount += p.Amount
		}
	}
	return out, nil
}

// AggregateUsersForApartment joins users to their relation roles and
// sorts by the fixed role priority: tenants, contacts, then staff.
func (s *UserAggregationService) AggregateUsersForApartment(
	users []*entities.User,
	relations []*entities.UserApartmentRelation,
) (out []UserWithRole, err error) {
	defer recoverAggregation(&err, UserAggregationErrorCode)

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
		out = append(out, UserWithRole{User: user, Role: string(rel.Role), IsActive: rel.IsActive})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return valueObjectRolePriority(out[i].Role) < valueObjectRolePriority(out[j].Role)
	})
	return out, nil
}

// FindPotentialRelatedUsers suggests users sharing any whitespace name
// token with the main user. A suggestion, never a hard relationship.
func (s *UserAggregationService) FindPotentialRelatedUsers(main *entities.User, users []*entities.User) (out []*entities.User, err error) {
	defer recoverAggregation(&err, UserAggregationErrorCode)

	if main == nil {
		return nil, nil
	}
	mainTokens := nameTokens(main.Name)
	if len(mainTokens) == 0 {
		return nil, nil
	}

	for _, u := range users {
		if u == nil || u.Phone.E164 == main.Phone.E164 {
			continue
		}
		for token := range nameTokens(u.Name) {
			if _, shared := mainTokens[token]; shared {
				out = append(out, u)
				break
			}
		}
	}
	return out, nil
}

func nameTokens(name string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, t := range strings.Fields(strings.ToLower(name)) {
		tokens[t] = struct{}{}
	}
	return tokens
}
