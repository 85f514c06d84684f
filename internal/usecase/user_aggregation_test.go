package usecase

import (
	"testing"
	"time"

	"imoveis_xpto/internal/domain/entities"
	"imoveis_xpto/internal/domain/valueobjects"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateUserDetails(t *testing.T) {
	svc := NewUserAggregationService()

	t.Run("payment summary separates paid and pending", func(t *testing.T) {
		user := testUser(t, "+5511912345678", "Ana Souza")
		payments := []*entities.Payment{
			aggPayment(t, "pay-1", 2500, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), entities.PaymentStatusPaid),
			aggPayment(t, "pay-2", 2500, time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC), entities.PaymentStatusValidated),
			aggPayment(t, "pay-3", 2500, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), entities.PaymentStatusPending),
			// Overdue is neither paid nor pending in the summary.
			aggPayment(t, "pay-4", 300, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), entities.PaymentStatusOverdue),
		}

		out, err := svc.AggregateUserDetails(user, nil, payments, nil)
		require.NoError(t, err)
		assert.Equal(t, 4, out.PaymentSummary.TotalPayments)
		assert.InDelta(t, 5000, out.PaymentSummary.TotalPaidAmount, 0.001)
		assert.InDelta(t, 2500, out.PaymentSummary.TotalPendingAmount, 0.001)
	})

	t.Run("relationships include related users", func(t *testing.T) {
		user := testUser(t, "+5511912345678", "Ana Souza")
		related := testUser(t, "+5511988887777", "Beatriz Souza")
		stranger := testUser(t, "+5511900000000", "Carlos Pereira")

		relations := []*entities.UserApartmentRelation{
			testRelation(t, user.Phone.E164, valueobjects.RolePrimaryTenant),
			testRelation(t, related.Phone.E164, valueobjects.RoleSecondaryTenant),
			testRelation(t, stranger.Phone.E164, valueobjects.RoleEmergencyContact),
		}

		out, err := svc.AggregateUserDetails(user, relations, nil, []*entities.User{related})
		require.NoError(t, err)
		require.Len(t, out.Relationships, 2)
		phones := []string{out.Relationships[0].UserPhone, out.Relationships[1].UserPhone}
		assert.Contains(t, phones, user.Phone.E164)
		assert.Contains(t, phones, related.Phone.E164)
	})

	t.Run("nil user yields empty summary", func(t *testing.T) {
		payments := []*entities.Payment{
			aggPayment(t, "pay-1", 2500, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), entities.PaymentStatusPaid),
		}
		out, err := svc.AggregateUserDetails(nil, nil, payments, nil)
		require.NoError(t, err)
		assert.Zero(t, out.PaymentSummary.TotalPayments)
	})
}

func TestAggregateUsersForApartment(t *testing.T) {
	svc := NewUserAggregationService()

	t.Run("role priority order", func(t *testing.T) {
		ops := testUser(t, "+5511900000001", "Diego Ops")
		contact := testUser(t, "+5511900000002", "Elisa Contato")
		primary := testUser(t, "+5511900000003", "Fernanda Titular")
		admin := testUser(t, "+5511900000004", "Gustavo Admin")

		relations := []*entities.UserApartmentRelation{
			testRelation(t, ops.Phone.E164, valueobjects.RoleOps),
			testRelation(t, contact.Phone.E164, valueobjects.RoleEmergencyContact),
			testRelation(t, primary.Phone.E164, valueobjects.RolePrimaryTenant),
			testRelation(t, admin.Phone.E164, valueobjects.RoleAdmin),
		}

		out, err := svc.AggregateUsersForApartment([]*entities.User{ops, contact, primary, admin}, relations)
		require.NoError(t, err)
		require.Len(t, out, 4)
		assert.Equal(t, string(valueobjects.RolePrimaryTenant), out[0].Role)
		assert.Equal(t, string(valueobjects.RoleEmergencyContact), out[1].Role)
		assert.Equal(t, string(valueobjects.RoleAdmin), out[2].Role)
		assert.Equal(t, string(valueobjects.RoleOps), out[3].Role)
	})
}

func TestFindPotentialRelatedUsers(t *testing.T) {
	svc := NewUserAggregationService()

	t.Run("shares a name token", func(t *testing.T) {
		main := testUser(t, "+5511912345678", "Ana Souza")
		sibling := testUser(t, "+5511988887777", "Beatriz Souza")
		unrelated := testUser(t, "+5511900000000", "Carlos Pereira")

		out, err := svc.FindPotentialRelatedUsers(main, []*entities.User{main, sibling, unrelated})
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "Beatriz Souza", out[0].Name)
	})

	t.Run("token match is case insensitive", func(t *testing.T) {
		main := testUser(t, "+5511912345678", "Ana SOUZA")
		sibling := testUser(t, "+5511988887777", "Beatriz souza")

		out, err := svc.FindPotentialRelatedUsers(main, []*entities.User{sibling})
		require.NoError(t, err)
		require.Len(t, out, 1)
	})

	t.Run("main user excluded even with shared tokens", func(t *testing.T) {
		main := testUser(t, "+5511912345678", "Ana Souza")

		out, err := svc.FindPotentialRelatedUsers(main, []*entities.User{main})
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("nil main yields nothing", func(t *testing.T) {
		other := testUser(t, "+5511988887777", "Beatriz Souza")
		out, err := svc.FindPotentialRelatedUsers(nil, []*entities.User{other})
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}
