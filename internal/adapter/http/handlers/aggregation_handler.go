package handlers

import (
	"context"
	"net/http"

	response "imoveis_xpto/internal/adapter/http/dto/response"
	"imoveis_xpto/internal/domain/entities"
	"imoveis_xpto/internal/usecase"
	"imoveis_xpto/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// AggregationHandler serves the cross-entity read models. It loads
// the raw slices through the usecases and hands them to the pure
// aggregation services.

type AggregationHandler struct {
	apartments    usecase.IApartmentUseCase
	contracts     usecase.IContractUseCase
	payments      usecase.IPaymentUseCase
	relationships usecase.IRelationshipUseCase
	users         usecase.IUserUseCase

	apartmentAgg *usecase.ApartmentAggregationService
	userAgg      *usecase.UserAggregationService
}

func NewAggregationHandler(
	apartments usecase.IApartmentUseCase,
	contracts usecase.IContractUseCase,
	payments usecase.IPaymentUseCase,
	relationships usecase.IRelationshipUseCase,
	users usecase.IUserUseCase,
) *AggregationHandler {
	return &AggregationHandler{
		apartments:    apartments,
		contracts:     contracts,
		payments:      payments,
		relationships: relationships,
		users:         users,
		apartmentAgg:  usecase.NewApartmentAggregationService(),
		userAgg:       usecase.NewUserAggregationService(),
	}
}

// GetApartmentSummary godoc
//
//	@Summary	Apartment payment summary
//	@Tags		apartments
//	@Produce	json
//	@Param		unit_code	path		string	true	"Apartment unit code"
//	@Success	200			{object}	response.ApartmentSummaryResponse
//	@Router		/v1/apartments/{unit_code}/summary [get]
func (h *AggregationHandler) GetApartmentSummary(c *gin.Context) {
	ctx := c.Request.Context()
	unitCode := c.Param("unit_code")

	apartment, err := h.apartments.GetByUnitCode(ctx, unitCode)
	if err != nil {
		respondError(c, err)
		return
	}
	payments, err := h.payments.ListByApartment(ctx, unitCode)
	if err != nil {
		respondError(c, err)
		return
	}

	summary, err := h.apartmentAgg.AggregateApartmentWithPaymentInfo(apartment, payments)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromApartmentSummary(summary))
}

func (h *AggregationHandler) GetApartmentDetails(c *gin.Context) {
	ctx := c.Request.Context()
	unitCode := c.Param("unit_code")

	apartment, err := h.apartments.GetByUnitCode(ctx, unitCode)
	if err != nil {
		respondError(c, err)
		return
	}
	relations, err := h.relationships.ListByApartment(ctx, unitCode)
	if err != nil {
		respondError(c, err)
		return
	}
	users := h.loadUsers(ctx, relations)
	contracts, err := h.contracts.ListByApartment(ctx, unitCode)
	if err != nil {
		respondError(c, err)
		return
	}
	payments, err := h.payments.ListByApartment(ctx, unitCode)
	if err != nil {
		respondError(c, err)
		return
	}

	details, err := h.apartmentAgg.AggregateApartmentDetails(apartment, users, relations, contracts, payments)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromApartmentDetails(details))
}

// GetApartmentUsers godoc
//
//	@Summary	Apartment residents with their roles
//	@Tags		apartments
//	@Produce	json
//	@Param		unit_code	path		string	true	"Apartment unit code"
//	@Success	200			{array}		response.ResidentResponse
//	@Router		/v1/apartments/{unit_code}/users [get]
func (h *AggregationHandler) GetApartmentUsers(c *gin.Context) {
	ctx := c.Request.Context()
	unitCode := c.Param("unit_code")

	if _, err := h.apartments.GetByUnitCode(ctx, unitCode); err != nil {
		respondError(c, err)
		return
	}
	relations, err := h.relationships.ListByApartment(ctx, unitCode)
	if err != nil {
		respondError(c, err)
		return
	}
	users := h.loadUsers(ctx, relations)

	residents, err := h.userAgg.AggregateUsersForApartment(users, relations)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromApartmentResidents(residents))
}

func (h *AggregationHandler) GetApartmentLog(c *gin.Context) {
	ctx := c.Request.Context()
	unitCode := c.Param("unit_code")

	apartment, err := h.apartments.GetByUnitCode(ctx, unitCode)
	if err != nil {
		respondError(c, err)
		return
	}
	contracts, err := h.contracts.ListByApartment(ctx, unitCode)
	if err != nil {
		respondError(c, err)
		return
	}
	payments, err := h.payments.ListByApartment(ctx, unitCode)
	if err != nil {
		respondError(c, err)
		return
	}
	relations, err := h.relationships.ListByApartment(ctx, unitCode)
	if err != nil {
		respondError(c, err)
		return
	}

	logModel, err := h.apartmentAgg.AggregateApartmentLog(apartment, contracts, payments, relations)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromApartmentLog(logModel))
}

func (h *AggregationHandler) GetApartmentStatistics(c *gin.Context) {
	ctx := c.Request.Context()

	apartments, err := h.apartments.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	var payments []*entities.Payment
	for _, a := range apartments {
		batch, err := h.payments.ListByApartment(ctx, a.UnitCode)
		if err != nil {
			respondError(c, err)
			return
		}
		payments = append(payments, batch...)
	}

	stats, err := h.apartmentAgg.AggregateApartmentStatistics(apartments, payments)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromApartmentStatistics(stats))
}

func (h *AggregationHandler) GetUserDetails(c *gin.Context) {
	ctx := c.Request.Context()

	user, err := h.users.GetByPhone(ctx, c.Param("phone"))
	if err != nil {
		respondError(c, err)
		return
	}

	relations, err := h.relationships.ListByUser(ctx, user.Phone.E164)
	if err != nil {
		respondError(c, err)
		return
	}

	// Pull the neighbors and payments of every apartment the user is
	// linked to; the service filters them down to what belongs in the
	// read model.
	var (
		allRelations []*entities.UserApartmentRelation
		payments     []*entities.Payment
		seen         = map[string]bool{}
	)
	allRelations = append(allRelations, relations...)
	for _, rel := range relations {
		if seen[rel.ApartmentUnitCode] {
			continue
		}
		seen[rel.ApartmentUnitCode] = true

		siblings, err := h.relationships.ListByApartment(ctx, rel.ApartmentUnitCode)
		if err != nil {
			respondError(c, err)
			return
		}
		for _, s := range siblings {
			if s.UserPhone != user.Phone.E164 {
				allRelations = append(allRelations, s)
			}
		}

		batch, err := h.payments.ListByApartment(ctx, rel.ApartmentUnitCode)
		if err != nil {
			respondError(c, err)
			return
		}
		payments = append(payments, batch...)
	}

	relatedUsers := h.loadUsers(ctx, allRelations)
	related := make([]*entities.User, 0, len(relatedUsers))
	relatedPhones := map[string]bool{user.Phone.E164: true}
	for _, u := range relatedUsers {
		if u.Phone.E164 != user.Phone.E164 {
			related = append(related, u)
			relatedPhones[u.Phone.E164] = true
		}
	}

	// Beyond co-residents, suggest users sharing a name token with the
	// main user anywhere on the platform.
	allUsers, err := h.users.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	suggested, err := h.userAgg.FindPotentialRelatedUsers(user, allUsers)
	if err != nil {
		respondError(c, err)
		return
	}
	for _, u := range suggested {
		if !relatedPhones[u.Phone.E164] {
			related = append(related, u)
			relatedPhones[u.Phone.E164] = true
		}
	}

	details, err := h.userAgg.AggregateUserDetails(user, allRelations, payments, related)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromUserDetails(details))
}

// loadUsers resolves the distinct phones behind a set of relations.
// A relation pointing at a deleted user is skipped, not fatal.
func (h *AggregationHandler) loadUsers(ctx context.Context, relations []*entities.UserApartmentRelation) []*entities.User {
	seen := map[string]bool{}
	users := make([]*entities.User, 0, len(relations))
	for _, rel := range relations {
		if seen[rel.UserPhone] {
			continue
		}
		seen[rel.UserPhone] = true

		user, err := h.users.GetByPhone(ctx, rel.UserPhone)
		if err != nil {
			if !pkg.IsNotFound(err) {
				log.Warn().Err(err).Str("phone", rel.UserPhone).Msg("[aggregation][http] user load failed")
			}
			continue
		}
		users = append(users, user)
	}
	return users
}
