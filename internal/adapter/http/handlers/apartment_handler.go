package handlers

import (
	"net/http"

	request "imoveis_xpto/internal/adapter/http/dto/request"
	response "imoveis_xpto/internal/adapter/http/dto/response"
	"imoveis_xpto/internal/domain/entities"
	"imoveis_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ApartmentHandler handles HTTP requests for apartment units.

type ApartmentHandler struct {
	usecase usecase.IApartmentUseCase
}

func NewApartmentHandler(uc usecase.IApartmentUseCase) *ApartmentHandler {
	return &ApartmentHandler{usecase: uc}
}

// CreateApartment godoc
//
//	@Summary	Register an apartment unit
//	@Tags		apartments
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		request.CreateApartmentRequest	true	"Apartment payload"
//	@Success	201		{object}	response.ApartmentResponse
//	@Router		/v1/apartments [post]
func (h *ApartmentHandler) CreateApartment(c *gin.Context) {
	var payload request.CreateApartmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	if err := payload.Validate(); err != nil {
		respondError(c, err)
		return
	}

	apartment, err := h.usecase.Create(c.Request.Context(), payload.ToProps())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromApartment(apartment))
}

// ListApartments returns every unit, optionally filtered by ?status=.
func (h *ApartmentHandler) ListApartments(c *gin.Context) {
	var (
		apartments []*entities.Apartment
		err        error
	)
	if status := c.Query("status"); status != "" {
		apartments, err = h.usecase.ListByStatus(c.Request.Context(), entities.ApartmentStatus(status))
	} else {
		apartments, err = h.usecase.List(c.Request.Context())
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromApartments(apartments))
}

func (h *ApartmentHandler) GetApartment(c *gin.Context) {
	apartment, err := h.usecase.GetByUnitCode(c.Request.Context(), c.Param("unit_code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromApartment(apartment))
}

func (h *ApartmentHandler) UpdateApartment(c *gin.Context) {
	var payload request.UpdateApartmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	if err := payload.Validate(); err != nil {
		respondError(c, err)
		return
	}

	apartment, err := h.usecase.Update(c.Request.Context(), c.Param("unit_code"), payload.ToUpdate(), actorOrDefault(payload.Actor))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromApartment(apartment))
}

func (h *ApartmentHandler) ChangeApartmentStatus(c *gin.Context) {
	var payload request.ChangeApartmentStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	if err := payload.Validate(); err != nil {
		respondError(c, err)
		return
	}

	apartment, err := h.usecase.ChangeStatus(c.Request.Context(), c.Param("unit_code"), entities.ApartmentStatus(payload.Status), actorOrDefault(payload.Actor))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromApartment(apartment))
}

func (h *ApartmentHandler) MarkApartmentAvailable(c *gin.Context) {
	var payload request.MarkAvailableRequest
	_ = c.ShouldBindJSON(&payload)

	apartment, err := h.usecase.MarkAvailable(c.Request.Context(), c.Param("unit_code"), payload.AvailableFrom, actorOrDefault(payload.Actor))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromApartment(apartment))
}

func (h *ApartmentHandler) DeleteApartment(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("unit_code")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
