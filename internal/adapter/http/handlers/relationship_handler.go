package handlers

import (
	"context"
	"net/http"

	request "imoveis_xpto/internal/adapter/http/dto/request"
	response "imoveis_xpto/internal/adapter/http/dto/response"
	"imoveis_xpto/internal/domain/entities"
	"imoveis_xpto/internal/domain/valueobjects"
	"imoveis_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// RelationshipHandler handles HTTP requests for user-apartment links.

type RelationshipHandler struct {
	usecase usecase.IRelationshipUseCase
}

func NewRelationshipHandler(uc usecase.IRelationshipUseCase) *RelationshipHandler {
	return &RelationshipHandler{usecase: uc}
}

func (h *RelationshipHandler) CreateRelationship(c *gin.Context) {
	var payload request.CreateRelationshipRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	if err := payload.Validate(); err != nil {
		respondError(c, err)
		return
	}

	relation, err := h.usecase.Create(c.Request.Context(), payload.ToInput(c.Param("unit_code")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromRelationship(relation))
}

func (h *RelationshipHandler) GetRelationship(c *gin.Context) {
	relation, err := h.usecase.Get(
		c.Request.Context(),
		c.Param("unit_code"), c.Param("phone"), valueobjects.RelationRole(c.Param("role")),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRelationship(relation))
}

func (h *RelationshipHandler) ListByApartment(c *gin.Context) {
	relations, err := h.usecase.ListByApartment(c.Request.Context(), c.Param("unit_code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRelationships(relations))
}

func (h *RelationshipHandler) ListByUser(c *gin.Context) {
	relations, err := h.usecase.ListByUser(c.Request.Context(), c.Param("phone"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRelationships(relations))
}

func (h *RelationshipHandler) ActivateRelationship(c *gin.Context) {
	h.patchRelationship(c, h.usecase.Activate)
}

func (h *RelationshipHandler) DeactivateRelationship(c *gin.Context) {
	h.patchRelationship(c, h.usecase.Deactivate)
}

func (h *RelationshipHandler) patchRelationship(
	c *gin.Context,
	updater func(ctx context.Context, unitCode, phone string, role valueobjects.RelationRole, actor string) (*entities.UserApartmentRelation, error),
) {
	var payload request.StatusChangeRequest
	_ = c.ShouldBindJSON(&payload)

	relation, err := updater(
		c.Request.Context(),
		c.Param("unit_code"), c.Param("phone"), valueobjects.RelationRole(c.Param("role")),
		actorOrDefault(payload.Actor),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRelationship(relation))
}

func (h *RelationshipHandler) DeleteRelationship(c *gin.Context) {
	err := h.usecase.Delete(
		c.Request.Context(),
		c.Param("unit_code"), c.Param("phone"), valueobjects.RelationRole(c.Param("role")),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
