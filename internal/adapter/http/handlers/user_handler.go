package handlers

import (
	"context"
	"net/http"

	request "imoveis_xpto/internal/adapter/http/dto/request"
	response "imoveis_xpto/internal/adapter/http/dto/response"
	"imoveis_xpto/internal/domain/entities"
	"imoveis_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for user accounts.

type UserHandler struct {
	usecase usecase.IUserUseCase
}

func NewUserHandler(uc usecase.IUserUseCase) *UserHandler {
	return &UserHandler{usecase: uc}
}

// CreateUser godoc
//
//	@Summary	Create a user
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		request.CreateUserRequest	true	"User payload"
//	@Success	201		{object}	response.UserResponse
//	@Router		/v1/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var payload request.CreateUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	if err := payload.Validate(); err != nil {
		respondError(c, err)
		return
	}

	user, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromUser(user))
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromUsers(users))
}

func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.usecase.GetByPhone(c.Request.Context(), c.Param("phone"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	var payload request.UpdateUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	if err := payload.Validate(); err != nil {
		respondError(c, err)
		return
	}

	user, err := h.usecase.UpdateProfile(c.Request.Context(), c.Param("phone"), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func (h *UserHandler) ActivateUser(c *gin.Context) {
	h.patchUserStatus(c, h.usecase.Activate)
}

func (h *UserHandler) DeactivateUser(c *gin.Context) {
	h.patchUserStatus(c, h.usecase.Deactivate)
}

func (h *UserHandler) SuspendUser(c *gin.Context) {
	h.patchUserStatus(c, h.usecase.Suspend)
}

func (h *UserHandler) patchUserStatus(
	c *gin.Context,
	updater func(ctx context.Context, phone, actor string) (*entities.User, error),
) {
	var payload request.StatusChangeRequest
	_ = c.ShouldBindJSON(&payload)

	user, err := updater(c.Request.Context(), c.Param("phone"), actorOrDefault(payload.Actor))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("phone")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
