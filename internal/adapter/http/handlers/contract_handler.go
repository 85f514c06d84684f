package handlers

import (
	"net/http"

	request "imoveis_xpto/internal/adapter/http/dto/request"
	response "imoveis_xpto/internal/adapter/http/dto/response"
	"imoveis_xpto/internal/usecase"
	"imoveis_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// ContractHandler handles HTTP requests for rental contracts.

type ContractHandler struct {
	usecase usecase.IContractUseCase
}

func NewContractHandler(uc usecase.IContractUseCase) *ContractHandler {
	return &ContractHandler{usecase: uc}
}

// CreateContract godoc
//
//	@Summary	Create a rental contract
//	@Tags		contracts
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		request.CreateContractRequest	true	"Contract payload"
//	@Success	201		{object}	response.ContractResponse
//	@Router		/v1/contracts [post]
func (h *ContractHandler) CreateContract(c *gin.Context) {
	var payload request.CreateContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	if err := payload.Validate(); err != nil {
		respondError(c, err)
		return
	}

	contract, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromContract(contract))
}

func (h *ContractHandler) GetContract(c *gin.Context) {
	contract, err := h.usecase.GetByID(c.Request.Context(), c.Param("contract_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract))
}

// ListContracts filters by ?apartment= or ?tenant=; exactly one is
// required, there is no unscoped listing.
func (h *ContractHandler) ListContracts(c *gin.Context) {
	apartment := c.Query("apartment")
	tenant := c.Query("tenant")

	switch {
	case apartment != "" && tenant == "":
		contracts, err := h.usecase.ListByApartment(c.Request.Context(), apartment)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.FromContracts(contracts))
	case tenant != "" && apartment == "":
		contracts, err := h.usecase.ListByTenant(c.Request.Context(), tenant)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.FromContracts(contracts))
	default:
		respondError(c, pkg.NewValidationError("exactly one of apartment or tenant query params is required"))
	}
}

func (h *ContractHandler) ActivateContract(c *gin.Context) {
	var payload request.StatusChangeRequest
	_ = c.ShouldBindJSON(&payload)

	contract, err := h.usecase.Activate(c.Request.Context(), c.Param("contract_id"), actorOrDefault(payload.Actor))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract))
}

func (h *ContractHandler) TerminateContract(c *gin.Context) {
	var payload request.TerminateContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	if err := payload.Validate(); err != nil {
		respondError(c, err)
		return
	}

	contract, err := h.usecase.Terminate(c.Request.Context(), c.Param("contract_id"), actorOrDefault(payload.Actor), payload.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract))
}

func (h *ContractHandler) ExpireContract(c *gin.Context) {
	var payload request.StatusChangeRequest
	_ = c.ShouldBindJSON(&payload)

	contract, err := h.usecase.Expire(c.Request.Context(), c.Param("contract_id"), actorOrDefault(payload.Actor))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract))
}

func (h *ContractHandler) ExtendContract(c *gin.Context) {
	var payload request.ExtendContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	if err := payload.Validate(); err != nil {
		respondError(c, err)
		return
	}

	contract, err := h.usecase.Extend(c.Request.Context(), c.Param("contract_id"), payload.NewEndDate, actorOrDefault(payload.Actor))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract))
}

func (h *ContractHandler) UpdateContractTerms(c *gin.Context) {
	var payload request.UpdateContractTermsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	if err := payload.Validate(); err != nil {
		respondError(c, err)
		return
	}

	contract, err := h.usecase.UpdateTerms(c.Request.Context(), c.Param("contract_id"), payload.ToUpdate(), actorOrDefault(payload.Actor))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromContract(contract))
}
