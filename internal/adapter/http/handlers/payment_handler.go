package handlers

import (
	"net/http"
	"time"

	request "imoveis_xpto/internal/adapter/http/dto/request"
	response "imoveis_xpto/internal/adapter/http/dto/response"
	"imoveis_xpto/internal/adapter/mail"
	"imoveis_xpto/internal/usecase"
	"imoveis_xpto/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// PaymentHandler handles HTTP requests for rent and fee payments.
// Payments are addressed by apartment unit code plus payment id, the
// same pair that forms their storage key.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePayment godoc
//
//	@Summary	Create a payment
//	@Tags		payments
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		request.CreatePaymentRequest	true	"Payment payload"
//	@Success	201		{object}	response.PaymentResponse
//	@Router		/v1/payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var payload request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	if err := payload.Validate(); err != nil {
		respondError(c, err)
		return
	}

	payment, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromPayment(payment))
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.usecase.GetByID(c.Request.Context(), c.Param("unit_code"), c.Param("payment_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(payment))
}

// ListPaymentsByApartment lists an apartment's payments, newest first.
// Optional from/to query params (RFC 3339) narrow to the payments
// created inside that window.
func (h *PaymentHandler) ListPaymentsByApartment(c *gin.Context) {
	fromRaw := c.Query("from")
	toRaw := c.Query("to")
	if fromRaw == "" && toRaw == "" {
		payments, err := h.usecase.ListByApartment(c.Request.Context(), c.Param("unit_code"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.FromPayments(payments))
		return
	}
	if fromRaw == "" || toRaw == "" {
		respondError(c, pkg.NewValidationError("from and to query params must be given together"))
		return
	}
	from, err := time.Parse(time.RFC3339, fromRaw)
	if err != nil {
		respondError(c, pkg.NewValidationError("from: must be an RFC 3339 timestamp"))
		return
	}
	to, err := time.Parse(time.RFC3339, toRaw)
	if err != nil {
		respondError(c, pkg.NewValidationError("to: must be an RFC 3339 timestamp"))
		return
	}

	payments, err := h.usecase.ListByApartmentBetween(c.Request.Context(), c.Param("unit_code"), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func (h *PaymentHandler) ListPaymentsByContract(c *gin.Context) {
	payments, err := h.usecase.ListByContract(c.Request.Context(), c.Param("contract_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func (h *PaymentHandler) SubmitPaymentProof(c *gin.Context) {
	var payload request.SubmitProofRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	if err := payload.Validate(); err != nil {
		respondError(c, err)
		return
	}

	payment, err := h.usecase.SubmitProof(
		c.Request.Context(),
		c.Param("unit_code"), c.Param("payment_id"),
		payload.DocumentKey, payload.ResolvePaymentDate(), actorOrDefault(payload.Actor),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(payment))
}

func (h *PaymentHandler) ValidatePayment(c *gin.Context) {
	var payload request.StatusChangeRequest
	_ = c.ShouldBindJSON(&payload)

	payment, err := h.usecase.Validate(c.Request.Context(), c.Param("unit_code"), c.Param("payment_id"), actorOrDefault(payload.Actor))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(payment))
}

func (h *PaymentHandler) RejectPayment(c *gin.Context) {
	var payload request.RejectPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	if err := payload.Validate(); err != nil {
		respondError(c, err)
		return
	}

	payment, err := h.usecase.Reject(c.Request.Context(), c.Param("unit_code"), c.Param("payment_id"), actorOrDefault(payload.Actor), payload.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(payment))
}

func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	var payload request.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	if err := payload.Validate(); err != nil {
		respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	unitCode := c.Param("unit_code")
	paymentID := c.Param("payment_id")
	actor := actorOrDefault(payload.Actor)

	payment, err := h.usecase.GetByID(ctx, unitCode, paymentID)
	if err != nil {
		respondError(c, err)
		return
	}
	if payload.Amount != nil {
		if payment, err = h.usecase.UpdateAmount(ctx, unitCode, paymentID, *payload.Amount, actor); err != nil {
			respondError(c, err)
			return
		}
	}
	if payload.DueDate != nil {
		if payment, err = h.usecase.UpdateDueDate(ctx, unitCode, paymentID, *payload.DueDate, actor); err != nil {
			respondError(c, err)
			return
		}
	}
	if payload.Description != nil {
		if payment, err = h.usecase.UpdateDescription(ctx, unitCode, paymentID, *payload.Description, actor); err != nil {
			respondError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, response.FromPayment(payment))
}

func (h *PaymentHandler) MarkPaymentOverdue(c *gin.Context) {
	var payload request.StatusChangeRequest
	_ = c.ShouldBindJSON(&payload)

	payment, err := h.usecase.MarkOverdue(c.Request.Context(), c.Param("unit_code"), c.Param("payment_id"), actorOrDefault(payload.Actor))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(payment))
}

// RunOverdueSweep flags every pending payment past its due date.
func (h *PaymentHandler) RunOverdueSweep(c *gin.Context) {
	flagged, err := h.usecase.MarkOverdueBatch(c.Request.Context(), time.Now().UTC())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"flagged": flagged})
}

// IngestConfirmationEmail godoc
//
//	@Summary	Ingest a payment-confirmation email
//	@Tags		payments
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		request.ConfirmationEmailRequest	true	"Raw email"
//	@Success	200		{object}	response.PaymentResponse
//	@Router		/v1/payments/email [post]
func (h *PaymentHandler) IngestConfirmationEmail(c *gin.Context) {
	var payload request.ConfirmationEmailRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	if err := payload.Validate(); err != nil {
		respondError(c, err)
		return
	}

	msg := mail.ConfirmationEmail{
		MessageID: payload.MessageID,
		Subject:   payload.Subject,
		Body:      payload.Body,
	}
	if payload.ReceivedAt != nil {
		msg.ReceivedAt = *payload.ReceivedAt
	}

	input, err := mail.Parse(msg)
	if err != nil {
		log.Warn().Err(err).Str("message_id", payload.MessageID).Msg("[payment][http] email rejected by parser")
		respondError(c, err)
		return
	}

	payment, err := h.usecase.IngestConfirmationEmail(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(payment))
}
