package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"imoveis_xpto/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/rs/zerolog/log"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway issues PIX charges for rent payments through the
// Mercado Pago API. In mock mode (PAYMENT_GATEWAY_MOCK) it fabricates
// approved charges locally, which keeps local and CI runs offline.

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Info().Msg("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Warn().Msg("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error().Err(err).Msg("[payment][gateway] failed creating sdk config")
		return nil, err
	}
	log.Info().Msg("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreatePixCharge(ctx context.Context, req interfaces.PixChargeRequest) (string, string, json.RawMessage, error) {
	if g != nil && g.mockMode {
		return g.mockCharge(req)
	}
	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	log.Info().
		Str("payment_id", req.PaymentID).
		Float64("amount", req.Amount).
		Msg("[payment][gateway] pix charge start")

	mpReq := payment.Request{
		TransactionAmount: req.Amount,
		Description:       req.Description,
		PaymentMethodID:   "pix",
		ExternalReference: req.PaymentID,
		Payer: &payment.PayerRequest{
			Email: req.PayerEmail,
		},
	}

	resp, err := g.client.Create(ctx, mpReq)
	if err != nil {
		log.Error().Err(err).Str("payment_id", req.PaymentID).Msg("[payment][gateway] sdk create failed")
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Error().Err(err).Msg("[payment][gateway] response marshal failed")
		return "", "", nil, err
	}
	log.Info().
		Str("payment_id", req.PaymentID).
		Str("provider_charge_id", fmt.Sprintf("%d", resp.ID)).
		Str("provider_status", resp.Status).
		Msg("[payment][gateway] pix charge success")

	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

func (g *MercadoPagoGateway) mockCharge(req interfaces.PixChargeRequest) (string, string, json.RawMessage, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)

	resp := map[string]any{
		"id":                 id,
		"status":             "approved",
		"status_detail":      "accredited",
		"date_created":       now,
		"date_approved":      now,
		"external_reference": req.PaymentID,
		"transaction_amount": req.Amount,
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}

	log.Info().
		Str("payment_id", req.PaymentID).
		Str("provider_charge_id", id).
		Msg("[payment][gateway] mock pix charge accepted")
	return id, "approved", b, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
