package usecase

import (
	"context"
	"math"
	"os"
	"strings"
	"time"

	"imoveis_xpto/internal/domain/entities"
	"imoveis_xpto/internal/usecase/interfaces"
	"imoveis_xpto/pkg"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// amountMatchTolerance absorbs rounding between the bank's confirmation
// email and the stored charge.
const amountMatchTolerance = 0.01

// IPaymentUseCase manages the payment lifecycle: creation, proof
// submission, validation and the overdue sweep.

type IPaymentUseCase interface {
	Create(ctx context.Context, input CreatePaymentInput) (*entities.Payment, error)
	GetByID(ctx context.Context, unitCode, paymentID string) (*entities.Payment, error)
	ListByApartment(ctx context.Context, unitCode string) ([]*entities.Payment, error)
	ListByApartmentBetween(ctx context.Context, unitCode string, from, to time.Time) ([]*entities.Payment, error)
	ListByContract(ctx context.Context, contractID string) ([]*entities.Payment, error)
	SubmitProof(ctx context.Context, unitCode, paymentID, documentKey string, paymentDate time.Time, actor string) (*entities.Payment, error)
	Validate(ctx context.Context, unitCode, paymentID, validatorID string) (*entities.Payment, error)
	Reject(ctx context.Context, unitCode, paymentID, validatorID, reason string) (*entities.Payment, error)
	MarkOverdue(ctx context.Context, unitCode, paymentID, actor string) (*entities.Payment, error)
	MarkOverdueBatch(ctx context.Context, now time.Time) (int, error)
	UpdateAmount(ctx context.Context, unitCode, paymentID string, amount float64, actor string) (*entities.Payment, error)
	UpdateDueDate(ctx context.Context, unitCode, paymentID string, dueDate time.Time, actor string) (*entities.Payment, error)
	UpdateDescription(ctx context.Context, unitCode, paymentID, description, actor string) (*entities.Payment, error)
	IngestConfirmationEmail(ctx context.Context, input ConfirmationEmailInput) (*entities.Payment, error)
}

type CreatePaymentInput struct {
	ApartmentUnitCode string
	PayerPhone        string
	PayerEmail        string
	Amount            float64
	DueDate           time.Time
	ContractID        string
	Type              entities.PaymentType
	Description       string
	CreatedBy         string
}

// ConfirmationEmailInput is the normalized form of a bank confirmation
// email, produced by the mail adapter.
type ConfirmationEmailInput struct {
	ApartmentUnitCode string
	Amount            float64
	PaidAt            time.Time
	MessageID         string
}

type PaymentUseCase struct {
	repo         interfaces.IPaymentRepository
	contractRepo interfaces.IContractRepository
	gateway      interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, contractRepo interfaces.IContractRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, contractRepo: contractRepo, gateway: gateway}
}

// Create registers a pending payment against an apartment. The linked
// contract must exist and must not be terminated. Rent payments get a
// PIX charge issued through the gateway when one is configured; a
// gateway failure does not undo the already-recorded payment.
func (u *PaymentUseCase) Create(ctx context.Context, input CreatePaymentInput) (*entities.Payment, error) {
	contractID := strings.TrimSpace(input.ContractID)
	log.Info().Str("unit_code", input.ApartmentUnitCode).Str("contract_id", contractID).Msg("[payment][usecase] create start")

	if contractID == "" {
		return nil, pkg.NewValidationError("payment.contract_id: cannot be empty")
	}
	contract, err := u.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, pkg.NewEntityNotFound("contract", contractID)
	}
	if contract.IsTerminated() {
		log.Warn().Str("contract_id", contractID).Msg("[payment][usecase] create refused, terminated contract")
		return nil, pkg.NewBusinessRuleViolation("cannot create payment for terminated contract " + contractID)
	}

	payment, err := entities.NewPayment(entities.NewPaymentProps{
		ID:                uuid.NewString(),
		ApartmentUnitCode: input.ApartmentUnitCode,
		PayerPhone:        input.PayerPhone,
		Amount:            input.Amount,
		DueDate:           input.DueDate,
		ContractID:        contractID,
		Type:              input.Type,
		Description:       input.Description,
		CreatedBy:         input.CreatedBy,
	})
	if err != nil {
		log.Warn().Err(err).Str("unit_code", input.ApartmentUnitCode).Msg("[payment][usecase] create rejected")
		return nil, err
	}

	created, err := u.repo.Create(ctx, payment)
	if err != nil {
		log.Error().Err(err).Str("payment_id", payment.ID).Msg("[payment][usecase] create failed")
		return nil, err
	}

	if created.Type == entities.PaymentTypeRent && u.gateway != nil && !isPaymentGatewayMockEnabled() {
		chargeID, chargeStatus, _, gwErr := u.gateway.CreatePixCharge(ctx, interfaces.PixChargeRequest{
			PaymentID:   created.ID,
			Amount:      created.Amount,
			PayerEmail:  strings.TrimSpace(input.PayerEmail),
			Description: created.Description,
		})
		if gwErr != nil {
			log.Warn().Err(gwErr).Str("payment_id", created.ID).Msg("[payment][usecase] pix charge failed")
		} else {
			log.Info().Str("payment_id", created.ID).Str("charge_id", chargeID).Str("charge_status", chargeStatus).Msg("[payment][usecase] pix charge issued")
		}
	}

	log.Info().Str("payment_id", created.ID).Str("unit_code", created.ApartmentUnitCode).Msg("[payment][usecase] create success")
	return created, nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, unitCode, paymentID string) (*entities.Payment, error) {
	unitCode = strings.TrimSpace(unitCode)
	paymentID = strings.TrimSpace(paymentID)
	if unitCode == "" {
		return nil, pkg.NewValidationError("payment.apartment_unit_code: cannot be empty")
	}
	if paymentID == "" {
		return nil, pkg.NewValidationError("payment.id: cannot be empty")
	}
	payment, err := u.repo.GetByID(ctx, unitCode, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, pkg.NewEntityNotFound("payment", paymentID)
	}
	return payment, nil
}

func (u *PaymentUseCase) ListByApartment(ctx context.Context, unitCode string) ([]*entities.Payment, error) {
	unitCode = strings.TrimSpace(unitCode)
	if unitCode == "" {
		return nil, pkg.NewValidationError("payment.apartment_unit_code: cannot be empty")
	}
	return u.repo.ListByApartment(ctx, unitCode)
}

// ListByApartmentBetween narrows the apartment listing to payments
// created inside [from, to].
func (u *PaymentUseCase) ListByApartmentBetween(ctx context.Context, unitCode string, from, to time.Time) ([]*entities.Payment, error) {
	unitCode = strings.TrimSpace(unitCode)
	if unitCode == "" {
		return nil, pkg.NewValidationError("payment.apartment_unit_code: cannot be empty")
	}
	if from.After(to) {
		return nil, pkg.NewValidationError("payment.from: must not be after to")
	}
	return u.repo.ListByApartmentBetween(ctx, unitCode, from, to)
}

func (u *PaymentUseCase) ListByContract(ctx context.Context, contractID string) ([]*entities.Payment, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return nil, pkg.NewValidationError("payment.contract_id: cannot be empty")
	}
	return u.repo.ListByContract(ctx, contractID)
}

// SubmitProof records a proof document, moves the payment to paid and
// advances the contract's last-payment pointer.
func (u *PaymentUseCase) SubmitProof(ctx context.Context, unitCode, paymentID, documentKey string, paymentDate time.Time, actor string) (*entities.Payment, error) {
	payment, err := u.GetByID(ctx, unitCode, paymentID)
	if err != nil {
		return nil, err
	}
	if err := payment.SubmitProof(documentKey, paymentDate, actor); err != nil {
		return nil, err
	}
	saved, err := u.repo.Save(ctx, payment)
	if err != nil {
		log.Error().Err(err).Str("payment_id", payment.ID).Msg("[payment][usecase] proof save failed")
		return nil, err
	}
	u.advanceLastPayment(ctx, saved, actor)
	log.Info().Str("payment_id", saved.ID).Msg("[payment][usecase] proof submitted")
	return saved, nil
}

func (u *PaymentUseCase) Validate(ctx context.Context, unitCode, paymentID, validatorID string) (*entities.Payment, error) {
	payment, err := u.GetByID(ctx, unitCode, paymentID)
	if err != nil {
		return nil, err
	}
	if err := payment.Validate(validatorID); err != nil {
		return nil, err
	}
	saved, err := u.repo.Save(ctx, payment)
	if err != nil {
		return nil, err
	}
	log.Info().Str("payment_id", saved.ID).Str("validator_id", saved.ValidatedBy).Msg("[payment][usecase] validated")
	return saved, nil
}

func (u *PaymentUseCase) Reject(ctx context.Context, unitCode, paymentID, validatorID, reason string) (*entities.Payment, error) {
	payment, err := u.GetByID(ctx, unitCode, paymentID)
	if err != nil {
		return nil, err
	}
	if err := payment.Reject(validatorID, reason); err != nil {
		return nil, err
	}
	saved, err := u.repo.Save(ctx, payment)
	if err != nil {
		return nil, err
	}
	log.Info().Str("payment_id", saved.ID).Str("reason", saved.RejectionReason).Msg("[payment][usecase] rejected")
	return saved, nil
}

func (u *PaymentUseCase) MarkOverdue(ctx context.Context, unitCode, paymentID, actor string) (*entities.Payment, error) {
	payment, err := u.GetByID(ctx, unitCode, paymentID)
	if err != nil {
		return nil, err
	}
	if err := payment.MarkOverdue(actor); err != nil {
		return nil, err
	}
	saved, err := u.repo.Save(ctx, payment)
	if err != nil {
		return nil, err
	}
	log.Info().Str("payment_id", saved.ID).Msg("[payment][usecase] marked overdue")
	return saved, nil
}

// MarkOverdueBatch sweeps pending payments whose due date passed and
// flags them overdue, returning how many were flagged. A failure on one
// payment does not abort the sweep.
func (u *PaymentUseCase) MarkOverdueBatch(ctx context.Context, now time.Time) (int, error) {
	due, err := u.repo.ListPendingDueBefore(ctx, now)
	if err != nil {
		return 0, err
	}
	log.Info().Int("candidates", len(due)).Time("cutoff", now).Msg("[payment][usecase] overdue sweep start")

	flagged := 0
	for _, payment := range due {
		if err := payment.MarkOverdue("system"); err != nil {
			// Raced with a proof submission or a previous sweep.
			log.Warn().Err(err).Str("payment_id", payment.ID).Msg("[payment][usecase] overdue sweep skip")
			continue
		}
		if _, err := u.repo.Save(ctx, payment); err != nil {
			log.Warn().Err(err).Str("payment_id", payment.ID).Msg("[payment][usecase] overdue sweep save failed")
			continue
		}
		flagged++
	}
	log.Info().Int("flagged", flagged).Msg("[payment][usecase] overdue sweep done")
	return flagged, nil
}

func (u *PaymentUseCase) UpdateAmount(ctx context.Context, unitCode, paymentID string, amount float64, actor string) (*entities.Payment, error) {
	return u.mutate(ctx, unitCode, paymentID, func(p *entities.Payment) error { return p.UpdateAmount(amount, actor) })
}

func (u *PaymentUseCase) UpdateDueDate(ctx context.Context, unitCode, paymentID string, dueDate time.Time, actor string) (*entities.Payment, error) {
	return u.mutate(ctx, unitCode, paymentID, func(p *entities.Payment) error { return p.UpdateDueDate(dueDate, actor) })
}

func (u *PaymentUseCase) UpdateDescription(ctx context.Context, unitCode, paymentID, description, actor string) (*entities.Payment, error) {
	return u.mutate(ctx, unitCode, paymentID, func(p *entities.Payment) error { return p.UpdateDescription(description, actor) })
}

func (u *PaymentUseCase) mutate(ctx context.Context, unitCode, paymentID string, apply func(*entities.Payment) error) (*entities.Payment, error) {
	payment, err := u.GetByID(ctx, unitCode, paymentID)
	if err != nil {
		return nil, err
	}
	if err := apply(payment); err != nil {
		return nil, err
	}
	return u.repo.Save(ctx, payment)
}

// IngestConfirmationEmail matches a parsed bank confirmation against
// the apartment's open payments and submits the email as proof. The
// oldest pending/overdue payment with the confirmed amount wins.
func (u *PaymentUseCase) IngestConfirmationEmail(ctx context.Context, input ConfirmationEmailInput) (*entities.Payment, error) {
	unitCode := strings.TrimSpace(input.ApartmentUnitCode)
	log.Info().Str("unit_code", unitCode).Float64("amount", input.Amount).Msg("[payment][usecase] email ingest start")

	if unitCode == "" {
		return nil, pkg.NewValidationError("payment.apartment_unit_code: cannot be empty")
	}
	if input.Amount <= 0 {
		return nil, pkg.NewValidationError("payment.amount: must be greater than zero")
	}
	if input.PaidAt.IsZero() {
		return nil, pkg.NewValidationError("payment.payment_date: is required")
	}

	payments, err := u.repo.ListByApartment(ctx, unitCode)
	if err != nil {
		return nil, err
	}

	var match *entities.Payment
	for _, p := range payments {
		if p.Status != entities.PaymentStatusPending && p.Status != entities.PaymentStatusOverdue {
			continue
		}
		if math.Abs(p.Amount-input.Amount) > amountMatchTolerance {
			continue
		}
		if match == nil || p.DueDate.Before(match.DueDate) {
			match = p
		}
	}
	if match == nil {
		log.Warn().Str("unit_code", unitCode).Float64("amount", input.Amount).Msg("[payment][usecase] email ingest no match")
		return nil, pkg.NewEntityNotFound("open payment for amount", unitCode)
	}

	documentKey := "email/" + strings.TrimSpace(input.MessageID)
	if documentKey == "email/" {
		documentKey = "email/" + uuid.NewString()
	}
	return u.SubmitProof(ctx, unitCode, match.ID, documentKey, input.PaidAt, "email-ingest")
}

// advanceLastPayment keeps the contract's last-payment pointer fresh.
// The payment is already saved, so failures here only log.
func (u *PaymentUseCase) advanceLastPayment(ctx context.Context, payment *entities.Payment, actor string) {
	if payment.PaymentDate == nil {
		return
	}
	contract, err := u.contractRepo.GetByID(ctx, payment.ContractID)
	if err != nil || contract == nil {
		log.Warn().Err(err).Str("contract_id", payment.ContractID).Msg("[payment][usecase] last-payment sync skipped")
		return
	}
	if contract.LastPaymentDate != nil && !payment.PaymentDate.After(*contract.LastPaymentDate) {
		return
	}
	if err := contract.UpdateLastPayment(payment.ID, *payment.PaymentDate, actor); err != nil {
		log.Warn().Err(err).Str("contract_id", contract.ID).Msg("[payment][usecase] last-payment sync rejected")
		return
	}
	if _, err := u.contractRepo.Save(ctx, contract); err != nil {
		log.Warn().Err(err).Str("contract_id", contract.ID).Msg("[payment][usecase] last-payment sync failed")
	}
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
