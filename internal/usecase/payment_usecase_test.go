package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"imoveis_xpto/internal/domain/entities"
	"imoveis_xpto/internal/domain/valueobjects"
	"imoveis_xpto/internal/usecase/interfaces"
	mock_interfaces "imoveis_xpto/internal/usecase/interfaces/mocks"
	"imoveis_xpto/pkg"

	"go.uber.org/mock/gomock"
)

func testContract(t *testing.T, id string) *entities.Contract {
	t.Helper()
	c, err := entities.NewContract(entities.NewContractProps{
		ID:                id,
		ApartmentUnitCode: "APT-101",
		TenantPhone:       "+5511912345678",
		StartDate:         time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:           time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
		Terms: valueobjects.ContractTerms{
			MonthlyRent:   2500,
			PaymentDueDay: 5,
		},
		CreatedBy: "admin",
	})
	if err != nil {
		t.Fatalf("unexpected error building contract: %v", err)
	}
	return c
}

func testPayment(t *testing.T, id string, amount float64, dueDate time.Time) *entities.Payment {
	t.Helper()
	p, err := entities.NewPayment(entities.NewPaymentProps{
		ID:                id,
		ApartmentUnitCode: "APT-101",
		PayerPhone:        "+5511912345678",
		Amount:            amount,
		DueDate:           dueDate,
		ContractID:        "contract-1",
		CreatedBy:         "admin",
	})
	if err != nil {
		t.Fatalf("unexpected error building payment: %v", err)
	}
	return p
}

func TestPaymentUseCase_Create(t *testing.T) {
	t.Run("empty contract id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), CreatePaymentInput{ApartmentUnitCode: "APT-101"})
		if !pkg.IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("contract not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contractRepo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewPaymentUseCase(nil, contractRepo, nil)

		contractRepo.EXPECT().GetByID(gomock.Any(), "contract-1").Return(nil, nil)

		_, err := uc.Create(context.Background(), CreatePaymentInput{ContractID: "contract-1"})
		if !pkg.IsNotFound(err) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("terminated contract refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contractRepo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewPaymentUseCase(nil, contractRepo, nil)

		contract := testContract(t, "contract-1")
		if err := contract.Terminate("admin", "tenant left"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		contractRepo.EXPECT().GetByID(gomock.Any(), "contract-1").Return(contract, nil)

		_, err := uc.Create(context.Background(), CreatePaymentInput{
			ApartmentUnitCode: "APT-101",
			PayerPhone:        "+5511912345678",
			Amount:            2500,
			DueDate:           time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC),
			ContractID:        "contract-1",
		})
		if !pkg.IsBusinessRuleViolation(err) {
			t.Fatalf("expected business rule violation, got %v", err)
		}
	})

	t.Run("create success without gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		contractRepo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewPaymentUseCase(repo, contractRepo, nil)

		contractRepo.EXPECT().GetByID(gomock.Any(), "contract-1").Return(testContract(t, "contract-1"), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(&entities.Payment{})).DoAndReturn(
			func(_ context.Context, p *entities.Payment) (*entities.Payment, error) {
				if p.ID == "" || p.Status != entities.PaymentStatusPending || p.Type != entities.PaymentTypeRent {
					t.Fatalf("unexpected payment: %+v", p)
				}
				return p, nil
			},
		)

		created, err := uc.Create(context.Background(), CreatePaymentInput{
			ApartmentUnitCode: "APT-101",
			PayerPhone:        "+5511912345678",
			Amount:            2500,
			DueDate:           time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC),
			ContractID:        "contract-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Amount != 2500 {
			t.Fatalf("expected amount 2500, got %v", created.Amount)
		}
	})

	t.Run("gateway failure does not fail creation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		contractRepo := mock_interfaces.NewMockIContractRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, contractRepo, gateway)

		contractRepo.EXPECT().GetByID(gomock.Any(), "contract-1").Return(testContract(t, "contract-1"), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p *entities.Payment) (*entities.Payment, error) { return p, nil },
		)
		gateway.EXPECT().CreatePixCharge(gomock.Any(), gomock.AssignableToTypeOf(interfaces.PixChargeRequest{})).
			Return("", "", nil, errors.New("gateway down"))

		_, err := uc.Create(context.Background(), CreatePaymentInput{
			ApartmentUnitCode: "APT-101",
			PayerPhone:        "+5511912345678",
			Amount:            2500,
			DueDate:           time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC),
			ContractID:        "contract-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPaymentUseCase_SubmitProof(t *testing.T) {
	t.Run("payment not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "APT-101", "pay-1").Return(nil, nil)

		_, err := uc.SubmitProof(context.Background(), "APT-101", "pay-1", "proofs/x.pdf", time.Now(), "tenant")
		if !pkg.IsNotFound(err) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("proof advances contract last payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		contractRepo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewPaymentUseCase(repo, contractRepo, nil)

		payment := testPayment(t, "pay-1", 2500, time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC))
		paidAt := time.Date(2026, 2, 3, 12, 0, 0, 0, time.UTC)

		repo.EXPECT().GetByID(gomock.Any(), "APT-101", "pay-1").Return(payment, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p *entities.Payment) (*entities.Payment, error) {
				if p.Status != entities.PaymentStatusPaid || p.ProofDocumentKey != "proofs/x.pdf" {
					t.Fatalf("unexpected payment after proof: %+v", p)
				}
				return p, nil
			},
		)
		contractRepo.EXPECT().GetByID(gomock.Any(), "contract-1").Return(testContract(t, "contract-1"), nil)
		contractRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c *entities.Contract) (*entities.Contract, error) {
				if c.LastPaymentID != "pay-1" || c.LastPaymentDate == nil || !c.LastPaymentDate.Equal(paidAt) {
					t.Fatalf("expected last payment pointer, got %+v", c)
				}
				return c, nil
			},
		)

		saved, err := uc.SubmitProof(context.Background(), "APT-101", "pay-1", "proofs/x.pdf", paidAt, "tenant")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.Status != entities.PaymentStatusPaid {
			t.Fatalf("expected paid, got %s", saved.Status)
		}
	})
}

func TestPaymentUseCase_MarkOverdueBatch(t *testing.T) {
	t.Run("flags due pending payments and skips failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil, nil)

		now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		due1 := testPayment(t, "pay-1", 2500, time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC))
		due2 := testPayment(t, "pay-2", 300, time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC))
		// Already paid between listing and the sweep.
		raced := testPayment(t, "pay-3", 2500, time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC))
		if err := raced.SubmitProof("proofs/r.pdf", now, "tenant"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		repo.EXPECT().ListPendingDueBefore(gomock.Any(), now).Return([]*entities.Payment{due1, due2, raced}, nil)
		repo.EXPECT().Save(gomock.Any(), due1).Return(due1, nil)
		repo.EXPECT().Save(gomock.Any(), due2).Return(nil, errors.New("conditional check failed"))

		flagged, err := uc.MarkOverdueBatch(context.Background(), now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if flagged != 1 {
			t.Fatalf("expected 1 flagged, got %d", flagged)
		}
		if due1.Status != entities.PaymentStatusOverdue {
			t.Fatalf("expected overdue, got %s", due1.Status)
		}
	})

	t.Run("list error aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil, nil)

		repo.EXPECT().ListPendingDueBefore(gomock.Any(), gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.MarkOverdueBatch(context.Background(), time.Now())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestPaymentUseCase_IngestConfirmationEmail(t *testing.T) {
	t.Run("matches oldest open payment with same amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		contractRepo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewPaymentUseCase(repo, contractRepo, nil)

		older := testPayment(t, "pay-1", 2500, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC))
		newer := testPayment(t, "pay-2", 2500, time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC))
		other := testPayment(t, "pay-3", 300, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
		paidAt := time.Date(2026, 1, 4, 10, 0, 0, 0, time.UTC)

		repo.EXPECT().ListByApartment(gomock.Any(), "APT-101").Return([]*entities.Payment{newer, other, older}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "APT-101", "pay-1").Return(older, nil)
		repo.EXPECT().Save(gomock.Any(), older).Return(older, nil)
		contractRepo.EXPECT().GetByID(gomock.Any(), "contract-1").Return(testContract(t, "contract-1"), nil)
		contractRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c *entities.Contract) (*entities.Contract, error) { return c, nil },
		)

		matched, err := uc.IngestConfirmationEmail(context.Background(), ConfirmationEmailInput{
			ApartmentUnitCode: "APT-101",
			Amount:            2500,
			PaidAt:            paidAt,
			MessageID:         "msg-42",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if matched.ID != "pay-1" {
			t.Fatalf("expected pay-1 matched, got %s", matched.ID)
		}
		if matched.ProofDocumentKey != "email/msg-42" {
			t.Fatalf("unexpected proof key %q", matched.ProofDocumentKey)
		}
	})

	t.Run("no open payment with amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil, nil)

		settled := testPayment(t, "pay-1", 2500, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC))
		if err := settled.SubmitProof("proofs/x.pdf", time.Now(), "tenant"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		repo.EXPECT().ListByApartment(gomock.Any(), "APT-101").Return([]*entities.Payment{settled}, nil)

		_, err := uc.IngestConfirmationEmail(context.Background(), ConfirmationEmailInput{
			ApartmentUnitCode: "APT-101",
			Amount:            2500,
			PaidAt:            time.Now(),
			MessageID:         "msg-42",
		})
		if !pkg.IsNotFound(err) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("invalid amount", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil)
		_, err := uc.IngestConfirmationEmail(context.Background(), ConfirmationEmailInput{
			ApartmentUnitCode: "APT-101",
			PaidAt:            time.Now(),
		})
		if !pkg.IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestPaymentUseCase_ValidateReject(t *testing.T) {
	t.Run("validate requires paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil, nil)

		pending := testPayment(t, "pay-1", 2500, time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC))
		repo.EXPECT().GetByID(gomock.Any(), "APT-101", "pay-1").Return(pending, nil)

		_, err := uc.Validate(context.Background(), "APT-101", "pay-1", "admin")
		if !pkg.IsBusinessRuleViolation(err) {
			t.Fatalf("expected business rule violation, got %v", err)
		}
	})

	t.Run("reject paid payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil, nil)

		paid := testPayment(t, "pay-1", 2500, time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC))
		if err := paid.SubmitProof("proofs/x.pdf", time.Now(), "tenant"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		repo.EXPECT().GetByID(gomock.Any(), "APT-101", "pay-1").Return(paid, nil)
		repo.EXPECT().Save(gomock.Any(), paid).Return(paid, nil)

		rejected, err := uc.Reject(context.Background(), "APT-101", "pay-1", "admin", "blurry receipt")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rejected.Status != entities.PaymentStatusRejected || rejected.RejectionReason != "blurry receipt" {
			t.Fatalf("unexpected payment: %+v", rejected)
		}
	})
}

func TestPaymentUseCase_ListByApartmentBetween(t *testing.T) {
	t.Run("delegates the window to the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, mock_interfaces.NewMockIContractRepository(ctrl), nil)

		from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)
		expected := []*entities.Payment{testPayment(t, "pay-1", 2500, to)}
		repo.EXPECT().ListByApartmentBetween(gomock.Any(), "APT-101", from, to).Return(expected, nil)

		payments, err := uc.ListByApartmentBetween(context.Background(), "  APT-101  ", from, to)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(payments) != 1 || payments[0].ID != "pay-1" {
			t.Fatalf("unexpected payments: %v", payments)
		}
	})

	t.Run("rejects an inverted window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, mock_interfaces.NewMockIContractRepository(ctrl), nil)

		from := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		_, err := uc.ListByApartmentBetween(context.Background(), "APT-101", from, to)
		if !pkg.IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("rejects an empty unit code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, mock_interfaces.NewMockIContractRepository(ctrl), nil)

		now := time.Now().UTC()
		_, err := uc.ListByApartmentBetween(context.Background(), "   ", now.Add(-time.Hour), now)
		if !pkg.IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}
