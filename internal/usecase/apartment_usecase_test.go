package usecase

import (
	"context"
	"testing"

	"imoveis_xpto/internal/domain/entities"
	mock_interfaces "imoveis_xpto/internal/usecase/interfaces/mocks"
	"imoveis_xpto/pkg"

	"go.uber.org/mock/gomock"
)

func TestApartmentUseCase_Create(t *testing.T) {
	t.Run("duplicate unit code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIApartmentRepository(ctrl)
		uc := NewApartmentUseCase(repo, nil)

		repo.EXPECT().GetByUnitCode(gomock.Any(), "APT-101").Return(testApartment(t, "APT-101"), nil)

		_, err := uc.Create(context.Background(), entities.NewApartmentProps{
			UnitCode: "APT-101",
			Label:    "Studio",
			BaseRent: 2500,
		})
		if !pkg.IsBusinessRuleViolation(err) {
			t.Fatalf("expected business rule violation, got %v", err)
		}
	})

	t.Run("create success defaults available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIApartmentRepository(ctrl)
		uc := NewApartmentUseCase(repo, nil)

		repo.EXPECT().GetByUnitCode(gomock.Any(), "APT-101").Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(&entities.Apartment{})).DoAndReturn(
			func(_ context.Context, a *entities.Apartment) (*entities.Apartment, error) {
				if a.Status != entities.ApartmentStatusAvailable || !a.IsAvailable {
					t.Fatalf("unexpected apartment: %+v", a)
				}
				return a, nil
			},
		)

		created, err := uc.Create(context.Background(), entities.NewApartmentProps{
			UnitCode: "APT-101",
			Label:    "Studio",
			BaseRent: 2500,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.RentalType != entities.RentalTypeLongTerm {
			t.Fatalf("expected long_term default, got %s", created.RentalType)
		}
	})
}

func TestApartmentUseCase_Delete(t *testing.T) {
	t.Run("refused while contract active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIApartmentRepository(ctrl)
		contractRepo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewApartmentUseCase(repo, contractRepo)

		repo.EXPECT().GetByUnitCode(gomock.Any(), "APT-101").Return(testApartment(t, "APT-101"), nil)
		contractRepo.EXPECT().FindActiveByApartment(gomock.Any(), "APT-101").Return(testContract(t, "contract-1"), nil)

		err := uc.Delete(context.Background(), "APT-101")
		if !pkg.IsBusinessRuleViolation(err) {
			t.Fatalf("expected business rule violation, got %v", err)
		}
	})

	t.Run("deleted when no active contract", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIApartmentRepository(ctrl)
		contractRepo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewApartmentUseCase(repo, contractRepo)

		repo.EXPECT().GetByUnitCode(gomock.Any(), "APT-101").Return(testApartment(t, "APT-101"), nil)
		contractRepo.EXPECT().FindActiveByApartment(gomock.Any(), "APT-101").Return(nil, nil)
		repo.EXPECT().Delete(gomock.Any(), "APT-101").Return(nil)

		if err := uc.Delete(context.Background(), "APT-101"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestApartmentUseCase_ChangeStatus(t *testing.T) {
	t.Run("same status rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIApartmentRepository(ctrl)
		uc := NewApartmentUseCase(repo, nil)

		repo.EXPECT().GetByUnitCode(gomock.Any(), "APT-101").Return(testApartment(t, "APT-101"), nil)

		_, err := uc.ChangeStatus(context.Background(), "APT-101", entities.ApartmentStatusAvailable, "admin")
		if !pkg.IsBusinessRuleViolation(err) {
			t.Fatalf("expected business rule violation, got %v", err)
		}
	})

	t.Run("maintenance clears availability", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIApartmentRepository(ctrl)
		uc := NewApartmentUseCase(repo, nil)

		apt := testApartment(t, "APT-101")
		repo.EXPECT().GetByUnitCode(gomock.Any(), "APT-101").Return(apt, nil)
		repo.EXPECT().Save(gomock.Any(), apt).Return(apt, nil)

		changed, err := uc.ChangeStatus(context.Background(), "APT-101", entities.ApartmentStatusMaintenance, "admin")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if changed.IsAvailable {
			t.Fatalf("expected unavailable during maintenance")
		}
	})
}
