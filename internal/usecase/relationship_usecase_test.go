package usecase

import (
	"context"
	"testing"

	"imoveis_xpto/internal/domain/entities"
	"imoveis_xpto/internal/domain/valueobjects"
	mock_interfaces "imoveis_xpto/internal/usecase/interfaces/mocks"
	"imoveis_xpto/pkg"

	"go.uber.org/mock/gomock"
)

func testRelation(t *testing.T, phone string, role valueobjects.RelationRole) *entities.UserApartmentRelation {
	t.Helper()
	rel, err := entities.NewUserApartmentRelation(entities.NewRelationProps{
		ApartmentUnitCode: "APT-101",
		UserPhone:         phone,
		Role:              role,
		RelationshipType:  "spouse",
		CreatedBy:         "admin",
	})
	if err != nil {
		t.Fatalf("unexpected error building relation: %v", err)
	}
	return rel
}

func testUser(t *testing.T, phone, name string) *entities.User {
	t.Helper()
	u, err := entities.NewUser(entities.NewUserProps{
		Phone:     phone,
		Region:    "BR",
		Name:      name,
		CreatedBy: "admin",
	})
	if err != nil {
		t.Fatalf("unexpected error building user: %v", err)
	}
	return u
}

func testApartment(t *testing.T, unitCode string) *entities.Apartment {
	t.Helper()
	a, err := entities.NewApartment(entities.NewApartmentProps{
		UnitCode:  unitCode,
		Label:     "Studio " + unitCode,
		BaseRent:  2500,
		CreatedBy: "admin",
	})
	if err != nil {
		t.Fatalf("unexpected error building apartment: %v", err)
	}
	return a
}

func TestRelationshipUseCase_Create(t *testing.T) {
	t.Run("invalid role", func(t *testing.T) {
		uc := NewRelationshipUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), CreateRelationshipInput{
			ApartmentUnitCode: "APT-101",
			UserPhone:         "+5511912345678",
			Role:              "LANDLORD",
		})
		if !pkg.IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("second active primary tenant refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRelationRepository(ctrl)
		userRepo := mock_interfaces.NewMockIUserRepository(ctrl)
		aptRepo := mock_interfaces.NewMockIApartmentRepository(ctrl)
		uc := NewRelationshipUseCase(repo, userRepo, aptRepo)

		aptRepo.EXPECT().GetByUnitCode(gomock.Any(), "APT-101").Return(testApartment(t, "APT-101"), nil)
		userRepo.EXPECT().GetByPhone(gomock.Any(), "+5511988887777").Return(testUser(t, "+5511988887777", "Ana Souza"), nil)
		repo.EXPECT().Get(gomock.Any(), "APT-101", "+5511988887777", valueobjects.RolePrimaryTenant).Return(nil, nil)
		repo.EXPECT().ListByApartmentRole(gomock.Any(), "APT-101", valueobjects.RolePrimaryTenant).
			Return([]*entities.UserApartmentRelation{testRelation(t, "+5511912345678", valueobjects.RolePrimaryTenant)}, nil)

		_, err := uc.Create(context.Background(), CreateRelationshipInput{
			ApartmentUnitCode: "APT-101",
			UserPhone:         "+5511988887777",
			Role:              valueobjects.RolePrimaryTenant,
		})
		if !pkg.IsBusinessRuleViolation(err) {
			t.Fatalf("expected business rule violation, got %v", err)
		}
	})

	t.Run("same phone may re-acquire primary tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRelationRepository(ctrl)
		userRepo := mock_interfaces.NewMockIUserRepository(ctrl)
		aptRepo := mock_interfaces.NewMockIApartmentRepository(ctrl)
		uc := NewRelationshipUseCase(repo, userRepo, aptRepo)

		phone := "+5511912345678"
		aptRepo.EXPECT().GetByUnitCode(gomock.Any(), "APT-101").Return(testApartment(t, "APT-101"), nil)
		userRepo.EXPECT().GetByPhone(gomock.Any(), phone).Return(testUser(t, phone, "Ana Souza"), nil)
		repo.EXPECT().Get(gomock.Any(), "APT-101", phone, valueobjects.RolePrimaryTenant).Return(nil, nil)
		repo.EXPECT().ListByApartmentRole(gomock.Any(), "APT-101", valueobjects.RolePrimaryTenant).
			Return([]*entities.UserApartmentRelation{testRelation(t, phone, valueobjects.RolePrimaryTenant)}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r *entities.UserApartmentRelation) (*entities.UserApartmentRelation, error) { return r, nil },
		)

		created, err := uc.Create(context.Background(), CreateRelationshipInput{
			ApartmentUnitCode: "APT-101",
			UserPhone:         phone,
			Role:              valueobjects.RolePrimaryTenant,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !created.IsActive {
			t.Fatalf("expected active relation")
		}
	})

	t.Run("duplicate relation refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRelationRepository(ctrl)
		userRepo := mock_interfaces.NewMockIUserRepository(ctrl)
		aptRepo := mock_interfaces.NewMockIApartmentRepository(ctrl)
		uc := NewRelationshipUseCase(repo, userRepo, aptRepo)

		phone := "+5511912345678"
		existing := testRelation(t, phone, valueobjects.RoleEmergencyContact)
		aptRepo.EXPECT().GetByUnitCode(gomock.Any(), "APT-101").Return(testApartment(t, "APT-101"), nil)
		userRepo.EXPECT().GetByPhone(gomock.Any(), phone).Return(testUser(t, phone, "Ana Souza"), nil)
		repo.EXPECT().Get(gomock.Any(), "APT-101", phone, valueobjects.RoleEmergencyContact).Return(existing, nil)

		_, err := uc.Create(context.Background(), CreateRelationshipInput{
			ApartmentUnitCode: "APT-101",
			UserPhone:         phone,
			Role:              valueobjects.RoleEmergencyContact,
		})
		if !pkg.IsBusinessRuleViolation(err) {
			t.Fatalf("expected business rule violation, got %v", err)
		}
	})
}

func TestRelationshipUseCase_Delete(t *testing.T) {
	t.Run("active relation refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRelationRepository(ctrl)
		uc := NewRelationshipUseCase(repo, nil, nil)

		rel := testRelation(t, "+5511912345678", valueobjects.RolePrimaryTenant)
		repo.EXPECT().Get(gomock.Any(), "APT-101", "+5511912345678", valueobjects.RolePrimaryTenant).Return(rel, nil)

		err := uc.Delete(context.Background(), "APT-101", "+5511912345678", valueobjects.RolePrimaryTenant)
		if !pkg.IsBusinessRuleViolation(err) {
			t.Fatalf("expected business rule violation, got %v", err)
		}
	})

	t.Run("inactive relation deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRelationRepository(ctrl)
		uc := NewRelationshipUseCase(repo, nil, nil)

		rel := testRelation(t, "+5511912345678", valueobjects.RolePrimaryTenant)
		if err := rel.Deactivate("admin"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		repo.EXPECT().Get(gomock.Any(), "APT-101", "+5511912345678", valueobjects.RolePrimaryTenant).Return(rel, nil)
		repo.EXPECT().Delete(gomock.Any(), "APT-101", "+5511912345678", valueobjects.RolePrimaryTenant).Return(nil)

		if err := uc.Delete(context.Background(), "APT-101", "+5511912345678", valueobjects.RolePrimaryTenant); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestRelationshipUseCase_ListByApartment(t *testing.T) {
	t.Run("sorted by role priority", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRelationRepository(ctrl)
		uc := NewRelationshipUseCase(repo, nil, nil)

		repo.EXPECT().ListByApartment(gomock.Any(), "APT-101").Return([]*entities.UserApartmentRelation{
			testRelation(t, "+5511900000001", valueobjects.RoleOps),
			testRelation(t, "+5511900000002", valueobjects.RoleEmergencyContact),
			testRelation(t, "+5511900000003", valueobjects.RolePrimaryTenant),
			testRelation(t, "+5511900000004", valueobjects.RoleSecondaryTenant),
		}, nil)

		relations, err := uc.ListByApartment(context.Background(), "APT-101")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []valueobjects.RelationRole{
			valueobjects.RolePrimaryTenant,
			valueobjects.RoleSecondaryTenant,
			valueobjects.RoleEmergencyContact,
			valueobjects.RoleOps,
		}
		for i, role := range want {
			if relations[i].Role != role {
				t.Fatalf("position %d: expected %s, got %s", i, role, relations[i].Role)
			}
		}
	})
}

func TestRelationshipUseCase_Activate(t *testing.T) {
	t.Run("reactivation checks primary tenant rule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRelationRepository(ctrl)
		uc := NewRelationshipUseCase(repo, nil, nil)

		rel := testRelation(t, "+5511912345678", valueobjects.RolePrimaryTenant)
		if err := rel.Deactivate("admin"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		other := testRelation(t, "+5511988887777", valueobjects.RolePrimaryTenant)

		repo.EXPECT().Get(gomock.Any(), "APT-101", "+5511912345678", valueobjects.RolePrimaryTenant).Return(rel, nil)
		repo.EXPECT().ListByApartmentRole(gomock.Any(), "APT-101", valueobjects.RolePrimaryTenant).
			Return([]*entities.UserApartmentRelation{rel, other}, nil)

		_, err := uc.Activate(context.Background(), "APT-101", "+5511912345678", valueobjects.RolePrimaryTenant, "admin")
		if !pkg.IsBusinessRuleViolation(err) {
			t.Fatalf("expected business rule violation, got %v", err)
		}
	})
}
