package usecase

import (
	"context"
	"errors"
	"testing"

	"imoveis_xpto/internal/domain/entities"
	mock_interfaces "imoveis_xpto/internal/usecase/interfaces/mocks"
	"imoveis_xpto/pkg"

	"go.uber.org/mock/gomock"
)

func TestUserUseCase_Create(t *testing.T) {
	t.Run("invalid phone", func(t *testing.T) {
		uc := NewUserUseCase(nil, "BR")
		_, err := uc.Create(context.Background(), CreateUserInput{Phone: "123", Name: "Ana Souza"})
		if !pkg.IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("duplicate phone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, "BR")

		repo.EXPECT().GetByPhone(gomock.Any(), "+5511912345678").Return(testUser(t, "+5511912345678", "Ana Souza"), nil)

		_, err := uc.Create(context.Background(), CreateUserInput{Phone: "+5511912345678", Name: "Ana Souza"})
		if !pkg.IsBusinessRuleViolation(err) {
			t.Fatalf("expected business rule violation, got %v", err)
		}
	})

	t.Run("create success normalizes local phone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, "BR")

		repo.EXPECT().GetByPhone(gomock.Any(), "+5511912345678").Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(&entities.User{})).DoAndReturn(
			func(_ context.Context, u *entities.User) (*entities.User, error) {
				if u.Phone.E164 != "+5511912345678" || u.Status != entities.UserStatusActive {
					t.Fatalf("unexpected user: %+v", u)
				}
				return u, nil
			},
		)

		created, err := uc.Create(context.Background(), CreateUserInput{Phone: "11 91234-5678", Name: "Ana Souza"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Name != "Ana Souza" {
			t.Fatalf("unexpected name %q", created.Name)
		}
	})
}

func TestUserUseCase_GetByPhone(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, "BR")

		repo.EXPECT().GetByPhone(gomock.Any(), "+5511912345678").Return(nil, nil)

		_, err := uc.GetByPhone(context.Background(), "+5511912345678")
		if !pkg.IsNotFound(err) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("repo error passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, "BR")

		repo.EXPECT().GetByPhone(gomock.Any(), "+5511912345678").Return(nil, errors.New("db"))

		_, err := uc.GetByPhone(context.Background(), "+5511912345678")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestUserUseCase_Transitions(t *testing.T) {
	t.Run("suspend active user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, "BR")

		user := testUser(t, "+5511912345678", "Ana Souza")
		repo.EXPECT().GetByPhone(gomock.Any(), "+5511912345678").Return(user, nil)
		repo.EXPECT().Save(gomock.Any(), user).Return(user, nil)

		suspended, err := uc.Suspend(context.Background(), "+5511912345678", "admin")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if suspended.Status != entities.UserStatusSuspended {
			t.Fatalf("expected suspended, got %s", suspended.Status)
		}
	})

	t.Run("activating active user rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, "BR")

		repo.EXPECT().GetByPhone(gomock.Any(), "+5511912345678").Return(testUser(t, "+5511912345678", "Ana Souza"), nil)

		_, err := uc.Activate(context.Background(), "+5511912345678", "admin")
		if !pkg.IsBusinessRuleViolation(err) {
			t.Fatalf("expected business rule violation, got %v", err)
		}
	})
}

func TestUserUseCase_UpdateProfile(t *testing.T) {
	t.Run("profile update bumps version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, "BR")

		user := testUser(t, "+5511912345678", "Ana Souza")
		repo.EXPECT().GetByPhone(gomock.Any(), "+5511912345678").Return(user, nil)
		repo.EXPECT().Save(gomock.Any(), user).Return(user, nil)

		updated, err := uc.UpdateProfile(context.Background(), "+5511912345678", UpdateUserProfileInput{
			Name:  "Ana Souza Lima",
			Email: "ana@example.com",
			Actor: "admin",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Name != "Ana Souza Lima" || updated.Email != "ana@example.com" {
			t.Fatalf("unexpected user: %+v", updated)
		}
		if updated.Metadata.Version != 2 {
			t.Fatalf("expected version 2, got %d", updated.Metadata.Version)
		}
	})
}
