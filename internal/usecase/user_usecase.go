package usecase

import (
	"context"
	"strings"

	"imoveis_xpto/internal/domain/entities"
	"imoveis_xpto/internal/domain/valueobjects"
	"imoveis_xpto/internal/usecase/interfaces"
	"imoveis_xpto/pkg"

	"github.com/rs/zerolog/log"
)

// IUserUseCase manages platform users keyed by phone number.

type IUserUseCase interface {
	Create(ctx context.Context, input CreateUserInput) (*entities.User, error)
	GetByPhone(ctx context.Context, phone string) (*entities.User, error)
	List(ctx context.Context) ([]*entities.User, error)
	UpdateProfile(ctx context.Context, phone string, input UpdateUserProfileInput) (*entities.User, error)
	Activate(ctx context.Context, phone, actor string) (*entities.User, error)
	Deactivate(ctx context.Context, phone, actor string) (*entities.User, error)
	Suspend(ctx context.Context, phone, actor string) (*entities.User, error)
	Delete(ctx context.Context, phone string) error
}

type CreateUserInput struct {
	Phone     string
	Name      string
	Document  string
	Email     string
	CreatedBy string
}

type UpdateUserProfileInput struct {
	Name     string
	Document string
	Email    string
	Actor    string
}

type UserUseCase struct {
	repo          interfaces.IUserRepository
	defaultRegion string
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository, defaultRegion string) *UserUseCase {
	if strings.TrimSpace(defaultRegion) == "" {
		defaultRegion = "BR"
	}
	return &UserUseCase{repo: repo, defaultRegion: defaultRegion}
}

// normalizePhone turns whatever the caller sent into the E.164 form the
// table is keyed on.
func (u *UserUseCase) normalizePhone(raw string) (string, error) {
	phone, err := valueobjects.NewPhoneNumber(raw, u.defaultRegion)
	if err != nil {
		return "", err
	}
	return phone.E164, nil
}

func (u *UserUseCase) Create(ctx context.Context, input CreateUserInput) (*entities.User, error) {
	log.Info().Str("phone", input.Phone).Msg("[user][usecase] create start")

	user, err := entities.NewUser(entities.NewUserProps{
		Phone:     input.Phone,
		Region:    u.defaultRegion,
		Name:      input.Name,
		Document:  input.Document,
		Email:     input.Email,
		CreatedBy: input.CreatedBy,
	})
	if err != nil {
		log.Warn().Err(err).Str("phone", input.Phone).Msg("[user][usecase] create rejected")
		return nil, err
	}

	existing, err := u.repo.GetByPhone(ctx, user.Phone.E164)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		log.Warn().Str("phone", user.Phone.E164).Msg("[user][usecase] duplicate phone")
		return nil, pkg.NewBusinessRuleViolation("a user with phone " + user.Phone.E164 + " already exists")
	}

	created, err := u.repo.Create(ctx, user)
	if err != nil {
		log.Error().Err(err).Str("phone", user.Phone.E164).Msg("[user][usecase] create failed")
		return nil, err
	}
	log.Info().Str("phone", created.Phone.E164).Msg("[user][usecase] create success")
	return created, nil
}

func (u *UserUseCase) GetByPhone(ctx context.Context, phone string) (*entities.User, error) {
	e164, err := u.normalizePhone(phone)
	if err != nil {
		return nil, err
	}
	user, err := u.repo.GetByPhone(ctx, e164)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, pkg.NewEntityNotFound("user", e164)
	}
	return user, nil
}

func (u *UserUseCase) List(ctx context.Context) ([]*entities.User, error) {
	return u.repo.List(ctx)
}

func (u *UserUseCase) UpdateProfile(ctx context.Context, phone string, input UpdateUserProfileInput) (*entities.User, error) {
	user, err := u.GetByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if err := user.UpdateProfile(input.Name, input.Document, input.Email, input.Actor); err != nil {
		return nil, err
	}
	saved, err := u.repo.Save(ctx, user)
	if err != nil {
		log.Error().Err(err).Str("phone", user.Phone.E164).Msg("[user][usecase] profile update failed")
		return nil, err
	}
	log.Info().Str("phone", saved.Phone.E164).Msg("[user][usecase] profile updated")
	return saved, nil
}

func (u *UserUseCase) Activate(ctx context.Context, phone, actor string) (*entities.User, error) {
	return u.transition(ctx, phone, func(user *entities.User) error { return user.Activate(actor) })
}

func (u *UserUseCase) Deactivate(ctx context.Context, phone, actor string) (*entities.User, error) {
	return u.transition(ctx, phone, func(user *entities.User) error { return user.Deactivate(actor) })
}

func (u *UserUseCase) Suspend(ctx context.Context, phone, actor string) (*entities.User, error) {
	return u.transition(ctx, phone, func(user *entities.User) error { return user.Suspend(actor) })
}

func (u *UserUseCase) transition(ctx context.Context, phone string, apply func(*entities.User) error) (*entities.User, error) {
	user, err := u.GetByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if err := apply(user); err != nil {
		return nil, err
	}
	saved, err := u.repo.Save(ctx, user)
	if err != nil {
		return nil, err
	}
	log.Info().Str("phone", saved.Phone.E164).Str("status", string(saved.Status)).Msg("[user][usecase] status changed")
	return saved, nil
}

func (u *UserUseCase) Delete(ctx context.Context, phone string) error {
	e164, err := u.normalizePhone(phone)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, e164); err != nil {
		return err
	}
	log.Info().Str("phone", e164).Msg("[user][usecase] deleted")
	return nil
}
