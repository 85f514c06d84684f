package usecase

import (
	"context"
	"strings"
	"time"

	"imoveis_xpto/internal/domain/entities"
	"imoveis_xpto/internal/usecase/interfaces"
	"imoveis_xpto/pkg"

	"github.com/rs/zerolog/log"
)

// IApartmentUseCase manages rentable units keyed by unit code.

type IApartmentUseCase interface {
	Create(ctx context.Context, props entities.NewApartmentProps) (*entities.Apartment, error)
	GetByUnitCode(ctx context.Context, unitCode string) (*entities.Apartment, error)
	List(ctx context.Context) ([]*entities.Apartment, error)
	ListByStatus(ctx context.Context, status entities.ApartmentStatus) ([]*entities.Apartment, error)
	Update(ctx context.Context, unitCode string, upd entities.ApartmentUpdate, actor string) (*entities.Apartment, error)
	ChangeStatus(ctx context.Context, unitCode string, status entities.ApartmentStatus, actor string) (*entities.Apartment, error)
	MarkAvailable(ctx context.Context, unitCode string, availableFrom *time.Time, actor string) (*entities.Apartment, error)
	Delete(ctx context.Context, unitCode string) error
}

type ApartmentUseCase struct {
	repo         interfaces.IApartmentRepository
	contractRepo interfaces.IContractRepository
}

var _ IApartmentUseCase = (*ApartmentUseCase)(nil)

func NewApartmentUseCase(repo interfaces.IApartmentRepository, contractRepo interfaces.IContractRepository) *ApartmentUseCase {
	return &ApartmentUseCase{repo: repo, contractRepo: contractRepo}
}

func (u *ApartmentUseCase) Create(ctx context.Context, props entities.NewApartmentProps) (*entities.Apartment, error) {
	log.Info().Str("unit_code", props.UnitCode).Msg("[apartment][usecase] create start")

	apt, err := entities.NewApartment(props)
	if err != nil {
		log.Warn().Err(err).Str("unit_code", props.UnitCode).Msg("[apartment][usecase] create rejected")
		return nil, err
	}

	existing, err := u.repo.GetByUnitCode(ctx, apt.UnitCode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		log.Warn().Str("unit_code", apt.UnitCode).Msg("[apartment][usecase] duplicate unit code")
		return nil, pkg.NewBusinessRuleViolation("an apartment with unit code " + apt.UnitCode + " already exists")
	}

	created, err := u.repo.Create(ctx, apt)
	if err != nil {
		log.Error().Err(err).Str("unit_code", apt.UnitCode).Msg("[apartment][usecase] create failed")
		return nil, err
	}
	log.Info().Str("unit_code", created.UnitCode).Msg("[apartment][usecase] create success")
	return created, nil
}

func (u *ApartmentUseCase) GetByUnitCode(ctx context.Context, unitCode string) (*entities.Apartment, error) {
	unitCode = strings.TrimSpace(unitCode)
	if unitCode == "" {
		return nil, pkg.NewValidationError("apartment.unit_code: cannot be empty")
	}
	apt, err := u.repo.GetByUnitCode(ctx, unitCode)
	if err != nil {
		return nil, err
	}
	if apt == nil {
		return nil, pkg.NewEntityNotFound("apartment", unitCode)
	}
	return apt, nil
}

func (u *ApartmentUseCase) List(ctx context.Context) ([]*entities.Apartment, error) {
	return u.repo.List(ctx)
}

func (u *ApartmentUseCase) ListByStatus(ctx context.Context, status entities.ApartmentStatus) ([]*entities.Apartment, error) {
	return u.repo.ListByStatus(ctx, status)
}

func (u *ApartmentUseCase) Update(ctx context.Context, unitCode string, upd entities.ApartmentUpdate, actor string) (*entities.Apartment, error) {
	apt, err := u.GetByUnitCode(ctx, unitCode)
	if err != nil {
		return nil, err
	}
	if err := apt.Update(upd, actor); err != nil {
		return nil, err
	}
	saved, err := u.repo.Save(ctx, apt)
	if err != nil {
		log.Error().Err(err).Str("unit_code", apt.UnitCode).Msg("[apartment][usecase] update failed")
		return nil, err
	}
	return saved, nil
}

func (u *ApartmentUseCase) ChangeStatus(ctx context.Context, unitCode string, status entities.ApartmentStatus, actor string) (*entities.Apartment, error) {
	apt, err := u.GetByUnitCode(ctx, unitCode)
	if err != nil {
		return nil, err
	}
	if err := apt.ChangeStatus(status, actor); err != nil {
		return nil, err
	}
	saved, err := u.repo.Save(ctx, apt)
	if err != nil {
		return nil, err
	}
	log.Info().Str("unit_code", saved.UnitCode).Str("status", string(saved.Status)).Msg("[apartment][usecase] status changed")
	return saved, nil
}

func (u *ApartmentUseCase) MarkAvailable(ctx context.Context, unitCode string, availableFrom *time.Time, actor string) (*entities.Apartment, error) {
	apt, err := u.GetByUnitCode(ctx, unitCode)
	if err != nil {
		return nil, err
	}
	if err := apt.MarkAvailable(availableFrom, actor); err != nil {
		return nil, err
	}
	return u.repo.Save(ctx, apt)
}

// Delete removes the unit; it is refused while a contract is in force.
func (u *ApartmentUseCase) Delete(ctx context.Context, unitCode string) error {
	apt, err := u.GetByUnitCode(ctx, unitCode)
	if err != nil {
		return err
	}

	active, err := u.contractRepo.FindActiveByApartment(ctx, apt.UnitCode)
	if err != nil {
		return err
	}
	if active != nil {
		log.Warn().Str("unit_code", apt.UnitCode).Str("contract_id", active.ID).Msg("[apartment][usecase] delete refused, active contract")
		return pkg.NewBusinessRuleViolation("cannot delete apartment " + apt.UnitCode + " while contract " + active.ID + " is active")
	}

	if err := u.repo.Delete(ctx, apt.UnitCode); err != nil {
		return err
	}
	log.Info().Str("unit_code", apt.UnitCode).Msg("[apartment][usecase] deleted")
	return nil
}
