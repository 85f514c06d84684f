package usecase

import (
	"context"
	"strings"
	"time"

	"imoveis_xpto/internal/domain/entities"
	"imoveis_xpto/internal/domain/valueobjects"
	"imoveis_xpto/internal/usecase/interfaces"
	"imoveis_xpto/pkg"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// IContractUseCase manages rental contracts and keeps the apartment
// status in step with contract transitions.

type IContractUseCase interface {
	Create(ctx context.Context, input CreateContractInput) (*entities.Contract, error)
	GetByID(ctx context.Context, contractID string) (*entities.Contract, error)
	ListByApartment(ctx context.Context, unitCode string) ([]*entities.Contract, error)
	ListByTenant(ctx context.Context, tenantPhone string) ([]*entities.Contract, error)
	Activate(ctx context.Context, contractID, actor string) (*entities.Contract, error)
	Terminate(ctx context.Context, contractID, actor, reason string) (*entities.Contract, error)
	Expire(ctx context.Context, contractID, actor string) (*entities.Contract, error)
	Extend(ctx context.Context, contractID string, newEndDate time.Time, actor string) (*entities.Contract, error)
	UpdateTerms(ctx context.Context, contractID string, upd valueobjects.TermsUpdate, actor string) (*entities.Contract, error)
}

type CreateContractInput struct {
	ApartmentUnitCode string
	TenantPhone       string
	StartDate         time.Time
	EndDate           time.Time
	Terms             valueobjects.ContractTerms
	CreatedBy         string
}

type ContractUseCase struct {
	repo          interfaces.IContractRepository
	apartmentRepo interfaces.IApartmentRepository
	userRepo      interfaces.IUserRepository
	relationRepo  interfaces.IRelationRepository
}

var _ IContractUseCase = (*ContractUseCase)(nil)

func NewContractUseCase(
	repo interfaces.IContractRepository,
	apartmentRepo interfaces.IApartmentRepository,
	userRepo interfaces.IUserRepository,
	relationRepo interfaces.IRelationRepository,
) *ContractUseCase {
	return &ContractUseCase{repo: repo, apartmentRepo: apartmentRepo, userRepo: userRepo, relationRepo: relationRepo}
}

// Create registers a pending contract. The apartment and the tenant
// must exist, and an apartment carries at most one contract in force.
func (u *ContractUseCase) Create(ctx context.Context, input CreateContractInput) (*entities.Contract, error) {
	unitCode := strings.TrimSpace(input.ApartmentUnitCode)
	tenantPhone := strings.TrimSpace(input.TenantPhone)
	log.Info().Str("unit_code", unitCode).Str("tenant_phone", tenantPhone).Msg("[contract][usecase] create start")

	apt, err := u.apartmentRepo.GetByUnitCode(ctx, unitCode)
	if err != nil {
		return nil, err
	}
	if apt == nil {
		return nil, pkg.NewEntityNotFound("apartment", unitCode)
	}

	tenant, err := u.userRepo.GetByPhone(ctx, tenantPhone)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, pkg.NewEntityNotFound("user", tenantPhone)
	}

	active, err := u.repo.FindActiveByApartment(ctx, unitCode)
	if err != nil {
		return nil, err
	}
	if active != nil {
		log.Warn().Str("unit_code", unitCode).Str("contract_id", active.ID).Msg("[contract][usecase] create refused, active contract")
		return nil, pkg.NewBusinessRuleViolation("apartment " + unitCode + " already has active contract " + active.ID)
	}

	contract, err := entities.NewContract(entities.NewContractProps{
		ID:                uuid.NewString(),
		ApartmentUnitCode: unitCode,
		TenantPhone:       tenantPhone,
		StartDate:         input.StartDate,
		EndDate:           input.EndDate,
		Terms:             input.Terms,
		CreatedBy:         input.CreatedBy,
	})
	if err != nil {
		log.Warn().Err(err).Str("unit_code", unitCode).Msg("[contract][usecase] create rejected")
		return nil, err
	}

	created, err := u.repo.Create(ctx, contract)
	if err != nil {
		log.Error().Err(err).Str("contract_id", contract.ID).Msg("[contract][usecase] create failed")
		return nil, err
	}
	log.Info().Str("contract_id", created.ID).Str("unit_code", created.ApartmentUnitCode).Msg("[contract][usecase] create success")
	return created, nil
}

func (u *ContractUseCase) GetByID(ctx context.Context, contractID string) (*entities.Contract, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return nil, pkg.NewValidationError("contract.id: cannot be empty")
	}
	contract, err := u.repo.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, pkg.NewEntityNotFound("contract", contractID)
	}
	return contract, nil
}

func (u *ContractUseCase) ListByApartment(ctx context.Context, unitCode string) ([]*entities.Contract, error) {
	unitCode = strings.TrimSpace(unitCode)
	if unitCode == "" {
		return nil, pkg.NewValidationError("apartment.unit_code: cannot be empty")
	}
	return u.repo.ListByApartment(ctx, unitCode)
}

// ListByTenant walks the tenant's apartment relations and collects the
// contracts naming them. Contracts are partitioned by their own ID, so
// the tenant side has no direct index.
func (u *ContractUseCase) ListByTenant(ctx context.Context, tenantPhone string) ([]*entities.Contract, error) {
	tenantPhone = strings.TrimSpace(tenantPhone)
	if tenantPhone == "" {
		return nil, pkg.NewValidationError("contract.tenant_phone: cannot be empty")
	}

	relations, err := u.relationRepo.ListByUser(ctx, tenantPhone)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var out []*entities.Contract
	for _, rel := range relations {
		if _, ok := seen[rel.ApartmentUnitCode]; ok {
			continue
		}
		seen[rel.ApartmentUnitCode] = struct{}{}

		contracts, err := u.repo.ListByApartment(ctx, rel.ApartmentUnitCode)
		if err != nil {
			return nil, err
		}
		for _, c := range contracts {
			if c.TenantPhone == tenantPhone {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

// Activate puts the contract in force and marks the apartment occupied.
func (u *ContractUseCase) Activate(ctx context.Context, contractID, actor string) (*entities.Contract, error) {
	contract, err := u.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}

	active, err := u.repo.FindActiveByApartment(ctx, contract.ApartmentUnitCode)
	if err != nil {
		return nil, err
	}
	if active != nil && active.ID != contract.ID {
		return nil, pkg.NewBusinessRuleViolation("apartment " + contract.ApartmentUnitCode + " already has active contract " + active.ID)
	}

	if err := contract.Activate(actor); err != nil {
		return nil, err
	}
	saved, err := u.repo.Save(ctx, contract)
	if err != nil {
		return nil, err
	}
	u.syncApartmentStatus(ctx, saved.ApartmentUnitCode, entities.ApartmentStatusOccupied, actor)
	log.Info().Str("contract_id", saved.ID).Msg("[contract][usecase] activated")
	return saved, nil
}

// Terminate ends the contract early and frees the apartment.
func (u *ContractUseCase) Terminate(ctx context.Context, contractID, actor, reason string) (*entities.Contract, error) {
	contract, err := u.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	wasActive := contract.IsActive()
	if err := contract.Terminate(actor, reason); err != nil {
		return nil, err
	}
	saved, err := u.repo.Save(ctx, contract)
	if err != nil {
		return nil, err
	}
	if wasActive {
		u.syncApartmentStatus(ctx, saved.ApartmentUnitCode, entities.ApartmentStatusVacant, actor)
	}
	log.Info().Str("contract_id", saved.ID).Str("reason", saved.TerminationReason).Msg("[contract][usecase] terminated")
	return saved, nil
}

// Expire closes an active contract that reached its end date and frees
// the apartment.
func (u *ContractUseCase) Expire(ctx context.Context, contractID, actor string) (*entities.Contract, error) {
	contract, err := u.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if err := contract.Expire(actor); err != nil {
		return nil, err
	}
	saved, err := u.repo.Save(ctx, contract)
	if err != nil {
		return nil, err
	}
	u.syncApartmentStatus(ctx, saved.ApartmentUnitCode, entities.ApartmentStatusVacant, actor)
	log.Info().Str("contract_id", saved.ID).Msg("[contract][usecase] expired")
	return saved, nil
}

func (u *ContractUseCase) Extend(ctx context.Context, contractID string, newEndDate time.Time, actor string) (*entities.Contract, error) {
	contract, err := u.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	wasExpired := contract.IsExpired()
	if err := contract.Extend(newEndDate, actor); err != nil {
		return nil, err
	}
	saved, err := u.repo.Save(ctx, contract)
	if err != nil {
		return nil, err
	}
	if wasExpired {
		u.syncApartmentStatus(ctx, saved.ApartmentUnitCode, entities.ApartmentStatusOccupied, actor)
	}
	log.Info().Str("contract_id", saved.ID).Time("end_date", saved.EndDate).Msg("[contract][usecase] extended")
	return saved, nil
}

func (u *ContractUseCase) UpdateTerms(ctx context.Context, contractID string, upd valueobjects.TermsUpdate, actor string) (*entities.Contract, error) {
	contract, err := u.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if err := contract.UpdateTerms(upd, actor); err != nil {
		return nil, err
	}
	return u.repo.Save(ctx, contract)
}

// syncApartmentStatus is best effort: a contract transition that already
// committed is not rolled back because the unit row could not follow.
func (u *ContractUseCase) syncApartmentStatus(ctx context.Context, unitCode string, status entities.ApartmentStatus, actor string) {
	apt, err := u.apartmentRepo.GetByUnitCode(ctx, unitCode)
	if err != nil || apt == nil {
		log.Warn().Err(err).Str("unit_code", unitCode).Msg("[contract][usecase] apartment status sync skipped")
		return
	}
	if err := apt.ChangeStatus(status, actor); err != nil {
		// Already in the target status is fine.
		if pkg.IsBusinessRuleViolation(err) {
			return
		}
		log.Warn().Err(err).Str("unit_code", unitCode).Msg("[contract][usecase] apartment status sync rejected")
		return
	}
	if _, err := u.apartmentRepo.Save(ctx, apt); err != nil {
		log.Warn().Err(err).Str("unit_code", unitCode).Msg("[contract][usecase] apartment status sync failed")
	}
}
