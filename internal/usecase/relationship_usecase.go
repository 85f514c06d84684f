package usecase

import (
	"context"
	"sort"
	"strings"

	"imoveis_xpto/internal/domain/entities"
	"imoveis_xpto/internal/domain/valueobjects"
	"imoveis_xpto/internal/usecase/interfaces"
	"imoveis_xpto/pkg"

	"github.com/rs/zerolog/log"
)

// IRelationshipUseCase manages user-apartment relations and enforces
// the single-primary-tenant rule.

type IRelationshipUseCase interface {
	Create(ctx context.Context, input CreateRelationshipInput) (*entities.UserApartmentRelation, error)
	Get(ctx context.Context, unitCode, phone string, role valueobjects.RelationRole) (*entities.UserApartmentRelation, error)
	ListByApartment(ctx context.Context, unitCode string) ([]*entities.UserApartmentRelation, error)
	ListByUser(ctx context.Context, phone string) ([]*entities.UserApartmentRelation, error)
	Activate(ctx context.Context, unitCode, phone string, role valueobjects.RelationRole, actor string) (*entities.UserApartmentRelation, error)
	Deactivate(ctx context.Context, unitCode, phone string, role valueobjects.RelationRole, actor string) (*entities.UserApartmentRelation, error)
	Delete(ctx context.Context, unitCode, phone string, role valueobjects.RelationRole) error
}

type CreateRelationshipInput struct {
	ApartmentUnitCode string
	UserPhone         string
	Role              valueobjects.RelationRole
	RelationshipType  string
	CreatedBy         string
}

type RelationshipUseCase struct {
	repo          interfaces.IRelationRepository
	userRepo      interfaces.IUserRepository
	apartmentRepo interfaces.IApartmentRepository
}

var _ IRelationshipUseCase = (*RelationshipUseCase)(nil)

func NewRelationshipUseCase(repo interfaces.IRelationRepository, userRepo interfaces.IUserRepository, apartmentRepo interfaces.IApartmentRepository) *RelationshipUseCase {
	return &RelationshipUseCase{repo: repo, userRepo: userRepo, apartmentRepo: apartmentRepo}
}

// Create links a user to an apartment. Both sides must exist, and an
// apartment carries at most one active primary tenant.
func (u *RelationshipUseCase) Create(ctx context.Context, input CreateRelationshipInput) (*entities.UserApartmentRelation, error) {
	unitCode := strings.TrimSpace(input.ApartmentUnitCode)
	phone := strings.TrimSpace(input.UserPhone)
	log.Info().Str("unit_code", unitCode).Str("phone", phone).Str("role", string(input.Role)).Msg("[relationship][usecase] create start")

	relation, err := entities.NewUserApartmentRelation(entities.NewRelationProps{
		ApartmentUnitCode: unitCode,
		UserPhone:         phone,
		Role:              input.Role,
		RelationshipType:  input.RelationshipType,
		CreatedBy:         input.CreatedBy,
	})
	if err != nil {
		log.Warn().Err(err).Str("unit_code", unitCode).Msg("[relationship][usecase] create rejected")
		return nil, err
	}

	apt, err := u.apartmentRepo.GetByUnitCode(ctx, unitCode)
	if err != nil {
		return nil, err
	}
	if apt == nil {
		return nil, pkg.NewEntityNotFound("apartment", unitCode)
	}
	user, err := u.userRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, pkg.NewEntityNotFound("user", phone)
	}

	existing, err := u.repo.Get(ctx, unitCode, phone, relation.Role)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, pkg.NewBusinessRuleViolation("relation already exists for " + phone + " on " + unitCode + " as " + string(relation.Role))
	}

	if relation.Role == valueobjects.RolePrimaryTenant {
		if err := u.ensureNoOtherActivePrimary(ctx, unitCode, phone); err != nil {
			return nil, err
		}
	}

	created, err := u.repo.Create(ctx, relation)
	if err != nil {
		log.Error().Err(err).Str("unit_code", unitCode).Str("phone", phone).Msg("[relationship][usecase] create failed")
		return nil, err
	}
	log.Info().Str("unit_code", created.ApartmentUnitCode).Str("phone", created.UserPhone).Str("role", string(created.Role)).Msg("[relationship][usecase] create success")
	return created, nil
}

func (u *RelationshipUseCase) Get(ctx context.Context, unitCode, phone string, role valueobjects.RelationRole) (*entities.UserApartmentRelation, error) {
	unitCode = strings.TrimSpace(unitCode)
	phone = strings.TrimSpace(phone)
	if unitCode == "" {
		return nil, pkg.NewValidationError("relation.apartment_unit_code: cannot be empty")
	}
	if phone == "" {
		return nil, pkg.NewValidationError("relation.user_phone: cannot be empty")
	}
	if !role.IsValid() {
		return nil, pkg.NewValidationError("relation.role: unknown role " + string(role))
	}
	relation, err := u.repo.Get(ctx, unitCode, phone, role)
	if err != nil {
		return nil, err
	}
	if relation == nil {
		return nil, pkg.NewEntityNotFound("relation", phone+"@"+unitCode)
	}
	return relation, nil
}

// ListByApartment returns relations ordered by role priority: primary
// tenant first, then secondary tenants, contacts and staff.
func (u *RelationshipUseCase) ListByApartment(ctx context.Context, unitCode string) ([]*entities.UserApartmentRelation, error) {
	unitCode = strings.TrimSpace(unitCode)
	if unitCode == "" {
		return nil, pkg.NewValidationError("relation.apartment_unit_code: cannot be empty")
	}
	relations, err := u.repo.ListByApartment(ctx, unitCode)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(relations, func(i, j int) bool {
		return relations[i].Role.Priority() < relations[j].Role.Priority()
	})
	return relations, nil
}

func (u *RelationshipUseCase) ListByUser(ctx context.Context, phone string) ([]*entities.UserApartmentRelation, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, pkg.NewValidationError("relation.user_phone: cannot be empty")
	}
	return u.repo.ListByUser(ctx, phone)
}

func (u *RelationshipUseCase) Activate(ctx context.Context, unitCode, phone string, role valueobjects.RelationRole, actor string) (*entities.UserApartmentRelation, error) {
	relation, err := u.Get(ctx, unitCode, phone, role)
	if err != nil {
		return nil, err
	}
	if relation.Role == valueobjects.RolePrimaryTenant {
		if err := u.ensureNoOtherActivePrimary(ctx, relation.ApartmentUnitCode, relation.UserPhone); err != nil {
			return nil, err
		}
	}
	if err := relation.Activate(actor); err != nil {
		return nil, err
	}
	saved, err := u.repo.Save(ctx, relation)
	if err != nil {
		return nil, err
	}
	log.Info().Str("unit_code", saved.ApartmentUnitCode).Str("phone", saved.UserPhone).Msg("[relationship][usecase] activated")
	return saved, nil
}

func (u *RelationshipUseCase) Deactivate(ctx context.Context, unitCode, phone string, role valueobjects.RelationRole, actor string) (*entities.UserApartmentRelation, error) {
	relation, err := u.Get(ctx, unitCode, phone, role)
	if err != nil {
		return nil, err
	}
	if err := relation.Deactivate(actor); err != nil {
		return nil, err
	}
	saved, err := u.repo.Save(ctx, relation)
	if err != nil {
		return nil, err
	}
	log.Info().Str("unit_code", saved.ApartmentUnitCode).Str("phone", saved.UserPhone).Msg("[relationship][usecase] deactivated")
	return saved, nil
}

// Delete removes a relation; active relations must be deactivated
// first.
func (u *RelationshipUseCase) Delete(ctx context.Context, unitCode, phone string, role valueobjects.RelationRole) error {
	relation, err := u.Get(ctx, unitCode, phone, role)
	if err != nil {
		return err
	}
	if relation.IsActive {
		log.Warn().Str("unit_code", relation.ApartmentUnitCode).Str("phone", relation.UserPhone).Msg("[relationship][usecase] delete refused, active relation")
		return pkg.NewBusinessRuleViolation("cannot delete an active relation; deactivate it first")
	}
	if err := u.repo.Delete(ctx, relation.ApartmentUnitCode, relation.UserPhone, relation.Role); err != nil {
		return err
	}
	log.Info().Str("unit_code", relation.ApartmentUnitCode).Str("phone", relation.UserPhone).Msg("[relationship][usecase] deleted")
	return nil
}

// ensureNoOtherActivePrimary rejects a second active primary tenant on
// the same apartment; the same phone re-acquiring the role is allowed.
func (u *RelationshipUseCase) ensureNoOtherActivePrimary(ctx context.Context, unitCode, phone string) error {
	primaries, err := u.repo.ListByApartmentRole(ctx, unitCode, valueobjects.RolePrimaryTenant)
	if err != nil {
		return err
	}
	for _, rel := range primaries {
		if rel.IsActive && rel.UserPhone != phone {
			return pkg.NewBusinessRuleViolation("apartment " + unitCode + " already has an active primary tenant")
		}
	}
	return nil
}
