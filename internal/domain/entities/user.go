package entities

import (
	"regexp"
	"strings"

	"imoveis_xpto/internal/domain/valueobjects"
	"imoveis_xpto/pkg"
)

// UserStatus is the lifecycle state of a platform user.

type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusInactive  UserStatus = "inactive"
	UserStatusSuspended UserStatus = "suspended"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// User is identified by phone number. Storage model:
//   - PK: USER#<phoneE164>
//   - SK: PROFILE

type User struct {
	Phone    valueobjects.PhoneNumber
	Name     string
	Document valueobjects.Document
	Email    string
	Status   UserStatus
	Metadata valueobjects.EntityMetadata
}

type NewUserProps struct {
	Phone     string
	Region    string
	Name      string
	Document  string
	Email     string
	CreatedBy string
}

// NewUser validates all fields and defaults the status to active.
func NewUser(props NewUserProps) (*User, error) {
	phone, err := valueobjects.NewPhoneNumber(props.Phone, props.Region)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(props.Name)
	if len(name) < 2 {
		return nil, pkg.NewValidationError("user.name: must have at least 2 characters")
	}

	doc, err := valueobjects.NewDocument(props.Document)
	if err != nil {
		return nil, err
	}

	email := strings.TrimSpace(props.Email)
	if email != "" && !emailPattern.MatchString(email) {
		return nil, pkg.NewValidationError("user.email: invalid email address")
	}

	return &User{
		Phone:    phone,
		Name:     name,
		Document: doc,
		Email:    email,
		Status:   UserStatusActive,
		Metadata: valueobjects.NewEntityMetadata(props.CreatedBy),
	}, nil
}

func (u *User) PK() string { return UserPartitionKey(u.Phone.E164) }
func (u *User) SK() string { return userProfileSortKey }

// Activate transitions to active; activating an active user is rejected.
func (u *User) Activate(actor string) error {
	if u.Status == UserStatusActive {
		return pkg.NewBusinessRuleViolation("user is already active")
	}
	u.Status = UserStatusActive
	u.Metadata = u.Metadata.Touch(actor)
	return nil
}

func (u *User) Deactivate(actor string) error {
	if u.Status == UserStatusInactive {
		return pkg.NewBusinessRuleViolation("user is already inactive")
	}
	u.Status = UserStatusInactive
	u.Metadata = u.Metadata.Touch(actor)
	return nil
}

func (u *User) Suspend(actor string) error {
	if u.Status == UserStatusSuspended {
		return pkg.NewBusinessRuleViolation("user is already suspended")
	}
	u.Status = UserStatusSuspended
	u.Metadata = u.Metadata.Touch(actor)
	return nil
}

// UpdateProfile changes name/document/email; empty strings keep the
// current values, so clearing a document requires "none".
func (u *User) UpdateProfile(name, document, email, actor string) error {
	changed := false

	if trimmed := strings.TrimSpace(name); trimmed != "" {
		if len(trimmed) < 2 {
			return pkg.NewValidationError("user.name: must have at least 2 characters")
		}
		u.Name = trimmed
		changed = true
	}
	if document != "" {
		doc, err := valueobjects.NewDocument(document)
		if err != nil {
			return err
		}
		u.Document = doc
		changed = true
	}
	if trimmed := strings.TrimSpace(email); trimmed != "" {
		if !emailPattern.MatchString(trimmed) {
			return pkg.NewValidationError("user.email: invalid email address")
		}
		u.Email = trimmed
		changed = true
	}

	if changed {
		u.Metadata = u.Metadata.Touch(actor)
	}
	return nil
}

func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}
