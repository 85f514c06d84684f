package request

import (
	"strings"

	"imoveis_xpto/internal/usecase"
	"imoveis_xpto/pkg"
)

type CreateUserRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Document string `json:"document"`
	Email    string `json:"email"`
	Actor    string `json:"actor"`
}

func (r CreateUserRequest) Validate() error {
	var fields []pkg.FieldError
	if strings.TrimSpace(r.Phone) == "" {
		fields = append(fields, pkg.FieldError{Field: "phone", Message: "cannot be empty"})
	}
	if len(strings.TrimSpace(r.Name)) < 2 {
		fields = append(fields, pkg.FieldError{Field: "name", Message: "must be at least 2 characters"})
	}
	if len(fields) > 0 {
		return pkg.NewValidationErrorFields(fields)
	}
	return nil
}

func (r CreateUserRequest) ToInput() usecase.CreateUserInput {
	return usecase.CreateUserInput{
		Phone:     strings.TrimSpace(r.Phone),
		Name:      strings.TrimSpace(r.Name),
		Document:  strings.TrimSpace(r.Document),
		Email:     strings.TrimSpace(r.Email),
		CreatedBy: actorOrDefault(r.Actor),
	}
}

type UpdateUserRequest struct {
	Name     string `json:"name"`
	Document string `json:"document"`
	Email    string `json:"email"`
	Actor    string `json:"actor"`
}

func (r UpdateUserRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name != "" && len(name) < 2 {
		return pkg.NewValidationErrorFields([]pkg.FieldError{
			{Field: "name", Message: "must be at least 2 characters"},
		})
	}
	return nil
}

func (r UpdateUserRequest) ToInput() usecase.UpdateUserProfileInput {
	return usecase.UpdateUserProfileInput{
		Name:     strings.TrimSpace(r.Name),
		Document: strings.TrimSpace(r.Document),
		Email:    strings.TrimSpace(r.Email),
		Actor:    actorOrDefault(r.Actor),
	}
}

// StatusChangeRequest carries the acting identity for lifecycle
// transitions (activate, deactivate, suspend).
type StatusChangeRequest struct {
	Actor string `json:"actor"`
}

func actorOrDefault(actor string) string {
	if v := strings.TrimSpace(actor); v != "" {
		return v
	}
	return "api"
}
