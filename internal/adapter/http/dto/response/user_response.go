package response

import (
	"time"

	"imoveis_xpto/internal/domain/entities"
	"imoveis_xpto/internal/domain/valueobjects"
)

type MetadataResponse struct {
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	CreatedBy string `json:"created_by,omitempty"`
	UpdatedBy string `json:"updated_by,omitempty"`
	Version   int    `json:"version"`
}

func fromMetadata(md valueobjects.EntityMetadata) MetadataResponse {
	return MetadataResponse{
		CreatedAt: md.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: md.UpdatedAt.UTC().Format(time.RFC3339),
		CreatedBy: md.CreatedBy,
		UpdatedBy: md.UpdatedBy,
		Version:   md.Version,
	}
}

type UserResponse struct {
	Phone             string           `json:"phone"`
	PhoneFormatted    string           `json:"phone_formatted"`
	Name              string           `json:"name"`
	DocumentType      string           `json:"document_type,omitempty"`
	DocumentValue     string           `json:"document_value,omitempty"`
	DocumentFormatted string           `json:"document_formatted,omitempty"`
	Email             string           `json:"email,omitempty"`
	Status            string           `json:"status"`
	Metadata          MetadataResponse `json:"metadata"`
}

func FromUser(u *entities.User) UserResponse {
	return UserResponse{
		Phone:             u.Phone.E164,
		PhoneFormatted:    u.Phone.Formatted,
		Name:              u.Name,
		DocumentType:      string(u.Document.Type),
		DocumentValue:     u.Document.Value,
		DocumentFormatted: u.Document.Formatted,
		Email:             u.Email,
		Status:            string(u.Status),
		Metadata:          fromMetadata(u.Metadata),
	}
}

func FromUsers(users []*entities.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}
