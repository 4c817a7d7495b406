package api

import (
	"encoding/json"

	"github.com/teamboard/teamboard/shared/domain"
)

// Request DTOs

type CreateUserRequest struct {
	Name        string `json:"name" validate:"required"`
	DisplayName string `json:"display_name"`
}

// UpdateUserRequest is a partial update; absent fields stay untouched.
type UpdateUserRequest struct {
	Name        *string `json:"name,omitempty"`
	DisplayName *string `json:"display_name,omitempty"`

	// NameSent is set when the body has a "name" key, null included.
	NameSent bool `json:"-"`
}

func (r *UpdateUserRequest) UnmarshalJSON(data []byte) error {
	type plain UpdateUserRequest
	if err := json.Unmarshal(data, (*plain)(r)); err != nil {
		return err
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	_, r.NameSent = keys["name"]
	return nil
}

// Response DTOs

type UserListResponse struct {
	Users []domain.User `json:"users"`
}

type UserTeamsResponse struct {
	Teams []domain.TeamSummary `json:"teams"`
}
