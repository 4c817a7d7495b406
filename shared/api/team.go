package api

import (
	"github.com/teamboard/teamboard/shared/domain"
)

// Request DTOs

type CreateTeamRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Admin       int64  `json:"admin"`
}

type UpdateTeamRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Admin       *int64  `json:"admin,omitempty"`
}

// TeamUsersRequest is the body of both add and remove membership calls.
type TeamUsersRequest struct {
	Users []int64 `json:"users" validate:"required"`
}

// Response DTOs

type TeamListResponse struct {
	Teams []domain.Team `json:"teams"`
}

type TeamMembersResponse struct {
	Users domain.Members `json:"users"`
}

type TeamUsersResponse struct {
	Users []domain.UserRef `json:"users"`
}
