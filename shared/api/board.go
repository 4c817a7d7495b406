package api

import (
	"github.com/teamboard/teamboard/shared/domain"
)

// Request DTOs

type CreateBoardRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	TeamId      int64  `json:"team_id"`
}

// CreateTaskRequest leaves ids optional: the assignee is stored as sent and a
// missing board resolves to board 0, which never exists.
type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	UserId      int64  `json:"user_id"`
	BoardId     int64  `json:"board_id"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Response DTOs

// CreatedResponse is returned by every creation endpoint.
type CreatedResponse struct {
	Id int64 `json:"id"`
}

// BoardListResponse wraps the open boards of a team
type BoardListResponse struct {
	Boards []domain.BoardMetadata `json:"boards"`
}

type TaskListResponse struct {
	Tasks []domain.Task `json:"tasks"`
}

type ExportResponse struct {
	OutFile string `json:"out_file"`
}
