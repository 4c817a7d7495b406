package handler

import (
	"context"

	"github.com/teamboard/teamboard/backend/internal/service"
)

// Pinger reports whether the document store can be reached.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	user   service.UserService
	team   service.TeamService
	board  service.BoardService
	task   service.TaskService
	health Pinger
}

func New(user service.UserService, team service.TeamService, board service.BoardService, task service.TaskService, health Pinger) *Handler {
	return &Handler{
		user:   user,
		team:   team,
		board:  board,
		task:   task,
		health: health,
	}
}
