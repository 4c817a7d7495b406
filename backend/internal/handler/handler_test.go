package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/teamboard/teamboard/shared/domain"
)

// --- Mocks ---

type MockUserService struct {
	MockCreate func(data domain.UserCreationData) (domain.UserId, error)
	MockList   func() ([]domain.User, error)
	MockGet    func(id domain.UserId) (*domain.User, error)
	MockUpdate func(id domain.UserId, patch domain.UserPatch) (*domain.User, error)
	MockTeams  func(id domain.UserId) ([]domain.TeamSummary, error)
}

func (m *MockUserService) Create(_ context.Context, data domain.UserCreationData) (domain.UserId, error) {
	if m.MockCreate != nil {
		return m.MockCreate(data)
	}
	return 1, nil
}

func (m *MockUserService) List(context.Context) ([]domain.User, error) {
	if m.MockList != nil {
		return m.MockList()
	}
	return []domain.User{}, nil
}

func (m *MockUserService) Get(_ context.Context, id domain.UserId) (*domain.User, error) {
	if m.MockGet != nil {
		return m.MockGet(id)
	}
	return &domain.User{Id: id}, nil
}

func (m *MockUserService) Update(_ context.Context, id domain.UserId, patch domain.UserPatch) (*domain.User, error) {
	if m.MockUpdate != nil {
		return m.MockUpdate(id, patch)
	}
	return &domain.User{Id: id}, nil
}

func (m *MockUserService) Teams(_ context.Context, id domain.UserId) ([]domain.TeamSummary, error) {
	if m.MockTeams != nil {
		return m.MockTeams(id)
	}
	return []domain.TeamSummary{}, nil
}

type MockTeamService struct {
	MockCreate      func(data domain.TeamCreationData) (domain.TeamId, error)
	MockList        func() ([]domain.Team, error)
	MockGet         func(id domain.TeamId) (*domain.Team, error)
	MockUpdate      func(id domain.TeamId, patch domain.TeamPatch) (*domain.Team, error)
	MockAddUsers    func(id domain.TeamId, users []domain.UserId) (domain.Members, error)
	MockRemoveUsers func(id domain.TeamId, users []domain.UserId) (domain.Members, error)
	MockUsers       func(id domain.TeamId) ([]domain.UserRef, error)
}

func (m *MockTeamService) Create(_ context.Context, data domain.TeamCreationData) (domain.TeamId, error) {
	if m.MockCreate != nil {
		return m.MockCreate(data)
	}
	return 1, nil
}

func (m *MockTeamService) List(context.Context) ([]domain.Team, error) {
	if m.MockList != nil {
		return m.MockList()
	}
	return []domain.Team{}, nil
}

func (m *MockTeamService) Get(_ context.Context, id domain.TeamId) (*domain.Team, error) {
	if m.MockGet != nil {
		return m.MockGet(id)
	}
	return &domain.Team{Id: id}, nil
}

func (m *MockTeamService) Update(_ context.Context, id domain.TeamId, patch domain.TeamPatch) (*domain.Team, error) {
	if m.MockUpdate != nil {
		return m.MockUpdate(id, patch)
	}
	return &domain.Team{Id: id}, nil
}

func (m *MockTeamService) AddUsers(_ context.Context, id domain.TeamId, users []domain.UserId) (domain.Members, error) {
	if m.MockAddUsers != nil {
		return m.MockAddUsers(id, users)
	}
	return domain.Members(users), nil
}

func (m *MockTeamService) RemoveUsers(_ context.Context, id domain.TeamId, users []domain.UserId) (domain.Members, error) {
	if m.MockRemoveUsers != nil {
		return m.MockRemoveUsers(id, users)
	}
	return domain.Members{}, nil
}

func (m *MockTeamService) Users(_ context.Context, id domain.TeamId) ([]domain.UserRef, error) {
	if m.MockUsers != nil {
		return m.MockUsers(id)
	}
	return []domain.UserRef{}, nil
}

type MockBoardService struct {
	MockCreate func(data domain.BoardCreationData) (domain.BoardId, error)
	MockGet    func(id domain.BoardId) (*domain.Board, error)
	MockClose  func(id domain.BoardId) (*domain.Board, error)
	MockList   func(teamId domain.TeamId) ([]domain.BoardMetadata, error)
	MockExport func(id domain.BoardId) (string, error)
}

func (m *MockBoardService) Create(_ context.Context, data domain.BoardCreationData) (domain.BoardId, error) {
	if m.MockCreate != nil {
		return m.MockCreate(data)
	}
	return 1, nil
}

func (m *MockBoardService) Get(_ context.Context, id domain.BoardId) (*domain.Board, error) {
	if m.MockGet != nil {
		return m.MockGet(id)
	}
	return &domain.Board{Id: id}, nil
}

func (m *MockBoardService) Close(_ context.Context, id domain.BoardId) (*domain.Board, error) {
	if m.MockClose != nil {
		return m.MockClose(id)
	}
	return &domain.Board{Id: id, Status: domain.BoardClosed}, nil
}

func (m *MockBoardService) List(_ context.Context, teamId domain.TeamId) ([]domain.BoardMetadata, error) {
	if m.MockList != nil {
		return m.MockList(teamId)
	}
	return []domain.BoardMetadata{}, nil
}

func (m *MockBoardService) Export(_ context.Context, id domain.BoardId) (string, error) {
	if m.MockExport != nil {
		return m.MockExport(id)
	}
	return "board.txt", nil
}

type MockTaskService struct {
	MockCreate       func(data domain.TaskCreationData) (domain.TaskId, error)
	MockUpdateStatus func(id domain.TaskId, status domain.TaskStatus) (*domain.Task, error)
	MockList         func(boardId domain.BoardId) ([]domain.Task, error)
}

func (m *MockTaskService) Create(_ context.Context, data domain.TaskCreationData) (domain.TaskId, error) {
	if m.MockCreate != nil {
		return m.MockCreate(data)
	}
	return 1, nil
}

func (m *MockTaskService) UpdateStatus(_ context.Context, id domain.TaskId, status domain.TaskStatus) (*domain.Task, error) {
	if m.MockUpdateStatus != nil {
		return m.MockUpdateStatus(id, status)
	}
	return &domain.Task{Id: id, Status: status}, nil
}

func (m *MockTaskService) List(_ context.Context, boardId domain.BoardId) ([]domain.Task, error) {
	if m.MockList != nil {
		return m.MockList(boardId)
	}
	return []domain.Task{}, nil
}

type MockHealthChecker struct {
	PingFunc func(ctx context.Context) error
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil // Default: healthy
}

// --- Helpers ---

func newTestHandler() *Handler {
	return New(&MockUserService{}, &MockTeamService{}, &MockBoardService{}, &MockTaskService{}, &MockHealthChecker{})
}

// routes mounts the handler the same way the api router does.
func routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		r.Post("/users", h.CreateUser)
		r.Get("/users", h.ListUsers)
		r.Get("/users/{id}", h.GetUser)
		r.Patch("/users/{id}", h.UpdateUser)
		r.Get("/users/{id}/teams", h.GetUserTeams)

		r.Post("/teams", h.CreateTeam)
		r.Get("/teams", h.ListTeams)
		r.Get("/teams/{id}", h.GetTeam)
		r.Patch("/teams/{id}", h.UpdateTeam)
		r.Post("/teams/{id}/users", h.AddTeamUsers)
		r.Delete("/teams/{id}/users", h.RemoveTeamUsers)
		r.Get("/teams/{id}/users", h.ListTeamUsers)
		r.Get("/teams/{id}/boards", h.ListTeamBoards)

		r.Post("/boards", h.CreateBoard)
		r.Get("/boards/{id}", h.GetBoard)
		r.Post("/boards/{id}/close", h.CloseBoard)
		r.Post("/boards/{id}/export", h.ExportBoard)
		r.Get("/boards/{id}/tasks", h.ListBoardTasks)

		r.Post("/tasks", h.CreateTask)
		r.Put("/tasks/{id}/status", h.UpdateTaskStatus)
	})
	return r
}

func serve(t *testing.T, h *Handler, method, url string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewBuffer(body))
	rr := httptest.NewRecorder()
	routes(h).ServeHTTP(rr, req)
	return rr
}
