package service

import (
	"context"
	"fmt"
	"time"

	"github.com/teamboard/teamboard/shared/domain"
	"github.com/teamboard/teamboard/shared/errors"
	"github.com/teamboard/teamboard/shared/logger"
)

// to mock service in tests
type TaskService interface {
	Create(ctx context.Context, data domain.TaskCreationData) (domain.TaskId, error)
	UpdateStatus(ctx context.Context, id domain.TaskId, status domain.TaskStatus) (*domain.Task, error)
	List(ctx context.Context, boardId domain.BoardId) ([]domain.Task, error)
}

type TaskValidator interface {
	Title(title string) error
	Description(description string) error
}

type Task struct {
	records   *Records
	validator TaskValidator
	now       func() time.Time
}

func NewTask(records *Records, validator TaskValidator) TaskService {
	return &Task{records: records, validator: validator, now: time.Now}
}

// Create adds a task to an OPEN board. Titles are unique per board.
// The assignee is stored as given.
func (s *Task) Create(ctx context.Context, data domain.TaskCreationData) (domain.TaskId, error) {
	if err := s.validator.Title(data.Title); err != nil {
		return 0, err
	}
	if err := s.validator.Description(data.Description); err != nil {
		return 0, err
	}

	defer s.records.Lock(BoardsCollection, TasksCollection)()

	boards, err := load[domain.Board](ctx, s.records, BoardsCollection)
	if err != nil {
		return 0, err
	}
	board, ok := boards[data.BoardId]
	if !ok {
		return 0, &errors.NotFoundError{Resource: "board", Id: data.BoardId}
	}
	if board.Status != domain.BoardOpen {
		return 0, &errors.ConflictError{Message: "Can only add tasks to an OPEN board"}
	}

	tasks, err := load[domain.Task](ctx, s.records, TasksCollection)
	if err != nil {
		return 0, err
	}
	for _, t := range tasks {
		if t.BoardId == data.BoardId && t.Title == data.Title {
			return 0, &errors.ConflictError{Message: "Task title must be unique for the board"}
		}
	}

	id := nextId(tasks)
	tasks[id] = domain.Task{
		Id:          id,
		Title:       data.Title,
		Description: data.Description,
		UserId:      data.UserId,
		BoardId:     data.BoardId,
		Status:      domain.TaskOpen,
		CreatedAt:   s.now().UTC(),
	}
	if err := save(ctx, s.records, TasksCollection, tasks); err != nil {
		return 0, err
	}

	recordsCreated.WithLabelValues(TasksCollection).Inc()
	logger.FromContext(ctx).Info("task created", "id", id, "board_id", data.BoardId, "user_id", data.UserId)
	return id, nil
}

// UpdateStatus sets any known status; transitions are not ordered.
func (s *Task) UpdateStatus(ctx context.Context, id domain.TaskId, status domain.TaskStatus) (*domain.Task, error) {
	if !status.Valid() {
		return nil, &errors.ValidationError{Message: fmt.Sprintf("Invalid status %q. Must be one of OPEN, IN_PROGRESS, or COMPLETE", status)}
	}

	defer s.records.Lock(TasksCollection)()

	tasks, err := load[domain.Task](ctx, s.records, TasksCollection)
	if err != nil {
		return nil, err
	}
	task, ok := tasks[id]
	if !ok {
		return nil, &errors.NotFoundError{Resource: "task", Id: id}
	}

	task.Status = status
	tasks[id] = task
	if err := save(ctx, s.records, TasksCollection, tasks); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("task status updated", "task", task.String())
	return &task, nil
}

func (s *Task) List(ctx context.Context, boardId domain.BoardId) ([]domain.Task, error) {
	boards, err := load[domain.Board](ctx, s.records, BoardsCollection)
	if err != nil {
		return nil, err
	}
	if _, ok := boards[boardId]; !ok {
		return nil, &errors.NotFoundError{Resource: "board", Id: boardId}
	}

	tasks, err := load[domain.Task](ctx, s.records, TasksCollection)
	if err != nil {
		return nil, err
	}
	result := []domain.Task{}
	for _, t := range inOrder(tasks) {
		if t.BoardId == boardId {
			result = append(result, t)
		}
	}
	return result, nil
}
