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
type BoardService interface {
	Create(ctx context.Context, data domain.BoardCreationData) (domain.BoardId, error)
	Get(ctx context.Context, id domain.BoardId) (*domain.Board, error)
	Close(ctx context.Context, id domain.BoardId) (*domain.Board, error)
	List(ctx context.Context, teamId domain.TeamId) ([]domain.BoardMetadata, error)
	Export(ctx context.Context, id domain.BoardId) (string, error)
}

type BoardValidator interface {
	Name(name string) error
	Description(description string) error
}

type Board struct {
	records   *Records
	exports   ExportStorage
	validator BoardValidator
	now       func() time.Time
}

func NewBoard(records *Records, exports ExportStorage, validator BoardValidator) BoardService {
	return &Board{records: records, exports: exports, validator: validator, now: time.Now}
}

// Create opens a new board. Names are unique per team, not globally.
func (b *Board) Create(ctx context.Context, data domain.BoardCreationData) (domain.BoardId, error) {
	if err := b.validator.Name(data.Name); err != nil {
		return 0, err
	}
	if err := b.validator.Description(data.Description); err != nil {
		return 0, err
	}

	defer b.records.Lock(BoardsCollection)()

	boards, err := load[domain.Board](ctx, b.records, BoardsCollection)
	if err != nil {
		return 0, err
	}
	for _, board := range boards {
		if board.Name == data.Name && board.TeamId == data.TeamId {
			return 0, &errors.ConflictError{Message: "Board name must be unique for the team"}
		}
	}

	id := nextId(boards)
	boards[id] = domain.Board{
		Id:          id,
		Name:        data.Name,
		Description: data.Description,
		TeamId:      data.TeamId,
		Status:      domain.BoardOpen,
		CreatedAt:   b.now().UTC(),
	}
	if err := save(ctx, b.records, BoardsCollection, boards); err != nil {
		return 0, err
	}

	recordsCreated.WithLabelValues(BoardsCollection).Inc()
	logger.FromContext(ctx).Info("board created", "id", id, "name", data.Name, "team_id", data.TeamId)
	return id, nil
}

func (b *Board) Get(ctx context.Context, id domain.BoardId) (*domain.Board, error) {
	boards, err := load[domain.Board](ctx, b.records, BoardsCollection)
	if err != nil {
		return nil, err
	}
	board, ok := boards[id]
	if !ok {
		return nil, &errors.NotFoundError{Resource: "board", Id: id}
	}
	return &board, nil
}

// Close moves an OPEN board to CLOSED once every one of its tasks is COMPLETE.
// There is no way back.
func (b *Board) Close(ctx context.Context, id domain.BoardId) (*domain.Board, error) {
	// tasks are locked too so that no task is added or reopened while we check them
	defer b.records.Lock(BoardsCollection, TasksCollection)()

	boards, err := load[domain.Board](ctx, b.records, BoardsCollection)
	if err != nil {
		return nil, err
	}
	board, ok := boards[id]
	if !ok {
		return nil, &errors.NotFoundError{Resource: "board", Id: id}
	}
	if board.Status != domain.BoardOpen {
		return nil, &errors.ConflictError{Message: "Board is already closed"}
	}

	tasks, err := load[domain.Task](ctx, b.records, TasksCollection)
	if err != nil {
		return nil, err
	}
	for _, task := range tasks {
		if task.BoardId == id && task.Status != domain.TaskComplete {
			return nil, &errors.ConflictError{Message: "All tasks must be marked as COMPLETE before closing the board"}
		}
	}

	end := b.now().UTC()
	board.Status = domain.BoardClosed
	board.EndTime = &end
	boards[id] = board
	if err := save(ctx, b.records, BoardsCollection, boards); err != nil {
		return nil, err
	}

	boardsClosed.Inc()
	logger.FromContext(ctx).Info("board closed", "board", board.String())
	return &board, nil
}

// List returns the open boards of a team. Closed boards are left out.
func (b *Board) List(ctx context.Context, teamId domain.TeamId) ([]domain.BoardMetadata, error) {
	boards, err := load[domain.Board](ctx, b.records, BoardsCollection)
	if err != nil {
		return nil, err
	}

	result := []domain.BoardMetadata{}
	for _, board := range inOrder(boards) {
		if board.TeamId == teamId && board.Status == domain.BoardOpen {
			result = append(result, domain.BoardMetadata{Id: board.Id, Name: board.Name})
		}
	}
	return result, nil
}

// Export renders the board and its tasks and writes them to board_<id>.txt.
// It returns the name of the written file.
func (b *Board) Export(ctx context.Context, id domain.BoardId) (string, error) {
	boards, err := load[domain.Board](ctx, b.records, BoardsCollection)
	if err != nil {
		return "", err
	}
	board, ok := boards[id]
	if !ok {
		return "", &errors.NotFoundError{Resource: "board", Id: id}
	}

	tasks, err := load[domain.Task](ctx, b.records, TasksCollection)
	if err != nil {
		return "", err
	}
	var boardTasks []domain.Task
	for _, task := range inOrder(tasks) {
		if task.BoardId == id {
			boardTasks = append(boardTasks, task)
		}
	}

	content, err := RenderBoard(&board, boardTasks)
	if err != nil {
		return "", fmt.Errorf("render board %d: %w", id, err)
	}
	name, err := b.exports.SaveFile(ctx, ExportFileName(id), content)
	if err != nil {
		return "", fmt.Errorf("write export of board %d: %w", id, err)
	}

	boardExports.Inc()
	logger.FromContext(ctx).Info("board exported", "id", id, "file", name, "tasks", len(boardTasks))
	return name, nil
}
