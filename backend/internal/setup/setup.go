package setup

import (
	"context"
	"fmt"

	"github.com/teamboard/teamboard/backend/internal/handler"
	"github.com/teamboard/teamboard/backend/internal/service"
	"github.com/teamboard/teamboard/backend/internal/storage/fs"
	"github.com/teamboard/teamboard/backend/internal/storage/sqlite"
	"github.com/teamboard/teamboard/backend/internal/utils"
	"github.com/teamboard/teamboard/shared/config"
	"github.com/teamboard/teamboard/shared/logger"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config  *config.Config
	Records *service.Records
	Handler *handler.Handler
	cleanup func()
}

// Cleanup releases the document backend.
func (d *Dependencies) Cleanup() {
	if d.cleanup != nil {
		d.cleanup()
	}
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	documents, cleanup, err := openDocuments(ctx, cfg.Public.Storage)
	if err != nil {
		return nil, err
	}

	exports, err := fs.New(cfg.Public.Storage.ExportDir)
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("open export dir: %w", err)
	}

	records := service.NewRecords(documents)

	user := service.NewUser(records, &utils.UserValidator{})
	team := service.NewTeam(records, &utils.TeamValidator{})
	board := service.NewBoard(records, exports, &utils.BoardValidator{})
	task := service.NewTask(records, &utils.TaskValidator{})

	h := handler.New(user, team, board, task, records)

	return &Dependencies{
		Config:  cfg,
		Records: records,
		Handler: h,
		cleanup: cleanup,
	}, nil
}

func openDocuments(ctx context.Context, cfg config.Storage) (service.DocumentStorage, func(), error) {
	switch cfg.Backend {
	case config.BackendSqlite:
		storage, err := sqlite.New(ctx, cfg.SqlitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		logger.Log.Info("using sqlite document store", "path", cfg.SqlitePath)
		return storage, storage.Cleanup, nil
	case config.BackendFS:
		storage, err := fs.New(cfg.DataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("open data dir: %w", err)
		}
		logger.Log.Info("using filesystem document store", "dir", cfg.DataDir)
		return storage, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
