package snapshot

import (
	"log/slog"

	"ppoth/config"
	"ppoth/internal/domain/repository"
	"ppoth/internal/errors"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New selects the snapshot backend from configuration. The sqlite backend
// registers its connection close with the fx lifecycle.
func New(params Params) (repository.SnapshotStore, error) {
	cfg := params.Config.Storage

	switch cfg.Driver {
	case "memory", "":
		params.Logger.Info("Using in-memory snapshot store")

		return NewMemoryStore(), nil

	case "file":
		params.Logger.Info("Using file snapshot store", slog.String("dir", cfg.Path))

		return NewFileStore(cfg.Path)

	case "sqlite":
		params.Logger.Info("Using sqlite snapshot store", slog.String("path", cfg.Path))

		store, closeFn, err := NewSQLiteStore(cfg.Path, WithGormLogger(params.Logger, params.Config.Env.Debug))
		if err != nil {
			return nil, err
		}

		params.Append(fx.StopHook(func() error {
			return closeFn()
		}))

		return store, nil

	default:
		return nil, errors.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}
