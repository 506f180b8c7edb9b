package storage

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/orderdesk/internal/config"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
	"github.com/polkiloo/orderdesk/internal/storage/file"
	"github.com/polkiloo/orderdesk/internal/storage/postgres"
)

// Module provides the settings repository: PostgreSQL when a DSN is configured, a local file otherwise.
var Module = fx.Provide(newSettingsRepository)

type storageParams struct {
	fx.In

	Ctx       context.Context
	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

func newSettingsRepository(p storageParams) (repository.SettingsRepository, error) {
	if p.Config.DatabaseURI == "" {
		p.Logger.Info("using file settings storage", slog.String("path", p.Config.SettingsFile))
		return file.New(p.Config.SettingsFile, p.Logger), nil
	}

	storage, err := postgres.Open(p.Ctx, p.Lifecycle, p.Config.DatabaseURI, p.Logger)
	if err != nil {
		return nil, err
	}
	p.Logger.Info("using postgres settings storage")
	return storage.Settings(), nil
}
