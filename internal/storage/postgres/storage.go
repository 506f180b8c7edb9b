package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
)

// settingsKey names the single settings document kept by the dashboard.
const settingsKey = "dashboard"

type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage persists dashboard settings in PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type settingsRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Storage) Settings() repository.SettingsRepository {
	return &settingsRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	const statement = `CREATE TABLE IF NOT EXISTS settings (
            name TEXT PRIMARY KEY,
            payload JSONB NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`
	if _, err := s.pool.Exec(ctx, statement); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

func (r *settingsRepository) Load(ctx context.Context) ([]byte, error) {
	const query = `SELECT payload FROM settings WHERE name=$1`
	var payload []byte
	err := r.storage.pool.QueryRow(ctx, query, settingsKey).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return payload, nil
}

func (r *settingsRepository) Save(ctx context.Context, blob []byte) error {
	const query = `INSERT INTO settings (name, payload, updated_at) VALUES ($1, $2, NOW())
                   ON CONFLICT (name) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()`
	if _, err := r.storage.pool.Exec(ctx, query, settingsKey, string(blob)); err != nil {
		r.storage.logger.Error("failed to save settings", slog.Any("error", err))
		return err
	}
	return nil
}
