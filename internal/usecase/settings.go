package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/orderdesk/internal/config"
	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
	"github.com/polkiloo/orderdesk/internal/pkg/auth"
)

// SettingsUseCase owns the dashboard settings and their persistence.
type SettingsUseCase struct {
	mu       sync.RWMutex
	current  model.Settings
	defaults model.Settings
	repo     repository.SettingsRepository
	sealer   auth.Sealer
	logger   *slog.Logger
}

// NewSettingsUseCase seeds defaults from configuration. Call Load to read stored values.
func NewSettingsUseCase(cfg *config.Config, repo repository.SettingsRepository, sealer auth.Sealer, logger *slog.Logger) *SettingsUseCase {
	defaults := model.DefaultSettings()
	defaults.SpreadsheetID = cfg.SpreadsheetID
	defaults.GoogleClientID = cfg.GoogleClientID
	defaults.GoogleClientSecret = cfg.GoogleClientSecret

	return &SettingsUseCase{
		current:  defaults,
		defaults: defaults,
		repo:     repo,
		sealer:   sealer,
		logger:   logger,
	}
}

// Load reads the stored blob over the defaults. Missing keys keep their
// defaults and unknown keys are ignored. A corrupt blob is logged and skipped.
func (u *SettingsUseCase) Load(ctx context.Context) error {
	blob, err := u.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("load settings: %w", err)
	}

	loaded := u.defaults
	loaded.GoogleClientSecret = ""
	if err := json.Unmarshal(blob, &loaded); err != nil {
		u.logger.Warn("stored settings are unreadable, using defaults", slog.Any("error", err))
		return nil
	}

	if loaded.GoogleClientSecret == "" {
		loaded.GoogleClientSecret = u.defaults.GoogleClientSecret
	} else {
		secret, err := u.sealer.Open(loaded.GoogleClientSecret)
		if err != nil {
			u.logger.Warn("stored client secret cannot be opened, dropping it", slog.Any("error", err))
			secret = ""
		}
		loaded.GoogleClientSecret = secret
	}

	u.mu.Lock()
	u.current = loaded.Normalize()
	u.mu.Unlock()
	return nil
}

// Save persists the current settings with the client secret sealed.
func (u *SettingsUseCase) Save(ctx context.Context) error {
	stored := u.Get()
	sealed, err := u.sealer.Seal(stored.GoogleClientSecret)
	if err != nil {
		return fmt.Errorf("seal client secret: %w", err)
	}
	stored.GoogleClientSecret = sealed

	blob, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return u.repo.Save(ctx, blob)
}

func (u *SettingsUseCase) Get() model.Settings {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.current
}

// Update merges patch and persists the result immediately. The in-memory
// value changes even when persistence fails.
func (u *SettingsUseCase) Update(ctx context.Context, patch model.SettingsPatch) (model.Settings, error) {
	u.mu.Lock()
	u.current = patch.Apply(u.current)
	updated := u.current
	u.mu.Unlock()

	if err := u.Save(ctx); err != nil {
		u.logger.Error("failed to persist settings", slog.Any("error", err))
		return updated, err
	}
	return updated, nil
}

// SpreadsheetID returns the configured spreadsheet or ErrNotConfigured.
func (u *SettingsUseCase) SpreadsheetID() (string, error) {
	id := u.Get().SpreadsheetID
	if id == "" {
		return "", domainErrors.ErrNotConfigured
	}
	return id, nil
}

// OAuthClient returns the OAuth client credentials or ErrNotConfigured when no client id is set.
func (u *SettingsUseCase) OAuthClient() (string, string, error) {
	s := u.Get()
	if s.GoogleClientID == "" {
		return "", "", domainErrors.ErrNotConfigured
	}
	return s.GoogleClientID, s.GoogleClientSecret, nil
}

func (u *SettingsUseCase) PollInterval() time.Duration {
	return time.Duration(u.Get().PollingInterval) * time.Second
}
