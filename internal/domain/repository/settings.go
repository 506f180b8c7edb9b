package repository

import "context"

// SettingsRepository persists the raw settings blob. Load returns ErrNotFound when nothing was saved yet.
type SettingsRepository interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, blob []byte) error
}
