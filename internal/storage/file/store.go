package file

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
)

// Store keeps the settings document in a local file.
type Store struct {
	mu     sync.Mutex
	path   string
	logger *slog.Logger
}

// New creates Store writing to path.
func New(path string, logger *slog.Logger) *Store {
	return &Store{path: path, logger: logger}
}

func (s *Store) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("read settings: %w", err)
	}
	if len(blob) == 0 {
		return nil, domainErrors.ErrNotFound
	}
	return blob, nil
}

// Save replaces the file atomically through a temp file in the same directory.
func (s *Store) Save(ctx context.Context, blob []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".settings-*")
	if err != nil {
		return fmt.Errorf("create temp settings: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(blob); err != nil {
		tmp.Close()
		return fmt.Errorf("write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close settings: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace settings: %w", err)
	}
	s.logger.Debug("settings written", slog.String("path", s.path))
	return nil
}
