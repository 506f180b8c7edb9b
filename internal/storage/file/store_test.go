package file

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	return New(path, slog.New(slog.NewJSONHandler(io.Discard, nil)))
}

func TestStoreLoadMissing(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.Load(context.Background()); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestStoreLoadEmptyFile(t *testing.T) {
	store := newTestStore(t)
	if err := os.WriteFile(store.path, nil, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := store.Load(context.Background()); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestStoreSaveThenLoad(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, []byte(`{"pollingInterval":45}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save(ctx, []byte(`{"pollingInterval":60}`)); err != nil {
		t.Fatalf("save: %v", err)
	}

	blob, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(blob) != `{"pollingInterval":60}` {
		t.Fatalf("unexpected blob: %s", blob)
	}

	entries, err := os.ReadDir(filepath.Dir(store.path))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the settings file, got %d entries", len(entries))
	}
}

func TestStoreSaveMissingDirectory(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "missing", "settings.json"), slog.New(slog.NewJSONHandler(io.Discard, nil)))
	if err := store.Save(context.Background(), []byte(`{}`)); err == nil {
		t.Fatal("expected error")
	}
}

func TestStoreHonoursCanceledContext(t *testing.T) {
	store := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := store.Save(ctx, []byte(`{}`)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled, got %v", err)
	}
	if _, err := store.Load(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled, got %v", err)
	}
}
