package di

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/orderdesk/internal/app"
	"github.com/polkiloo/orderdesk/internal/config"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
	"github.com/polkiloo/orderdesk/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		SettingsFile:    filepath.Join(t.TempDir(), "settings.json"),
		SheetsAPIURL:    "http://localhost",
		AuthURL:         "http://localhost/auth",
		TokenURL:        "http://localhost/token",
		UserInfoURL:     "http://localhost/userinfo",
		SessionSecret:   "secret",
		RequestTimeout:  time.Second,
		ShutdownTimeout: time.Millisecond,
		SpreadsheetID:   "sheet-1",
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	settingsRepo := &test.SettingsRepositoryStub{}
	orderRepo := &test.OrderRepositoryStub{}
	menuRepo := &test.MenuRepositoryStub{}
	metaRepo := &test.MetaRepositoryStub{}

	var dashboard *app.Dashboard
	var engine *gin.Engine
	fxApp := fx.New(
		fx.NopLogger,
		fx.Provide(func() context.Context { return context.Background() }),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(repository.SettingsRepository(settingsRepo)),
			fx.Replace(repository.OrderRepository(orderRepo)),
			fx.Replace(repository.MenuRepository(menuRepo)),
			fx.Replace(repository.MetaRepository(metaRepo)),
		),
		fx.Populate(&dashboard, &engine),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if dashboard == nil || engine == nil {
		t.Fatal("expected dashboard and router instances")
	}
	if got := dashboard.Settings().SpreadsheetID; got != "sheet-1" {
		t.Fatalf("expected seeded spreadsheet id, got %q", got)
	}
}
