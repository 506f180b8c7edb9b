package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/orderdesk/internal/config"
	"github.com/polkiloo/orderdesk/internal/notify"
	"github.com/polkiloo/orderdesk/internal/usecase"
	"github.com/polkiloo/orderdesk/internal/worker"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewDashboard,
		newHTTPServer,
		newSyncLoop,
	),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
	Hub    *notify.Hub
}

// newHTTPServer builds the server. Event streams are closed as soon as
// shutdown begins so they do not hold it open.
func newHTTPServer(p serverParams) *http.Server {
	srv := &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
	srv.RegisterOnShutdown(p.Hub.Close)
	return srv
}

type workerParams struct {
	fx.In

	Dashboard *Dashboard
	Logger    *slog.Logger
}

func newSyncLoop(p workerParams) *worker.SyncLoop {
	return worker.NewSyncLoop(p.Dashboard, p.Logger)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Worker     *worker.SyncLoop
	Settings   *usecase.SettingsUseCase
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := p.Settings.Load(ctx); err != nil {
				return err
			}
			p.Logger.Info("starting orderdesk", slog.String("addr", p.Server.Addr))
			p.Worker.Start(context.WithoutCancel(ctx))
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Worker.Stop()

			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			if err := p.Settings.Save(shutdownCtx); err != nil {
				p.Logger.Error("failed to save settings on shutdown", slog.String("error", err.Error()))
			}
			p.Logger.Info("orderdesk stopped")
			return nil
		},
	})
}
