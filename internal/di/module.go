package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/orderdesk/internal/adapter/broker"
	"github.com/polkiloo/orderdesk/internal/adapter/identity"
	"github.com/polkiloo/orderdesk/internal/adapter/sheets"
	"github.com/polkiloo/orderdesk/internal/app"
	"github.com/polkiloo/orderdesk/internal/config"
	"github.com/polkiloo/orderdesk/internal/logger"
	"github.com/polkiloo/orderdesk/internal/notify"
	"github.com/polkiloo/orderdesk/internal/pkg/auth"
	"github.com/polkiloo/orderdesk/internal/server/http/handlers"
	"github.com/polkiloo/orderdesk/internal/server/http/router"
	"github.com/polkiloo/orderdesk/internal/session"
	"github.com/polkiloo/orderdesk/internal/storage"
	"github.com/polkiloo/orderdesk/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		storage.Module,
		session.Module,
		sheets.Module,
		identity.Module,
		usecase.Module,
		notify.Module,
		broker.Module,
		fx.Provide(
			func(s *session.Store) sheets.TokenSource { return s },
			func(s *session.Store) usecase.SessionStore { return s },
			func(u *usecase.SettingsUseCase) sheets.SpreadsheetSource { return u },
			func(u *usecase.SettingsUseCase) identity.Credentials { return u },
			func(p *identity.Provider) usecase.IdentityProvider { return p },
			func(f *notify.Fanout) usecase.Notifier { return f },
			func(d *app.Dashboard) handlers.DashboardFacade { return d },
			func(h *notify.Hub) handlers.EventSource { return h },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
