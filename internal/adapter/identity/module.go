package identity

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/orderdesk/internal/config"
)

// Module exposes the OAuth identity provider.
var Module = fx.Provide(newProvider)

type providerParams struct {
	fx.In

	Config      *config.Config
	Credentials Credentials
	Logger      *slog.Logger
}

func newProvider(p providerParams) *Provider {
	return NewProvider(Options{
		AuthURL:     p.Config.AuthURL,
		TokenURL:    p.Config.TokenURL,
		UserInfoURL: p.Config.UserInfoURL,
		RedirectURL: p.Config.OAuthRedirectURL,
		Timeout:     p.Config.RequestTimeout,
	}, p.Credentials, p.Logger)
}
