package sheets

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/orderdesk/internal/config"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
)

// Module exposes the values client and sheet-backed repositories to the fx graph.
var Module = fx.Options(
	fx.Provide(newClient),
	fx.Provide(
		func(c ValuesClient) repository.OrderRepository { return NewOrderRepository(c) },
		func(c ValuesClient) repository.MenuRepository { return NewMenuRepository(c) },
		func(c ValuesClient) repository.MetaRepository { return NewMetaRepository(c) },
	),
)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Tokens TokenSource
	Sheets SpreadsheetSource
}

func newClient(p clientParams) (ValuesClient, error) {
	return NewHTTPClient(p.Config.SheetsAPIURL, p.Config.RequestTimeout, p.Tokens, p.Sheets, p.Logger)
}
