package handlers

import (
	"context"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/notify"
)

// SessionFacade covers sign-in and sign-out.
type SessionFacade interface {
	BeginLogin() (string, error)
	CompleteLogin(ctx context.Context, state, code string) (model.Session, error)
	AttachToken(ctx context.Context, token string) (model.Session, error)
	Session() (model.Session, bool)
	Logout()
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	Orders() []model.Order
	Order(id string) (model.Order, error)
	IsNew(id string) bool
	UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (model.Order, error)
	AdvanceOrder(ctx context.Context, id string) (model.Order, error)
	AcknowledgeOrder(id string) bool
}

// MenuFacade provides menu operations.
type MenuFacade interface {
	Menu() []model.MenuItem
	UpdateMenuItem(ctx context.Context, id, price string, available bool) (model.MenuItem, error)
}

// SettingsFacade reads and patches dashboard settings.
type SettingsFacade interface {
	Settings() model.Settings
	UpdateSettings(ctx context.Context, patch model.SettingsPatch) (model.Settings, error)
}

// StateFacade reports dashboard state and triggers manual refreshes.
type StateFacade interface {
	State() model.DashboardState
	Sync(ctx context.Context) error
}

// DashboardFacade aggregates the full set of operations used across handlers.
type DashboardFacade interface {
	SessionFacade
	OrderFacade
	MenuFacade
	SettingsFacade
	StateFacade
}

// EventSource hands out subscriptions to new order events.
type EventSource interface {
	Subscribe() (<-chan notify.Payload, func())
}
