package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
)

// WatermarkKey is the Meta key holding the newest acknowledged created_at.
const WatermarkKey = "last_seen_order_timestamp"

// Notifier delivers new order alerts.
type Notifier interface {
	Notify(ctx context.Context, event model.NewOrdersEvent) error
}

type settingsReader interface {
	Get() model.Settings
}

// SyncResult is the outcome of one tick.
type SyncResult struct {
	Orders    []model.Order
	Menu      []model.MenuItem
	Arrived   []string
	Watermark string
}

// SyncUseCase runs one polling pass over the spreadsheet.
type SyncUseCase struct {
	orders   repository.OrderRepository
	menu     repository.MenuRepository
	meta     repository.MetaRepository
	settings settingsReader
	notifier Notifier
	logger   *slog.Logger
}

// NewSyncUseCase constructs SyncUseCase.
func NewSyncUseCase(
	orders repository.OrderRepository,
	menu repository.MenuRepository,
	meta repository.MetaRepository,
	settings *SettingsUseCase,
	notifier Notifier,
	logger *slog.Logger,
) *SyncUseCase {
	return &SyncUseCase{
		orders:   orders,
		menu:     menu,
		meta:     meta,
		settings: settings,
		notifier: notifier,
		logger:   logger,
	}
}

// Tick fetches orders, menu and the watermark, then detects arrivals.
//
// Orders whose created_at sorts after the watermark have arrived: they raise a
// single notification and the watermark moves to the largest of them. With no
// watermark stored yet the newest created_at becomes the watermark silently.
// Timestamps are compared as strings, so the sheet must hold a lexically
// sortable format.
func (u *SyncUseCase) Tick(ctx context.Context) (*SyncResult, error) {
	orders, err := u.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}

	menu, err := u.menu.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch menu: %w", err)
	}

	watermark, found, err := u.meta.Get(ctx, WatermarkKey)
	if err != nil {
		return nil, fmt.Errorf("fetch watermark: %w", err)
	}

	result := &SyncResult{Orders: orders, Menu: menu, Watermark: watermark}

	if !found || watermark == "" {
		newest := newestTimestamp(orders)
		if newest == "" {
			return result, nil
		}
		if err := u.meta.Put(ctx, WatermarkKey, newest); err != nil {
			return nil, fmt.Errorf("seed watermark: %w", err)
		}
		u.logger.Info("watermark seeded", slog.String("watermark", newest))
		result.Watermark = newest
		return result, nil
	}

	var arrived []model.Order
	for _, o := range orders {
		if o.CreatedAt > watermark {
			arrived = append(arrived, o)
		}
	}
	if len(arrived) == 0 {
		return result, nil
	}

	newest := newestTimestamp(arrived)
	ids := make([]string, 0, len(arrived))
	for _, o := range arrived {
		ids = append(ids, o.ID)
	}

	settings := u.settings.Get()
	event := model.NewOrdersEvent{
		OrderIDs:  ids,
		Watermark: newest,
		Sound:     settings.SoundEnabled,
		Vibrate:   settings.VibrateEnabled,
	}
	if err := u.notifier.Notify(ctx, event); err != nil {
		u.logger.Warn("new order notification failed", slog.Any("error", err))
	}

	if err := u.meta.Put(ctx, WatermarkKey, newest); err != nil {
		return nil, fmt.Errorf("advance watermark: %w", err)
	}

	u.logger.Info("new orders detected", slog.Int("count", len(ids)), slog.String("watermark", newest))
	result.Arrived = ids
	result.Watermark = newest
	return result, nil
}

func newestTimestamp(orders []model.Order) string {
	var newest string
	for _, o := range orders {
		if o.CreatedAt > newest {
			newest = o.CreatedAt
		}
	}
	return newest
}
