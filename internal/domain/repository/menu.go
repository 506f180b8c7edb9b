package repository

import (
	"context"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// MenuRepository reads menu items and rewrites price/availability.
type MenuRepository interface {
	List(ctx context.Context) ([]model.MenuItem, error)
	Update(ctx context.Context, item model.MenuItem) error
}
