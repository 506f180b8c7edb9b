package repository

import (
	"context"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// OrderRepository reads orders and rewrites their status column.
type OrderRepository interface {
	List(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error
}
