package usecase

import (
	"context"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
)

// OrderUseCase encapsulates order workflow logic.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// UpdateStatus sets any workflow status; jumps are allowed.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	if !status.Valid() {
		return domainErrors.ErrInvalidStatus
	}
	return u.orders.UpdateStatus(ctx, orderID, status)
}

// Advance moves order one step along the workflow. It reports false without
// writing when the order is already completed or carries an unknown status.
func (u *OrderUseCase) Advance(ctx context.Context, order model.Order) (model.OrderStatus, bool, error) {
	next, ok := order.Status.Next()
	if !ok {
		return order.Status, false, nil
	}
	if err := u.orders.UpdateStatus(ctx, order.ID, next); err != nil {
		return order.Status, false, err
	}
	return next, true, nil
}
