package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
)

// MenuUseCase edits menu prices and availability.
type MenuUseCase struct {
	menu repository.MenuRepository
}

func NewMenuUseCase(menu repository.MenuRepository) *MenuUseCase {
	return &MenuUseCase{menu: menu}
}

// Update writes price and availability for item id. Price must be a
// non-negative decimal and is stored in canonical form ("12.50" -> "12.5").
func (u *MenuUseCase) Update(ctx context.Context, id, price string, available bool) (model.MenuItem, error) {
	canonical, err := NormalizePrice(price)
	if err != nil {
		return model.MenuItem{}, err
	}

	item := model.MenuItem{ID: id, Price: canonical, Available: available}
	if err := u.menu.Update(ctx, item); err != nil {
		return model.MenuItem{}, err
	}
	return item, nil
}

// NormalizePrice validates price and returns its canonical decimal text.
func NormalizePrice(price string) (string, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(price))
	if err != nil || d.IsNegative() {
		return "", domainErrors.ErrInvalidPrice
	}
	return d.String(), nil
}
