package sheets

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// Fixed layout of the backing spreadsheet. Data ranges skip the header row,
// identifier columns start at row 1 so that index+1 is the sheet row.
const (
	ordersRange    = "Orders!A2:I"
	ordersIDColumn = "Orders!A:A"
	menuRange      = "Menu!A2:D"
	menuIDColumn   = "Menu!A:A"
	metaRange      = "Meta!A2:B"
	metaKeyColumn  = "Meta!A:A"
)

// OrderRepository maps the Orders sheet.
type OrderRepository struct {
	client ValuesClient
}

// NewOrderRepository creates OrderRepository.
func NewOrderRepository(client ValuesClient) *OrderRepository {
	return &OrderRepository{client: client}
}

// List returns orders newest first; rows are appended chronologically in the sheet.
func (r *OrderRepository) List(ctx context.Context) ([]model.Order, error) {
	rows, err := r.client.Values(ctx, ordersRange)
	if err != nil {
		return nil, err
	}
	orders := make([]model.Order, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		row := rows[i]
		if blank(row) {
			continue
		}
		orders = append(orders, model.Order{
			ID:            cell(row, 0),
			CustomerName:  cell(row, 1),
			Phone:         cell(row, 2),
			Type:          model.FulfillmentType(cell(row, 3)),
			Items:         cell(row, 4),
			TotalAmount:   cell(row, 5),
			PaymentStatus: cell(row, 6),
			Status:        model.OrderStatus(cell(row, 7)),
			CreatedAt:     cell(row, 8),
		})
	}
	return orders, nil
}

// UpdateStatus rewrites column H of the order's row.
func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	row, _, err := locate(ctx, r.client, ordersIDColumn, orderID)
	if err != nil {
		return err
	}
	if row == 0 {
		return fmt.Errorf("order %s: %w", orderID, domainErrors.ErrNotFound)
	}
	return r.client.Update(ctx, fmt.Sprintf("Orders!H%d", row), [][]string{{string(status)}})
}

// MenuRepository maps the Menu sheet.
type MenuRepository struct {
	client ValuesClient
}

// NewMenuRepository creates MenuRepository.
func NewMenuRepository(client ValuesClient) *MenuRepository {
	return &MenuRepository{client: client}
}

// List returns menu items in sheet order.
func (r *MenuRepository) List(ctx context.Context) ([]model.MenuItem, error) {
	rows, err := r.client.Values(ctx, menuRange)
	if err != nil {
		return nil, err
	}
	items := make([]model.MenuItem, 0, len(rows))
	for _, row := range rows {
		if blank(row) {
			continue
		}
		items = append(items, model.MenuItem{
			ID:        cell(row, 0),
			Name:      cell(row, 1),
			Price:     cell(row, 2),
			Available: strings.EqualFold(cell(row, 3), "TRUE"),
		})
	}
	return items, nil
}

// Update rewrites price and availability (columns C:D) of the item's row.
func (r *MenuRepository) Update(ctx context.Context, item model.MenuItem) error {
	row, _, err := locate(ctx, r.client, menuIDColumn, item.ID)
	if err != nil {
		return err
	}
	if row == 0 {
		return fmt.Errorf("menu item %s: %w", item.ID, domainErrors.ErrNotFound)
	}
	available := "FALSE"
	if item.Available {
		available = "TRUE"
	}
	return r.client.Update(ctx, fmt.Sprintf("Menu!C%d:D%d", row, row), [][]string{{item.Price, available}})
}

// MetaRepository maps the Meta key/value sheet.
type MetaRepository struct {
	client ValuesClient
}

// NewMetaRepository creates MetaRepository.
func NewMetaRepository(client ValuesClient) *MetaRepository {
	return &MetaRepository{client: client}
}

// Get returns the value of the first row whose key matches.
func (r *MetaRepository) Get(ctx context.Context, key string) (string, bool, error) {
	rows, err := r.client.Values(ctx, metaRange)
	if err != nil {
		return "", false, err
	}
	for _, row := range rows {
		if cell(row, 0) == key {
			return cell(row, 1), true, nil
		}
	}
	return "", false, nil
}

// Put overwrites the key's row or appends after the last used row.
func (r *MetaRepository) Put(ctx context.Context, key, value string) error {
	row, used, err := locate(ctx, r.client, metaKeyColumn, key)
	if err != nil {
		return err
	}
	if row == 0 {
		row = used + 1
	}
	return r.client.Update(ctx, fmt.Sprintf("Meta!A%d:B%d", row, row), [][]string{{key, value}})
}

// locate re-reads an identifier column and returns the 1-based row of the first
// matching cell (0 when absent) together with the number of used rows.
func locate(ctx context.Context, client ValuesClient, column, key string) (int, int, error) {
	rows, err := client.Values(ctx, column)
	if err != nil {
		return 0, 0, err
	}
	for i, row := range rows {
		if cell(row, 0) == key {
			return i + 1, len(rows), nil
		}
	}
	return 0, len(rows), nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func blank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
