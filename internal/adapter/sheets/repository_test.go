package sheets

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
)

type write struct {
	Range  string
	Values [][]string
}

// fakeValues serves canned ranges and records writes.
type fakeValues struct {
	ranges map[string][][]string
	err    error
	writes []write
}

func (f *fakeValues) Values(_ context.Context, rng string) ([][]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.ranges[rng], nil
}

func (f *fakeValues) Update(_ context.Context, rng string, values [][]string) error {
	f.writes = append(f.writes, write{Range: rng, Values: values})
	return nil
}

func TestOrderRepositoryListProjectsNewestFirst(t *testing.T) {
	fake := &fakeValues{ranges: map[string][][]string{
		ordersRange: {
			{"101", "Asha", "555-0101", "pickup", "Samosa, Chai", "120", "paid", "new", "2024-05-01 10:00:00"},
			{},
			{"102", "Ravi", "555-0102", "delivery", "Thali", "250.50", "cod", "accepted", "2024-05-01 10:05:00"},
			{"103", "Meera"},
		},
	}}

	orders, err := NewOrderRepository(fake).List(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 3)

	assert.Equal(t, "103", orders[0].ID)
	assert.Equal(t, "", orders[0].CreatedAt, "short rows are padded")
	assert.Equal(t, model.Order{
		ID:            "102",
		CustomerName:  "Ravi",
		Phone:         "555-0102",
		Type:          model.FulfillmentDelivery,
		Items:         "Thali",
		TotalAmount:   "250.50",
		PaymentStatus: "cod",
		Status:        model.OrderStatusAccepted,
		CreatedAt:     "2024-05-01 10:05:00",
	}, orders[1])
	assert.Equal(t, "101", orders[2].ID)
}

func TestOrderRepositoryListEmpty(t *testing.T) {
	orders, err := NewOrderRepository(&fakeValues{}).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestOrderRepositoryUpdateStatusWritesColumnH(t *testing.T) {
	fake := &fakeValues{ranges: map[string][][]string{
		ordersIDColumn: {{"order_id"}, {"101"}, {"102"}},
	}}

	err := NewOrderRepository(fake).UpdateStatus(context.Background(), "102", model.OrderStatusReady)
	require.NoError(t, err)
	assert.Equal(t, []write{{Range: "Orders!H3", Values: [][]string{{"ready"}}}}, fake.writes)
}

func TestOrderRepositoryUpdateStatusMissingOrder(t *testing.T) {
	fake := &fakeValues{ranges: map[string][][]string{
		ordersIDColumn: {{"order_id"}, {"101"}},
	}}

	err := NewOrderRepository(fake).UpdateStatus(context.Background(), "999", model.OrderStatusReady)
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)
	assert.Empty(t, fake.writes, "no write may be issued for a missing order")
}

func TestMenuRepositoryList(t *testing.T) {
	fake := &fakeValues{ranges: map[string][][]string{
		menuRange: {
			{"M1", "Samosa", "120", "TRUE"},
			{"M2", "Lassi", "80", "FALSE"},
			{"M3", "Chai", "30", "true"},
			{"M4", "Kulfi", "60"},
		},
	}}

	items, err := NewMenuRepository(fake).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.MenuItem{
		{ID: "M1", Name: "Samosa", Price: "120", Available: true},
		{ID: "M2", Name: "Lassi", Price: "80", Available: false},
		{ID: "M3", Name: "Chai", Price: "30", Available: true},
		{ID: "M4", Name: "Kulfi", Price: "60", Available: false},
	}, items)
}

func TestMenuRepositoryUpdateOverwritesPriceAndAvailability(t *testing.T) {
	fake := &fakeValues{ranges: map[string][][]string{
		menuIDColumn: {{"item_id"}, {"M4"}, {"M3"}, {"M2"}, {"M1"}},
	}}

	err := NewMenuRepository(fake).Update(context.Background(), model.MenuItem{ID: "M1", Name: "Samosa", Price: "150", Available: false})
	require.NoError(t, err)
	assert.Equal(t, []write{{Range: "Menu!C5:D5", Values: [][]string{{"150", "FALSE"}}}}, fake.writes)
}

func TestMenuRepositoryUpdateMissingItem(t *testing.T) {
	fake := &fakeValues{ranges: map[string][][]string{menuIDColumn: {{"item_id"}}}}

	err := NewMenuRepository(fake).Update(context.Background(), model.MenuItem{ID: "M9", Price: "10", Available: true})
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)
	assert.Empty(t, fake.writes)
}

func TestMetaRepositoryGet(t *testing.T) {
	fake := &fakeValues{ranges: map[string][][]string{
		metaRange: {{"other", "x"}, {"last_seen_order_timestamp", "2024-05-01 10:00:00"}, {"last_seen_order_timestamp", "shadowed"}},
	}}
	repo := NewMetaRepository(fake)

	value, ok, err := repo.Get(context.Background(), "last_seen_order_timestamp")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2024-05-01 10:00:00", value)

	_, ok, err = repo.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMetaRepositoryPutOverwritesExistingKey(t *testing.T) {
	fake := &fakeValues{ranges: map[string][][]string{
		metaKeyColumn: {{"key"}, {"last_seen_order_timestamp"}, {"other"}},
	}}

	require.NoError(t, NewMetaRepository(fake).Put(context.Background(), "last_seen_order_timestamp", "2024-05-02"))
	assert.Equal(t, []write{{Range: "Meta!A2:B2", Values: [][]string{{"last_seen_order_timestamp", "2024-05-02"}}}}, fake.writes)
}

func TestMetaRepositoryPutAppendsMissingKey(t *testing.T) {
	fake := &fakeValues{ranges: map[string][][]string{
		metaKeyColumn: {{"key"}, {"a"}, {"b"}},
	}}

	require.NoError(t, NewMetaRepository(fake).Put(context.Background(), "last_seen_order_timestamp", "2024-05-02"))
	assert.Equal(t, []write{{Range: "Meta!A4:B4", Values: [][]string{{"last_seen_order_timestamp", "2024-05-02"}}}}, fake.writes)
}

func TestRepositoriesPropagateFetchErrors(t *testing.T) {
	fetchErr := &domainErrors.FetchError{Range: "x", StatusCode: 401}
	fake := &fakeValues{err: fetchErr}

	_, err := NewOrderRepository(fake).List(context.Background())
	assert.True(t, errors.Is(err, domainErrors.ErrUnauthorized))

	err = NewMenuRepository(fake).Update(context.Background(), model.MenuItem{ID: "M1"})
	assert.ErrorIs(t, err, fetchErr)

	err = NewMetaRepository(fake).Put(context.Background(), "k", "v")
	assert.ErrorIs(t, err, fetchErr)
	assert.Empty(t, fake.writes)
}
