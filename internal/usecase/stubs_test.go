package usecase

import (
	"context"
	"io"
	"log/slog"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

type memSettingsRepo struct {
	blob    []byte
	loadErr error
	saveErr error
	saves   int
}

func (r *memSettingsRepo) Load(context.Context) ([]byte, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	if r.blob == nil {
		return nil, domainErrors.ErrNotFound
	}
	return r.blob, nil
}

func (r *memSettingsRepo) Save(_ context.Context, blob []byte) error {
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.blob = blob
	return nil
}

type orderRepoStub struct {
	orders    []model.Order
	listErr   error
	updateErr error
	updates   []statusUpdate
}

type statusUpdate struct {
	ID     string
	Status model.OrderStatus
}

func (r *orderRepoStub) List(context.Context) ([]model.Order, error) {
	return r.orders, r.listErr
}

func (r *orderRepoStub) UpdateStatus(_ context.Context, id string, status model.OrderStatus) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updates = append(r.updates, statusUpdate{ID: id, Status: status})
	return nil
}

type menuRepoStub struct {
	items     []model.MenuItem
	listErr   error
	updateErr error
	updated   []model.MenuItem
}

func (r *menuRepoStub) List(context.Context) ([]model.MenuItem, error) {
	return r.items, r.listErr
}

func (r *menuRepoStub) Update(_ context.Context, item model.MenuItem) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updated = append(r.updated, item)
	return nil
}

type metaRepoStub struct {
	values map[string]string
	getErr error
	putErr error
	puts   int
}

func (r *metaRepoStub) Get(_ context.Context, key string) (string, bool, error) {
	if r.getErr != nil {
		return "", false, r.getErr
	}
	v, ok := r.values[key]
	return v, ok, nil
}

func (r *metaRepoStub) Put(_ context.Context, key, value string) error {
	if r.putErr != nil {
		return r.putErr
	}
	if r.values == nil {
		r.values = make(map[string]string)
	}
	r.values[key] = value
	r.puts++
	return nil
}

type recordingNotifier struct {
	events []model.NewOrdersEvent
	err    error
}

func (n *recordingNotifier) Notify(_ context.Context, event model.NewOrdersEvent) error {
	n.events = append(n.events, event)
	return n.err
}

type staticSettings struct {
	settings model.Settings
}

func (s staticSettings) Get() model.Settings { return s.settings }
