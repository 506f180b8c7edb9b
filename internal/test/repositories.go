package test

import (
	"context"
	"sync"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// OrderUpdateCall captures a status write.
type OrderUpdateCall struct {
	ID     string
	Status model.OrderStatus
}

// OrderRepositoryStub serves a fixed order list and records status writes.
type OrderRepositoryStub struct {
	mu        sync.Mutex
	Orders    []model.Order
	ListErr   error
	UpdateErr error
	Updates   []OrderUpdateCall
}

// List returns a copy of Orders.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return append([]model.Order(nil), s.Orders...), nil
}

// UpdateStatus patches the matching order or returns ErrNotFound.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.UpdateErr != nil {
		return s.UpdateErr
	}
	for i := range s.Orders {
		if s.Orders[i].ID == orderID {
			s.Orders[i].Status = status
			s.Updates = append(s.Updates, OrderUpdateCall{ID: orderID, Status: status})
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// SetOrders replaces the served list.
func (s *OrderRepositoryStub) SetOrders(orders []model.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Orders = orders
}

// SetListErr makes List fail with err.
func (s *OrderRepositoryStub) SetListErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ListErr = err
}

// MenuRepositoryStub serves a fixed menu and records item writes.
type MenuRepositoryStub struct {
	mu        sync.Mutex
	Items     []model.MenuItem
	ListErr   error
	UpdateErr error
	Updated   []model.MenuItem
}

func (s *MenuRepositoryStub) List(ctx context.Context) ([]model.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return append([]model.MenuItem(nil), s.Items...), nil
}

func (s *MenuRepositoryStub) Update(ctx context.Context, item model.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.UpdateErr != nil {
		return s.UpdateErr
	}
	for i := range s.Items {
		if s.Items[i].ID == item.ID {
			s.Items[i].Price = item.Price
			s.Items[i].Available = item.Available
			s.Updated = append(s.Updated, item)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// MetaRepositoryStub keeps meta values in memory.
type MetaRepositoryStub struct {
	mu     sync.Mutex
	Values map[string]string
	GetErr error
	PutErr error
}

func (s *MetaRepositoryStub) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GetErr != nil {
		return "", false, s.GetErr
	}
	v, ok := s.Values[key]
	return v, ok, nil
}

func (s *MetaRepositoryStub) Put(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.PutErr != nil {
		return s.PutErr
	}
	if s.Values == nil {
		s.Values = make(map[string]string)
	}
	s.Values[key] = value
	return nil
}

// Value returns the stored value for key.
func (s *MetaRepositoryStub) Value(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Values[key]
}

// SettingsRepositoryStub holds the settings blob in memory.
type SettingsRepositoryStub struct {
	mu      sync.Mutex
	Blob    []byte
	LoadErr error
	SaveErr error
	Saves   int
}

func (s *SettingsRepositoryStub) Load(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	if s.Blob == nil {
		return nil, domainErrors.ErrNotFound
	}
	return s.Blob, nil
}

func (s *SettingsRepositoryStub) Save(ctx context.Context, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Saves++
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Blob = append([]byte(nil), blob...)
	return nil
}

// SaveCount returns the number of Save calls.
func (s *SettingsRepositoryStub) SaveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Saves
}
