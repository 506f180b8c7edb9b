package test

import (
	"context"
	"sync"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// DashboardStub provides controllable behaviour for HTTP handlers.
// Zero value answers every call with a small canned dashboard.
type DashboardStub struct {
	BeginLoginFn    func() (string, error)
	CompleteLoginFn func(context.Context, string, string) (model.Session, error)
	AttachTokenFn   func(context.Context, string) (model.Session, error)
	OrderFn         func(string) (model.Order, error)
	UpdateStatusFn  func(context.Context, string, model.OrderStatus) (model.Order, error)
	AdvanceFn       func(context.Context, string) (model.Order, error)
	UpdateMenuFn    func(context.Context, string, string, bool) (model.MenuItem, error)
	UpdateSettingFn func(context.Context, model.SettingsPatch) (model.Settings, error)
	SyncFn          func(context.Context) error

	OrderList []model.Order
	MenuItems []model.MenuItem
	NewIDs    []string
	Current   *model.Session
	Config    model.Settings

	mu        sync.Mutex
	loggedOut int
	acked     []string
}

// DefaultSession is returned by login stubs unless overridden.
func DefaultSession() model.Session {
	return model.Session{
		ID:          "session-1",
		AccessToken: "access-1",
		Profile:     model.Profile{Email: "staff@example.com", Name: "Staff"},
	}
}

func (s *DashboardStub) BeginLogin() (string, error) {
	if s.BeginLoginFn != nil {
		return s.BeginLoginFn()
	}
	return "https://accounts.example.com/o/oauth2/auth?state=state-1", nil
}

func (s *DashboardStub) CompleteLogin(ctx context.Context, state, code string) (model.Session, error) {
	if s.CompleteLoginFn != nil {
		return s.CompleteLoginFn(ctx, state, code)
	}
	return DefaultSession(), nil
}

func (s *DashboardStub) AttachToken(ctx context.Context, token string) (model.Session, error) {
	if s.AttachTokenFn != nil {
		return s.AttachTokenFn(ctx, token)
	}
	return DefaultSession(), nil
}

func (s *DashboardStub) Session() (model.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Current == nil {
		return model.Session{}, false
	}
	return *s.Current, true
}

func (s *DashboardStub) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggedOut++
	s.Current = nil
}

// LogoutCount reports how many times Logout ran.
func (s *DashboardStub) LogoutCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loggedOut
}

func (s *DashboardStub) Orders() []model.Order {
	return s.OrderList
}

func (s *DashboardStub) Order(id string) (model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(id)
	}
	for _, o := range s.OrderList {
		if o.ID == id {
			return o, nil
		}
	}
	return model.Order{}, domainErrors.ErrNotFound
}

func (s *DashboardStub) IsNew(id string) bool {
	for _, v := range s.NewIDs {
		if v == id {
			return true
		}
	}
	return false
}

func (s *DashboardStub) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status)
	}
	return model.Order{ID: id, Status: status}, nil
}

func (s *DashboardStub) AdvanceOrder(ctx context.Context, id string) (model.Order, error) {
	if s.AdvanceFn != nil {
		return s.AdvanceFn(ctx, id)
	}
	return model.Order{ID: id, Status: model.OrderStatusAccepted}, nil
}

func (s *DashboardStub) AcknowledgeOrder(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.acked = append(s.acked, id)
	return true
}

// Acknowledged lists ids passed to AcknowledgeOrder.
func (s *DashboardStub) Acknowledged() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.acked...)
}

func (s *DashboardStub) Menu() []model.MenuItem {
	return s.MenuItems
}

func (s *DashboardStub) UpdateMenuItem(ctx context.Context, id, price string, available bool) (model.MenuItem, error) {
	if s.UpdateMenuFn != nil {
		return s.UpdateMenuFn(ctx, id, price, available)
	}
	return model.MenuItem{ID: id, Price: price, Available: available}, nil
}

func (s *DashboardStub) Settings() model.Settings {
	return s.Config
}

func (s *DashboardStub) UpdateSettings(ctx context.Context, patch model.SettingsPatch) (model.Settings, error) {
	if s.UpdateSettingFn != nil {
		return s.UpdateSettingFn(ctx, patch)
	}
	s.Config = patch.Apply(s.Config)
	return s.Config, nil
}

func (s *DashboardStub) State() model.DashboardState {
	sess, ok := s.Session()
	return model.DashboardState{
		Authenticated:   ok,
		Profile:         sess.Profile,
		NewOrderIDs:     s.NewIDs,
		OrderCount:      len(s.OrderList),
		MenuCount:       len(s.MenuItems),
		PollingInterval: s.Config.PollingInterval,
	}
}

func (s *DashboardStub) Sync(ctx context.Context) error {
	if s.SyncFn != nil {
		return s.SyncFn(ctx)
	}
	return nil
}
