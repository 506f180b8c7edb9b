package test

import (
	"context"
	"net/url"
	"sync"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	pkgAuth "github.com/polkiloo/orderdesk/internal/pkg/auth"
)

// IdentityStub fakes the OAuth provider.
type IdentityStub struct {
	AuthErr     error
	ExchangeErr error
	User        *model.Profile
	ProfileErr  error
}

// AuthCodeURL returns a consent URL echoing state.
func (s *IdentityStub) AuthCodeURL(state string) (string, error) {
	if s.AuthErr != nil {
		return "", s.AuthErr
	}
	return "https://accounts.example.com/o/oauth2/auth?state=" + url.QueryEscape(state), nil
}

// Exchange derives a token from code.
func (s *IdentityStub) Exchange(ctx context.Context, code string) (string, error) {
	if s.ExchangeErr != nil {
		return "", s.ExchangeErr
	}
	return "token-" + code, nil
}

// Profile returns User or ProfileErr.
func (s *IdentityStub) Profile(ctx context.Context, token string) (*model.Profile, error) {
	if s.ProfileErr != nil {
		return nil, s.ProfileErr
	}
	if s.User == nil {
		return &model.Profile{Email: "staff@example.com", Name: "Staff"}, nil
	}
	p := *s.User
	return &p, nil
}

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn func(string) (string, error)
	ParseFn func(string) (string, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(subject string) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(subject)
	}
	return "token:" + subject, nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if len(token) > len("token:") && token[:len("token:")] == "token:" {
		return token[len("token:"):], nil
	}
	return "", pkgAuth.ErrInvalidToken
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// NotifierStub records delivered alerts.
type NotifierStub struct {
	mu     sync.Mutex
	Events []model.NewOrdersEvent
	Err    error
}

func (n *NotifierStub) Notify(ctx context.Context, event model.NewOrdersEvent) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Events = append(n.Events, event)
	return n.Err
}

// Count returns the number of delivered alerts.
func (n *NotifierStub) Count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.Events)
}

var _ pkgAuth.Strategy = StrategyStub{}
