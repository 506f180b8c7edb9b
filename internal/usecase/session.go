package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
)

const loginStateTTL = 10 * time.Minute

// IdentityProvider runs the OAuth authorization code flow.
type IdentityProvider interface {
	AuthCodeURL(state string) (string, error)
	Exchange(ctx context.Context, code string) (string, error)
	Profile(ctx context.Context, token string) (*model.Profile, error)
}

// SessionStore holds the active staff session.
type SessionStore interface {
	Begin(token string, profile model.Profile) model.Session
	Clear() bool
	End(id string) bool
	Current() (model.Session, bool)
}

// SessionUseCase handles login and logout.
type SessionUseCase struct {
	identity IdentityProvider
	store    SessionStore
	logger   *slog.Logger

	mu     sync.Mutex
	states map[string]time.Time
	now    func() time.Time
}

// NewSessionUseCase constructs SessionUseCase.
func NewSessionUseCase(identity IdentityProvider, store SessionStore, logger *slog.Logger) *SessionUseCase {
	return &SessionUseCase{
		identity: identity,
		store:    store,
		logger:   logger,
		states:   make(map[string]time.Time),
		now:      time.Now,
	}
}

// BeginLogin issues a one-time state and returns the consent page URL.
func (u *SessionUseCase) BeginLogin() (string, error) {
	state := uuid.NewString()
	url, err := u.identity.AuthCodeURL(state)
	if err != nil {
		return "", err
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	now := u.now()
	for s, issued := range u.states {
		if now.Sub(issued) > loginStateTTL {
			delete(u.states, s)
		}
	}
	u.states[state] = now
	return url, nil
}

// CompleteLogin consumes state and exchanges code for a session.
func (u *SessionUseCase) CompleteLogin(ctx context.Context, state, code string) (model.Session, error) {
	if !u.consumeState(state) {
		return model.Session{}, domainErrors.ErrInvalidState
	}
	token, err := u.identity.Exchange(ctx, code)
	if err != nil {
		return model.Session{}, err
	}
	return u.AttachToken(ctx, token)
}

// AttachToken loads the profile for token and starts a session.
//
// When the profile call fails for any reason other than 401 the session is
// still started with an empty profile, and the returned error is a
// *ProfileFetchError alongside the valid session.
func (u *SessionUseCase) AttachToken(ctx context.Context, token string) (model.Session, error) {
	if token == "" {
		return model.Session{}, domainErrors.ErrUnauthorized
	}

	profile, err := u.identity.Profile(ctx, token)
	if err != nil {
		var pe *domainErrors.ProfileFetchError
		if errors.As(err, &pe) {
			u.logger.Warn("profile load failed, continuing without profile", slog.Any("error", err))
			return u.store.Begin(token, model.Profile{}), err
		}
		return model.Session{}, err
	}

	sess := u.store.Begin(token, *profile)
	u.logger.Info("session started", slog.String("email", profile.Email))
	return sess, nil
}

// Current returns the active session.
func (u *SessionUseCase) Current() (model.Session, bool) {
	return u.store.Current()
}

// Logout clears the session. It reports whether one was active.
func (u *SessionUseCase) Logout() bool {
	return u.store.Clear()
}

// End clears the session only while id is still the active one.
func (u *SessionUseCase) End(id string) bool {
	return u.store.End(id)
}

func (u *SessionUseCase) consumeState(state string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	issued, ok := u.states[state]
	if !ok {
		return false
	}
	delete(u.states, state)
	return u.now().Sub(issued) <= loginStateTTL
}
