package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrNoSession      = errors.New("no active session")
	ErrNotConfigured  = errors.New("not configured")
	ErrInvalidStatus  = errors.New("invalid order status")
	ErrInvalidPrice   = errors.New("invalid price")
	ErrSyncInProgress = errors.New("sync already in progress")
	ErrInvalidState   = errors.New("invalid login state")
)

// FetchError reports a failed spreadsheet call, either a transport failure or a non-2xx response.
type FetchError struct {
	Range      string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("sheets %s: status %d", e.Range, e.StatusCode)
	}
	return fmt.Sprintf("sheets %s: %v", e.Range, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is makes a 401 response match ErrUnauthorized.
func (e *FetchError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

// ProfileFetchError means a token was obtained but the profile could not be loaded.
type ProfileFetchError struct {
	StatusCode int
	Err        error
}

func (e *ProfileFetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("profile fetch: status %d", e.StatusCode)
	}
	return fmt.Sprintf("profile fetch: %v", e.Err)
}

func (e *ProfileFetchError) Unwrap() error { return e.Err }
