package model

import "time"

// Profile holds identity details returned by the userinfo endpoint.
type Profile struct {
	Email   string
	Name    string
	Picture string
}

// Session is the authenticated staff session. It lives in memory only.
type Session struct {
	ID          string
	AccessToken string
	Profile     Profile
	StartedAt   time.Time
}
