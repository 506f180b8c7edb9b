package dto

import "time"

// TokenRequest carries a bearer token obtained by the browser SDK.
type TokenRequest struct {
	AccessToken string `json:"access_token" binding:"required"`
}

// SessionResponse describes the signed-in staff member.
type SessionResponse struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Picture   string    `json:"picture,omitempty"`
	StartedAt time.Time `json:"startedAt"`
}
