package dto

import "time"

// StateResponse summarises the dashboard for polling clients.
type StateResponse struct {
	Authenticated   bool             `json:"authenticated"`
	Profile         *SessionResponse `json:"profile,omitempty"`
	Banner          string           `json:"banner,omitempty"`
	Syncing         bool             `json:"syncing"`
	NewOrderIDs     []string         `json:"newOrderIds"`
	LastSync        *time.Time       `json:"lastSync,omitempty"`
	OrderCount      int              `json:"orderCount"`
	MenuCount       int              `json:"menuCount"`
	PollingInterval int              `json:"pollingInterval"`
}

// ErrorResponse is returned with every non-2xx JSON reply.
type ErrorResponse struct {
	Error string `json:"error"`
}
