package model

import "time"

// DashboardState is a point-in-time view of the dashboard.
type DashboardState struct {
	Authenticated   bool
	Profile         Profile
	Banner          string
	Syncing         bool
	NewOrderIDs     []string
	LastSync        time.Time
	OrderCount      int
	MenuCount       int
	PollingInterval int
}
