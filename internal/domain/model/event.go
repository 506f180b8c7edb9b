package model

// VibrationPattern is the on/off pattern in milliseconds used for new order alerts.
var VibrationPattern = []int{300, 100, 300}

// NewOrdersEvent is raised once per sync tick when orders newer than the watermark arrive.
type NewOrdersEvent struct {
	OrderIDs  []string
	Watermark string
	Sound     bool
	Vibrate   bool
}
