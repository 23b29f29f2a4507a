package types

import "time"

var (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Mail is a single message record exchanged between two directory users.
// It is meant to be stored as part of the collection blob.
type Mail struct {
	ID        string    `json:"id" validate:"required"`      // unique identifier, <unix-millis>-<random suffix>, immutable
	From      string    `json:"from" validate:"required"`    // sender username, directory member at send time
	To        string    `json:"to" validate:"required"`      // recipient username, directory member at send time
	Subject   string    `json:"subject" validate:"required"` // non-empty
	Message   string    `json:"message" validate:"required"` // non-empty, no length limit
	Priority  string    `json:"priority"`                    // one of low, normal, high, urgent
	Timestamp time.Time `json:"timestamp"`                   // creation time, set server-side, immutable
	IsRead    bool      `json:"isRead"`                      // false at creation, set once by mark-as-read
}

// NormalizePriority maps empty or unrecognized priority values to normal.
func NormalizePriority(priority string) string {
	switch priority {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return priority
	}
	return PriorityNormal
}
