package domain

import "time"

// Status is the lifecycle stage of a recycle request.
type Status string

const (
	StatusCompleted  Status = "completed"
	StatusProcessing Status = "processing"
	StatusPending    Status = "pending"
	StatusFailed     Status = "failed"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusCompleted, StatusProcessing, StatusPending, StatusFailed}

func (s Status) Valid() bool {
	switch s {
	case StatusCompleted, StatusProcessing, StatusPending, StatusFailed:
		return true
	}
	return false
}

// Request is one recycling pickup entry. Collected is nil until the items
// have been picked up (always nil for pending and failed requests).
type Request struct {
	ID              string     `json:"id"`
	RequestName     string     `json:"requestName"`
	Category        string     `json:"category"`
	Status          Status     `json:"status"`
	Submitted       time.Time  `json:"submitted"`
	Collected       *time.Time `json:"collected"`
	Duration        string     `json:"duration"`
	Weight          string     `json:"weight"`
	Earnings        string     `json:"earnings"`
	Location        string     `json:"location"`
	RecyclingCenter string     `json:"recyclingCenter"`
	FailureReason   string     `json:"failureReason,omitempty"`
}
