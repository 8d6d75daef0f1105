package httpapi

import (
	"earn-recycle-engine/internal/domain"
	"earn-recycle-engine/internal/history"
	"earn-recycle-engine/internal/stats"
	"earn-recycle-engine/internal/tracking"
)

type StatusOptionsResponse struct {
	Options []history.StatusOption `json:"options"`
}

type TrackingRow struct {
	domain.TrackingItem
	Badge string `json:"badge"`
}

type TrackingResponse struct {
	Tab   tracking.Tab   `json:"tab"`
	Tabs  []tracking.Tab `json:"tabs"`
	Query string         `json:"query"`
	Items []TrackingRow  `json:"items"`
}

type ActionResponse struct {
	OK        bool   `json:"ok"`
	Action    string `json:"action"`
	RequestID string `json:"request_id,omitempty"`
}

type ActionStubbed struct {
	Action string   `json:"action"`
	Fields []string `json:"fields"`
}

type RangeOption struct {
	Value stats.Range `json:"value"`
	Label string      `json:"label"`
}

type StatsResponse struct {
	Range  stats.Range   `json:"range"`
	Ranges []RangeOption `json:"ranges"`
	Cards  []stats.Card  `json:"stats"`
	Totals stats.Summary `json:"totals"`
}

type ProfileField struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

type PaymentMethodRow struct {
	domain.PaymentMethod
	Display string `json:"display"`
}

// ProfileSection is one tab of the profile page; exactly one of the
// slices is set.
type ProfileSection struct {
	ID       string                  `json:"id"`
	Title    string                  `json:"title"`
	Fields   []ProfileField          `json:"fields,omitempty"`
	Settings []domain.Setting        `json:"settings,omitempty"`
	Methods  []PaymentMethodRow      `json:"methods,omitempty"`
	Options  []domain.SecurityOption `json:"options,omitempty"`
}

type ProfileResponse struct {
	Sections []ProfileSection `json:"sections"`
}
