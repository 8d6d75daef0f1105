// Package tracking filters the pickup tracking list.
package tracking

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"earn-recycle-engine/internal/domain"
)

// Tab is one of the status tabs above the tracking list.
type Tab string

const (
	TabOnTheWay  Tab = "On the way"
	TabCollected Tab = "Collected"
	TabProcessed Tab = "Processed"
)

var Tabs = []Tab{TabOnTheWay, TabCollected, TabProcessed}

const DefaultTab = TabOnTheWay

// ParseTab accepts the tab label or its slug ("on-the-way", "collected",
// "processed"), case-insensitively. Empty means DefaultTab.
func ParseTab(s string) (Tab, bool) {
	lower := cases.Lower(language.Und)
	k := lower.String(strings.TrimSpace(s))
	k = strings.ReplaceAll(k, "-", " ")
	if k == "" {
		return DefaultTab, true
	}
	for _, t := range Tabs {
		if lower.String(string(t)) == k {
			return t, true
		}
	}
	return "", false
}

// Matches reports whether item belongs under tab. Processed shows every item.
func (t Tab) Matches(item domain.TrackingItem) bool {
	switch t {
	case TabOnTheWay:
		return item.StatusType != domain.StatusTypeCompleted
	case TabCollected:
		return item.StatusType == domain.StatusTypeCompleted
	default:
		return true
	}
}

// Filter keeps items under tab whose route or order id contains search,
// ignoring case. Input order is preserved and items is not modified.
func Filter(items []domain.TrackingItem, tab Tab, search string) []domain.TrackingItem {
	lower := cases.Lower(language.Und)
	needle := lower.String(search)

	out := make([]domain.TrackingItem, 0, len(items))
	for _, it := range items {
		if !tab.Matches(it) {
			continue
		}
		if !strings.Contains(lower.String(it.Route), needle) &&
			!strings.Contains(lower.String(it.OrderID), needle) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// BadgeColor returns the badge classes for a status type.
func BadgeColor(st domain.StatusType) string {
	switch st {
	case domain.StatusTypeProgress:
		return "bg-blue-100 text-blue-800 border-blue-200"
	case domain.StatusTypeActive:
		return "bg-green-100 text-green-800 border-green-200"
	default:
		return "bg-gray-100 text-gray-800 border-gray-200"
	}
}

// Find returns the item with the given id.
func Find(items []domain.TrackingItem, id int64) (domain.TrackingItem, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return domain.TrackingItem{}, false
}
