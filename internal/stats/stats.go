// Package stats computes the dashboard totals (earnings, recycled items,
// weight) for a time range.
package stats

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"earn-recycle-engine/internal/domain"
)

// Range is one of the period tabs above the dashboard cards.
type Range string

const (
	RangeToday     Range = "today"
	RangeYesterday Range = "yesterday"
	RangeWeek      Range = "7d"
	RangeMonth     Range = "30d"
	RangeHalfYear  Range = "6m"
	RangeAll       Range = "all"
)

var Ranges = []Range{RangeToday, RangeYesterday, RangeWeek, RangeMonth, RangeHalfYear, RangeAll}

const DefaultRange = RangeAll

var rangeLabels = map[Range]string{
	RangeToday:     "Today",
	RangeYesterday: "Yesterday",
	RangeWeek:      "Last 7d",
	RangeMonth:     "Last 30 d",
	RangeHalfYear:  "Last 6m",
	RangeAll:       "All time",
}

func (r Range) Label() string { return rangeLabels[r] }

// ParseRange accepts a range value or its tab label, ignoring case.
// Empty means DefaultRange.
func ParseRange(s string) (Range, bool) {
	lower := cases.Lower(language.Und)
	k := lower.String(strings.TrimSpace(s))
	if k == "" {
		return DefaultRange, true
	}
	for _, r := range Ranges {
		if k == string(r) || k == lower.String(r.Label()) {
			return r, true
		}
	}
	return "", false
}

// Window is the half-open interval [From, To) a range covers at now.
// All time is unbounded.
type Window struct {
	From, To  time.Time
	Unbounded bool
}

func (r Range) Window(now time.Time) Window {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch r {
	case RangeToday:
		return Window{From: midnight, To: midnight.AddDate(0, 0, 1)}
	case RangeYesterday:
		return Window{From: midnight.AddDate(0, 0, -1), To: midnight}
	case RangeWeek:
		return Window{From: now.AddDate(0, 0, -7), To: now}
	case RangeMonth:
		return Window{From: now.AddDate(0, 0, -30), To: now}
	case RangeHalfYear:
		return Window{From: now.AddDate(0, -6, 0), To: now}
	default:
		return Window{Unbounded: true}
	}
}

func (w Window) Contains(t time.Time) bool {
	return w.Unbounded || (!t.Before(w.From) && t.Before(w.To))
}

type Summary struct {
	Range         Range `json:"range"`
	EarningsCents int64 `json:"earningsCents"`
	RecycledItems int   `json:"recycledItems"`
	WeightGrams   int64 `json:"weightGrams"`
}

// Compute totals the requests collected inside r's window. Pending and
// failed requests carry no collection time and so never count; amounts that
// do not parse (estimates) are skipped.
func Compute(records []domain.Request, r Range, now time.Time) Summary {
	w := r.Window(now)
	s := Summary{Range: r}
	for _, rec := range records {
		if rec.Collected == nil || !w.Contains(*rec.Collected) {
			continue
		}
		s.RecycledItems++
		if c, ok := ParseMoney(rec.Earnings); ok {
			s.EarningsCents += c
		}
		if g, ok := ParseWeight(rec.Weight); ok {
			s.WeightGrams += g
		}
	}
	return s
}

// ParseMoney reads "$2.60" as 260 cents.
func ParseMoney(s string) (int64, bool) {
	v, ok := strings.CutPrefix(strings.TrimSpace(s), "$")
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return 0, false
	}
	return int64(math.Round(f * 100)), true
}

// ParseWeight reads "5.2 kg" as 5200 grams.
func ParseWeight(s string) (int64, bool) {
	v, ok := strings.CutSuffix(strings.TrimSpace(s), "kg")
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || f < 0 {
		return 0, false
	}
	return int64(math.Round(f * 1000)), true
}

type Card struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Cards renders the three dashboard cards, e.g. "$13.24", "5", "33.5 kg".
func (s Summary) Cards() []Card {
	return []Card{
		{Name: "Total Earnings", Value: "$" + humanize.FormatFloat("#,###.##", float64(s.EarningsCents)/100)},
		{Name: "Recycled Items", Value: humanize.Comma(int64(s.RecycledItems))},
		{Name: "Total Weight", Value: humanize.CommafWithDigits(float64(s.WeightGrams)/1000, 1) + " kg"},
	}
}
