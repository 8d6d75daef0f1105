// Package history computes what the History view shows: the filtered,
// paginated slice of recycle requests plus everything needed to render it.
package history

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"earn-recycle-engine/internal/domain"
)

// DefaultPageSize is the number of rows the History view shows per page.
const DefaultPageSize = 3

// StatusFilter is either FilterAll or one of the domain statuses.
type StatusFilter string

const FilterAll StatusFilter = "all"

// ParseStatusFilter accepts "all", "" (same as all) or a known status.
func ParseStatusFilter(s string) (StatusFilter, bool) {
	switch {
	case s == "" || s == string(FilterAll):
		return FilterAll, true
	case domain.Status(s).Valid():
		return StatusFilter(s), true
	}
	return "", false
}

func (f StatusFilter) accepts(s domain.Status) bool {
	return f == FilterAll || domain.Status(f) == s
}

type Query struct {
	Search   string
	Status   StatusFilter
	Page     int
	PageSize int
}

type Result struct {
	Items      []domain.Request
	Page       int
	PageSize   int
	TotalPages int // ceil(TotalCount/PageSize); 0 when nothing matches
	TotalCount int
	StartIndex int
}

// FilterAndPaginate returns page q.Page of the records matching q. The input
// slice is never modified and Items never aliases it.
//
// Page is not clamped: a page outside 1..TotalPages yields no items, with
// StartIndex pinned to 0 below the range and to TotalCount above it. Callers
// that change Search or Status are responsible for resetting Page.
func FilterAndPaginate(records []domain.Request, q Query) Result {
	if q.PageSize <= 0 {
		q.PageSize = DefaultPageSize
	}
	if q.Status == "" {
		q.Status = FilterAll
	}

	matches := Filter(records, q.Search, q.Status)

	total := len(matches) / q.PageSize
	if len(matches)%q.PageSize != 0 {
		total++
	}
	res := Result{
		Items:      []domain.Request{},
		Page:       q.Page,
		PageSize:   q.PageSize,
		TotalPages: total,
		TotalCount: len(matches),
	}

	// range check before multiplying: (Page-1)*PageSize can overflow
	switch {
	case q.Page < 1:
		return res
	case q.Page > total:
		res.StartIndex = len(matches)
		return res
	}
	res.StartIndex = (q.Page - 1) * q.PageSize
	end := min(res.StartIndex+q.PageSize, len(matches))
	res.Items = append(res.Items, matches[res.StartIndex:end]...)
	return res
}

// Filter returns the match set in input order.
func Filter(records []domain.Request, search string, status StatusFilter) []domain.Request {
	lower := cases.Lower(language.Und)
	needle := lower.String(search)

	out := make([]domain.Request, 0, len(records))
	for _, r := range records {
		if !status.accepts(r.Status) {
			continue
		}
		if needle != "" && !matchesSearch(lower, r, needle) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesSearch(lower cases.Caser, r domain.Request, needle string) bool {
	for _, field := range [...]string{r.RequestName, r.Category, r.Location, r.ID} {
		if strings.Contains(lower.String(field), needle) {
			return true
		}
	}
	return false
}

// DisplayPages is TotalPages with an empty match set shown as one page.
func (r Result) DisplayPages() int {
	return max(r.TotalPages, 1)
}

// ShowingFrom and ShowingTo are the 1-based bounds of the
// "Showing X to Y of Z results" line. Both stay within 0..TotalCount.
func (r Result) ShowingFrom() int { return min(r.StartIndex+1, r.TotalCount) }

func (r Result) ShowingTo() int {
	return r.StartIndex + max(min(r.PageSize, r.TotalCount-r.StartIndex), 0)
}

func (r Result) Empty() bool { return r.TotalCount == 0 }
