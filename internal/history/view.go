package history

import (
	"time"

	"earn-recycle-engine/internal/domain"
)

// Row is a request decorated with everything the table cell needs.
type Row struct {
	domain.Request
	StatusDisplay    Presentation `json:"statusDisplay"`
	SubmittedDisplay string       `json:"submittedDisplay"`
	SubmittedAgo     string       `json:"submittedAgo"`
	CollectedDisplay string       `json:"collectedDisplay"`
	CollectedAgo     string       `json:"collectedAgo,omitempty"`
}

type View struct {
	Search       string       `json:"search"`
	Status       StatusFilter `json:"status"`
	Rows         []Row        `json:"items"`
	Page         int          `json:"page"`
	PageSize     int          `json:"pageSize"`
	TotalPages   int          `json:"totalPages"`
	DisplayPages int          `json:"displayPages"`
	TotalCount   int          `json:"totalCount"`
	StartIndex   int          `json:"startIndex"`
	ShowingFrom  int          `json:"showingFrom"`
	ShowingTo    int          `json:"showingTo"`
	PageWindow   []int        `json:"pageWindow"`
	ShowPager    bool         `json:"showPager"`
	ShowingAll   bool         `json:"showingAll"`
	Empty        *EmptyState  `json:"empty,omitempty"`
}

func (p Presenter) BuildView(q Query, res Result, now time.Time) View {
	v := View{
		Search:       q.Search,
		Status:       q.Status,
		Rows:         make([]Row, 0, len(res.Items)),
		Page:         res.Page,
		PageSize:     res.PageSize,
		TotalPages:   res.TotalPages,
		DisplayPages: res.DisplayPages(),
		TotalCount:   res.TotalCount,
		StartIndex:   res.StartIndex,
		ShowingFrom:  res.ShowingFrom(),
		ShowingTo:    res.ShowingTo(),
		PageWindow:   PageWindow(res.Page, res.TotalPages),
		ShowPager:    res.TotalPages > 1,
		ShowingAll:   res.TotalPages == 1 && res.TotalCount > 0,
	}
	if v.Status == "" {
		v.Status = FilterAll
	}
	if res.Empty() {
		es := EmptyStateFor(q.Search)
		v.Empty = &es
	}

	for _, r := range res.Items {
		row := Row{
			Request:          r,
			StatusDisplay:    p.Present(r.Status),
			SubmittedDisplay: FormatDateTime(&r.Submitted),
			SubmittedAgo:     TimeAgo(r.Submitted, now),
			CollectedDisplay: FormatDateTime(r.Collected),
		}
		if r.Collected != nil {
			row.CollectedAgo = TimeAgo(*r.Collected, now)
		}
		v.Rows = append(v.Rows, row)
	}
	return v
}
