package history

import "earn-recycle-engine/internal/domain"

type StatusOption struct {
	Value StatusFilter `json:"value"`
	Label string       `json:"label"`
	Count int          `json:"count"`
}

// StatusOptions builds the filter tabs. Counts are over the whole
// collection, not the current search.
func (p Presenter) StatusOptions(records []domain.Request) []StatusOption {
	counts := make(map[domain.Status]int, len(domain.Statuses))
	for _, r := range records {
		counts[r.Status]++
	}

	allLabel := "All Status"
	if l := p.Labels[string(FilterAll)]; l != "" {
		allLabel = l
	}

	out := make([]StatusOption, 0, len(domain.Statuses)+1)
	out = append(out, StatusOption{Value: FilterAll, Label: allLabel, Count: len(records)})
	for _, s := range domain.Statuses {
		out = append(out, StatusOption{
			Value: StatusFilter(s),
			Label: p.Present(s).Label,
			Count: counts[s],
		})
	}
	return out
}
