package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"earn-recycle-engine/internal/catalog"
	"earn-recycle-engine/internal/stats"
)

type StatsHandler struct {
	Catalog *catalog.Catalog
	Now     func() time.Time
}

// Get serves GET /stats?range=, computed from the current request snapshot.
func (h StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	param := r.URL.Query().Get("range")
	rng, ok := stats.ParseRange(param)
	if !ok {
		WriteError(w, r, http.StatusBadRequest, CodeBadRequest, "unknown range "+strconv.Quote(param))
		return
	}

	snap, err := h.Catalog.Snapshot()
	if err != nil {
		WriteError(w, r, http.StatusServiceUnavailable, CodeCatalogUnavailable, err.Error())
		return
	}

	now := time.Now
	if h.Now != nil {
		now = h.Now
	}

	sum := stats.Compute(snap.Requests, rng, now())
	resp := StatsResponse{
		Range:  rng,
		Ranges: make([]RangeOption, 0, len(stats.Ranges)),
		Cards:  sum.Cards(),
		Totals: sum,
	}
	for _, rr := range stats.Ranges {
		resp.Ranges = append(resp.Ranges, RangeOption{Value: rr, Label: rr.Label()})
	}
	writeJSON(w, resp)
}
