package httpapi

import (
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"

	"earn-recycle-engine/internal/catalog"
	"earn-recycle-engine/internal/tracking"
)

type TrackingHandler struct {
	Catalog *catalog.Catalog
	CfgVal  *atomic.Value // stores config.Config
}

func (h TrackingHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	tabParam := q.Get("tab")
	if tabParam == "" {
		tabParam = currentConfig(h.CfgVal).Tracking.DefaultTab
	}
	tab, ok := tracking.ParseTab(tabParam)
	if !ok {
		WriteError(w, r, http.StatusBadRequest, CodeBadRequest, "unknown tab "+strconv.Quote(tabParam))
		return
	}

	snap, err := h.Catalog.Snapshot()
	if err != nil {
		WriteError(w, r, http.StatusServiceUnavailable, CodeCatalogUnavailable, err.Error())
		return
	}

	items := tracking.Filter(snap.Tracking, tab, q.Get("q"))
	resp := TrackingResponse{
		Tab:   tab,
		Tabs:  tracking.Tabs,
		Query: q.Get("q"),
		Items: make([]TrackingRow, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, TrackingRow{TrackingItem: it, Badge: tracking.BadgeColor(it.StatusType)})
	}
	writeJSON(w, resp)
}

// GetByPath expects /tracking/{id}.
func (h TrackingHandler) GetByPath(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/tracking/")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		WriteError(w, r, http.StatusBadRequest, CodeBadRequest, "invalid id")
		return
	}

	snap, err := h.Catalog.Snapshot()
	if err != nil {
		WriteError(w, r, http.StatusServiceUnavailable, CodeCatalogUnavailable, err.Error())
		return
	}

	it, ok := tracking.Find(snap.Tracking, id)
	if !ok {
		WriteError(w, r, http.StatusNotFound, CodeNotFound, "tracking item not found")
		return
	}
	writeJSON(w, TrackingRow{TrackingItem: it, Badge: tracking.BadgeColor(it.StatusType)})
}
