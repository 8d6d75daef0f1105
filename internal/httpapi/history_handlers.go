package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"earn-recycle-engine/internal/catalog"
	"earn-recycle-engine/internal/history"
)

type HistoryHandler struct {
	Catalog *catalog.Catalog
	CfgVal  *atomic.Value // stores config.Config
	Now     func() time.Time
}

// ParseHistoryQuery reads q, status and page from the query string. The page
// is passed through as requested; only malformed values are rejected.
func ParseHistoryQuery(r *http.Request, pageSize int) (history.Query, error) {
	q := r.URL.Query()

	status, ok := history.ParseStatusFilter(q.Get("status"))
	if !ok {
		return history.Query{}, errors.New("status must be one of all, completed, processing, pending, failed")
	}

	page := 1
	if s := q.Get("page"); s != "" {
		p, err := strconv.Atoi(s)
		if err != nil || p < 1 {
			return history.Query{}, errors.New("page must be a positive integer")
		}
		page = p
	}

	return history.Query{
		Search:   q.Get("q"),
		Status:   status,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (h HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	cfg := currentConfig(h.CfgVal)

	query, err := ParseHistoryQuery(r, cfg.History.PageSize)
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, CodeBadRequest, err.Error())
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

	presenter := history.Presenter{Labels: cfg.Labels}
	res := history.FilterAndPaginate(snap.Requests, query)
	writeJSON(w, presenter.BuildView(query, res, now()))
}

func (h HistoryHandler) StatusOptions(w http.ResponseWriter, r *http.Request) {
	snap, err := h.Catalog.Snapshot()
	if err != nil {
		WriteError(w, r, http.StatusServiceUnavailable, CodeCatalogUnavailable, err.Error())
		return
	}
	cfg := currentConfig(h.CfgVal)
	writeJSON(w, StatusOptionsResponse{
		Options: history.Presenter{Labels: cfg.Labels}.StatusOptions(snap.Requests),
	})
}
