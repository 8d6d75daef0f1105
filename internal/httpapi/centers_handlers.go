package httpapi

import (
	"net/http"
	"strings"

	"earn-recycle-engine/internal/catalog"
	"earn-recycle-engine/internal/domain"
)

type CentersHandler struct {
	Catalog *catalog.Catalog
}

// List returns recycling centers, optionally only those accepting ?material=.
func (h CentersHandler) List(w http.ResponseWriter, r *http.Request) {
	snap, err := h.Catalog.Snapshot()
	if err != nil {
		WriteError(w, r, http.StatusServiceUnavailable, CodeCatalogUnavailable, err.Error())
		return
	}

	material := strings.TrimSpace(r.URL.Query().Get("material"))
	out := make([]domain.Center, 0, len(snap.Centers))
	for _, c := range snap.Centers {
		if material == "" || accepts(c, material) {
			out = append(out, c)
		}
	}
	writeJSON(w, out)
}

func accepts(c domain.Center, material string) bool {
	for _, m := range c.Materials {
		if strings.EqualFold(m, material) {
			return true
		}
	}
	return false
}

func (h CentersHandler) Categories(w http.ResponseWriter, r *http.Request) {
	snap, err := h.Catalog.Snapshot()
	if err != nil {
		WriteError(w, r, http.StatusServiceUnavailable, CodeCatalogUnavailable, err.Error())
		return
	}
	writeJSON(w, snap.Categories)
}
