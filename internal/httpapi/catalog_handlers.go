package httpapi

import (
	"net/http"

	"earn-recycle-engine/internal/catalog"
	"earn-recycle-engine/internal/events"
)

type CatalogHandler struct {
	Catalog *catalog.Catalog
	Hub     *events.Hub
}

func (h CatalogHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Catalog.Status())
}

// Refresh reloads the catalog synchronously; the pipeline picks the new
// snapshot up on the next request.
func (h CatalogHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if _, err := h.Catalog.Refresh(r.Context()); err != nil {
		WriteError(w, r, http.StatusInternalServerError, CodeInternal, err.Error())
		return
	}
	st := h.Catalog.Status()
	h.Hub.Emit(RequestIDFrom(r.Context()), events.TypeCatalogRefreshed, st)
	writeJSON(w, st)
}
