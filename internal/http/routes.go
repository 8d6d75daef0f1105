package http

import (
	"net/http"

	"earn-recycle-engine/internal/http/handlers"
)

// Mount adds the HTML views to mux.
func Mount(mux *http.ServeMux, h handlers.Handlers) {
	mux.HandleFunc("/view/history", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "GET only", http.StatusMethodNotAllowed)
			return
		}
		h.History(w, r)
	})
}
