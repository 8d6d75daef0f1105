package httpapi

import "net/http"

// NewMux returns the raw mux so main() can still attach /shutdown and the
// HTML views.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: HealthHandler{}.Health,
	}))

	// History
	hh := HistoryHandler{Catalog: d.Catalog, CfgVal: d.CfgVal, Now: d.Now}
	mux.HandleFunc("/history", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.List,
	}))
	mux.HandleFunc("/history/status-options", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.StatusOptions,
	}))

	// Tracking
	th := TrackingHandler{Catalog: d.Catalog, CfgVal: d.CfgVal}
	mux.HandleFunc("/tracking", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: th.List,
	}))
	mux.HandleFunc("/tracking/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: th.GetByPath, // expects /tracking/{id}
	}))

	// Centers & categories
	ceh := CentersHandler{Catalog: d.Catalog}
	mux.HandleFunc("/centers", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ceh.List,
	}))
	mux.HandleFunc("/categories", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ceh.Categories,
	}))

	// Dashboard & profile
	sh := StatsHandler{Catalog: d.Catalog, Now: d.Now}
	mux.HandleFunc("/stats", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sh.Get,
	}))
	ph := ProfileHandler{Catalog: d.Catalog}
	mux.HandleFunc("/profile", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ph.Get,
	}))

	// Catalog
	cah := CatalogHandler{Catalog: d.Catalog, Hub: d.Hub}
	mux.HandleFunc("/catalog/status", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: cah.Status,
	}))
	mux.HandleFunc("/catalog/refresh", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: cah.Refresh,
	}))

	// Stubbed user actions
	ah := ActionsHandler{Hub: d.Hub}
	mux.HandleFunc("/recycle", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ah.Stub("submit_request", "category", "weight"),
	}))
	mux.HandleFunc("/history/export", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ah.Stub("export_history"),
	}))
	mux.HandleFunc("/auth/signup", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ah.Stub("signup", "email"),
	}))
	mux.HandleFunc("/auth/forgot-password", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ah.Stub("forgot_password", "email"),
	}))
	mux.HandleFunc("/auth/logout", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ah.Stub("logout"),
	}))
	mux.HandleFunc("/auth/social/", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ah.SocialByPath,
	}))

	// Config
	ch := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
		Hub:         d.Hub,
	}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))
	mux.HandleFunc("/config/validate", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Validate,
	}))

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	// DB maintenance
	dh := DBHandler{DB: d.DB}
	mux.HandleFunc("/db/checkpoint", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: dh.Checkpoint,
	}))

	return mux
}

// Handler wraps mux with the standard middleware stack.
func Handler(mux http.Handler, d Deps) http.Handler {
	return Chain(mux, RequestID, Recover, AccessLog, Cors, RateLimit(d.Limiter))
}
