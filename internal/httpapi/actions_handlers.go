package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"sort"
	"strings"

	"earn-recycle-engine/internal/events"
)

// ActionsHandler acknowledges user actions that have no backend yet
// (submit, export, sign-up, password reset, logout). Nothing is stored.
type ActionsHandler struct {
	Hub *events.Hub
}

// Stub returns a handler for action that requires the given JSON fields.
func (h ActionsHandler) Stub(action string, required ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := map[string]any{}
		err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(&body)
		if err != nil && !errors.Is(err, io.EOF) {
			WriteError(w, r, http.StatusBadRequest, CodeBadRequest, "invalid JSON: "+err.Error())
			return
		}

		for _, f := range required {
			if isBlank(body[f]) {
				WriteError(w, r, http.StatusBadRequest, CodeBadRequest, f+" is required")
				return
			}
		}

		h.ack(w, r, action, body)
	}
}

// SocialByPath expects /auth/social/{provider}.
func (h ActionsHandler) SocialByPath(w http.ResponseWriter, r *http.Request) {
	provider := strings.ToLower(strings.Trim(strings.TrimPrefix(r.URL.Path, "/auth/social/"), "/"))
	if provider == "" || strings.Contains(provider, "/") {
		WriteError(w, r, http.StatusBadRequest, CodeBadRequest, "missing provider")
		return
	}
	h.ack(w, r, "signup_"+provider, nil)
}

func (h ActionsHandler) ack(w http.ResponseWriter, r *http.Request, action string, body map[string]any) {
	// field names only: bodies can carry passwords
	fields := make([]string, 0, len(body))
	for k := range body {
		fields = append(fields, k)
	}
	sort.Strings(fields)

	reqID := RequestIDFrom(r.Context())
	log.Printf("level=info msg=\"action stubbed\" request_id=%s action=%s fields=%v", reqID, action, fields)
	h.Hub.Emit(reqID, events.TypeActionStubbed, ActionStubbed{Action: action, Fields: fields})

	WriteJSON(w, http.StatusAccepted, ActionResponse{OK: true, Action: action, RequestID: reqID})
}

func isBlank(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	}
	return false
}
