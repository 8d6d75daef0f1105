package events

import (
	"encoding/json"
	"time"
)

// Event types streamed to the UI.
const (
	TypePing             = "ping"
	TypeCatalogRefreshed = "catalog_refreshed"
	TypeConfigUpdated    = "config_updated"
	TypeActionStubbed    = "action_stubbed"
)

type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// MakeEvent encodes an event envelope ready to write as SSE data.
func MakeEvent(reqID, typ string, v int, data any) string {
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	e := Event{
		Type:      typ,
		Version:   v,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}
