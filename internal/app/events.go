package app

import (
	"time"

	"github.com/ayusman/mudra/internal/gesture"
)

// EventType identifies what a pipeline event announces.
type EventType string

const (
	// EventRaw is emitted for every processed frame with the frame's raw
	// label. The UI uses it for the stability indicator.
	EventRaw EventType = "raw"
	// EventConfirmed is emitted when a sign is confirmed.
	EventConfirmed EventType = "confirmed"
	// EventState is emitted when session state changes outside the frame
	// loop: tracking toggled, speech muted, sign cleared.
	EventState EventType = "state"
)

// Event is one pipeline notification, pushed to UI clients over the
// websocket hub.
type Event struct {
	Type       EventType       `json:"type"`
	Label      gesture.Label   `json:"label,omitempty"`
	Confirmed  gesture.Label   `json:"confirmed,omitempty"`
	BufferFill int             `json:"buffer_fill"`
	History    []gesture.Label `json:"history,omitempty"`
	Tracking   bool            `json:"tracking"`
	Muted      bool            `json:"muted"`
	Timestamp  int64           `json:"timestamp"`
}

// emit delivers an event to the registered listener, if any.
func (a *App) emit(e Event) {
	a.mu.RLock()
	fn := a.OnEvent
	a.mu.RUnlock()

	if fn != nil {
		e.Timestamp = time.Now().UnixMilli()
		fn(e)
	}
}
