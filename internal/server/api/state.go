// Package api provides the HTTP API handlers for the Mudra sign
// recognition system.
package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ayusman/mudra/internal/gesture"
)

// Controller is the slice of the application the state API drives.
type Controller interface {
	TrackingEnabled() bool
	SetTrackingEnabled(enabled bool)
	Muted() bool
	SetMuted(muted bool)
	ClearSign()
	Recognizer() *gesture.Recognizer
	SessionID() string
	Frames() int
}

// StateHandler exposes the live recognition state and its toggles.
type StateHandler struct {
	ctrl Controller
}

// NewStateHandler creates a new StateHandler driving the given controller.
func NewStateHandler(ctrl Controller) *StateHandler {
	return &StateHandler{ctrl: ctrl}
}

// ServeHTTP implements the http.Handler interface and routes requests to appropriate methods.
func (h *StateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Expected paths: /api/state, /api/state/clear, /api/state/tracking,
	// /api/state/mute
	path := strings.TrimPrefix(r.URL.Path, "/api/state")
	path = strings.TrimPrefix(path, "/")

	switch path {
	case "":
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.get(w, r)
	case "clear":
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.clear(w, r)
	case "tracking":
		if r.Method != http.MethodPut {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.setTracking(w, r)
	case "mute":
		if r.Method != http.MethodPut {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.setMute(w, r)
	default:
		writeError(w, http.StatusNotFound, "Not found")
	}
}

// Request and response types

type setTrackingRequest struct {
	Enabled *bool `json:"enabled"`
}

type setMuteRequest struct {
	Muted *bool `json:"muted"`
}

type stateResponse struct {
	Confirmed  string   `json:"confirmed"`
	BufferFill int      `json:"buffer_fill"`
	History    []string `json:"history"`
	Tracking   bool     `json:"tracking"`
	Muted      bool     `json:"muted"`
	SessionID  string   `json:"session_id"`
	Frames     int      `json:"frames"`
}

func (h *StateHandler) state() stateResponse {
	rec := h.ctrl.Recognizer()

	history := rec.History()
	labels := make([]string, 0, len(history))
	for _, l := range history {
		labels = append(labels, string(l))
	}

	return stateResponse{
		Confirmed:  string(rec.Confirmed()),
		BufferFill: rec.BufferFill(),
		History:    labels,
		Tracking:   h.ctrl.TrackingEnabled(),
		Muted:      h.ctrl.Muted(),
		SessionID:  h.ctrl.SessionID(),
		Frames:     h.ctrl.Frames(),
	}
}

// get handles GET /api/state and returns the live recognition state.
func (h *StateHandler) get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.state())
}

// clear handles POST /api/state/clear and forgets the confirmed sign.
func (h *StateHandler) clear(w http.ResponseWriter, r *http.Request) {
	h.ctrl.ClearSign()
	writeJSON(w, http.StatusOK, h.state())
}

// setTracking handles PUT /api/state/tracking and toggles recognition.
func (h *StateHandler) setTracking(w http.ResponseWriter, r *http.Request) {
	var req setTrackingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Enabled == nil {
		writeError(w, http.StatusBadRequest, "enabled is required")
		return
	}

	h.ctrl.SetTrackingEnabled(*req.Enabled)
	writeJSON(w, http.StatusOK, h.state())
}

// setMute handles PUT /api/state/mute and toggles speech announcements.
func (h *StateHandler) setMute(w http.ResponseWriter, r *http.Request) {
	var req setMuteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Muted == nil {
		writeError(w, http.StatusBadRequest, "muted is required")
		return
	}

	h.ctrl.SetMuted(*req.Muted)
	writeJSON(w, http.StatusOK, h.state())
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
