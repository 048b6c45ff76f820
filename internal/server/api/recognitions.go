package api

import (
	"net/http"
	"strconv"

	"github.com/ayusman/mudra/internal/store"
)

// defaultRecentLimit caps GET /api/recognitions when no limit is given.
const defaultRecentLimit = 20

// RecognitionsHandler serves the most recently confirmed signs across all
// sessions.
type RecognitionsHandler struct {
	store *store.Store
}

// NewRecognitionsHandler creates a new RecognitionsHandler with the given store.
func NewRecognitionsHandler(s *store.Store) *RecognitionsHandler {
	return &RecognitionsHandler{store: s}
}

// ServeHTTP handles GET /api/recognitions?limit=N.
func (h *RecognitionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := defaultRecentLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	recs, err := h.store.Recognitions().Recent(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list recognitions")
		return
	}

	response := struct {
		Signs []signResponse `json:"signs"`
	}{
		Signs: make([]signResponse, 0, len(recs)),
	}
	for _, rec := range recs {
		response.Signs = append(response.Signs, toSignResponse(rec))
	}

	writeJSON(w, http.StatusOK, response)
}
