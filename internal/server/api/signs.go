package api

import (
	"net/http"

	"github.com/ayusman/mudra/internal/gesture"
)

// SignsHandler serves the recognizable sign vocabulary.
type SignsHandler struct{}

// NewSignsHandler creates a new SignsHandler.
func NewSignsHandler() *SignsHandler {
	return &SignsHandler{}
}

// ServeHTTP handles GET /api/signs.
func (h *SignsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	vocab := gesture.Vocabulary()
	signs := make([]string, 0, len(vocab))
	for _, l := range vocab {
		signs = append(signs, string(l))
	}

	response := struct {
		Signs []string `json:"signs"`
	}{Signs: signs}

	writeJSON(w, http.StatusOK, response)
}
