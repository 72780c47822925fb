package handlers

import (
	"net/http"

	"millage/internal/models"
	"millage/internal/session"
)

type SessionResponse struct {
	Result  string              `json:"result"`
	Session *models.CurrentUser `json:"session,omitempty"`
}

// GetSession echoes the session user of the request, if any.
func (h *Handlers) GetSession(w http.ResponseWriter, r *http.Request) {
	user := session.FromContext(r.Context())
	if user == nil {
		writeJSON(w, SessionResponse{Result: "fail"}, http.StatusOK)
		return
	}

	writeJSON(w, SessionResponse{Result: "success", Session: user}, http.StatusOK)
}
