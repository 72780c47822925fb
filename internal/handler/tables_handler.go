package handlers

import (
	"net/http"
)

type TablesResponse struct {
	CountTables int `json:"countTables"`
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func (h *Handlers) TablesHandler(w http.ResponseWriter, r *http.Request) {
	count, err := h.TablesService.GetCountTablesBD(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, TablesResponse{count}, http.StatusOK)
}
