package gamify

import (
	"encoding/json"
	"net/http"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

// State handles GET /api/gamify/state: the read-only projection.
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	ds, err := h.svc.DisplayState(r.Context())
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "gamification state unavailable")
		return
	}
	writeJSON(w, http.StatusOK, ds)
}

// Session handles POST /api/gamify/session: the session-start event. Calling
// it twice on the same day is harmless.
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	ds, err := h.svc.StartSession(r.Context())
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "session start failed")
		return
	}
	writeJSON(w, http.StatusOK, ds)
}
