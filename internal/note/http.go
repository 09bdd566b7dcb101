package note

import (
	"encoding/json"
	"net/http"
	"strings"
)

type Handler struct {
	repo Repo
}

func NewHandler(repo Repo) *Handler {
	return &Handler{repo: repo}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

// /api/notes  (collection)
func (h *Handler) NotesRoot(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		ns, err := h.repo.List()
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		writeJSON(w, 200, ns)
		return

	case http.MethodPost:
		var in struct {
			Title  string `json:"title"`
			Body   string `json:"body"`
			Pinned bool   `json:"pinned"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeErr(w, 400, "bad json")
			return
		}
		if strings.TrimSpace(in.Title) == "" && strings.TrimSpace(in.Body) == "" {
			writeErr(w, 400, "note is empty")
			return
		}

		n, err := h.repo.Create(Note{Title: in.Title, Body: in.Body, Pinned: in.Pinned})
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		writeJSON(w, 201, n)
		return

	default:
		writeErr(w, 405, "method not allowed")
		return
	}
}

// /api/notes/{id}
func (h *Handler) NotesSub(w http.ResponseWriter, r *http.Request) {
	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/notes/"), "/")
	if id == "" || strings.Contains(id, "/") {
		writeErr(w, 404, "not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		n, err := h.repo.Get(id)
		if err == ErrNotFound {
			writeErr(w, 404, "not found")
			return
		}
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		writeJSON(w, 200, n)
		return

	case http.MethodPatch:
		var p Patch
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			writeErr(w, 400, "bad json")
			return
		}
		n, err := h.repo.Update(id, p)
		if err == ErrNotFound {
			writeErr(w, 404, "not found")
			return
		}
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		writeJSON(w, 200, n)
		return

	case http.MethodDelete:
		if err := h.repo.Delete(id); err != nil {
			if err == ErrNotFound {
				writeErr(w, 404, "not found")
				return
			}
			writeErr(w, 500, err.Error())
			return
		}
		writeJSON(w, 200, map[string]any{"ok": true})
		return

	default:
		writeErr(w, 405, "method not allowed")
		return
	}
}
