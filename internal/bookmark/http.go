package bookmark

import (
	"encoding/json"
	"net/http"
	"net/url"
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

func validURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// /api/bookmarks  (collection)
func (h *Handler) BookmarksRoot(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		bs, err := h.repo.List()
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		writeJSON(w, 200, bs)
		return

	case http.MethodPost:
		var in struct {
			Title string   `json:"title"`
			URL   string   `json:"url"`
			Tags  []string `json:"tags"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeErr(w, 400, "bad json")
			return
		}
		if !validURL(strings.TrimSpace(in.URL)) {
			writeErr(w, 400, "invalid url")
			return
		}

		b, err := h.repo.Create(Bookmark{Title: in.Title, URL: in.URL, Tags: in.Tags})
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		writeJSON(w, 201, b)
		return

	default:
		writeErr(w, 405, "method not allowed")
		return
	}
}

// /api/bookmarks/{id}
func (h *Handler) BookmarksSub(w http.ResponseWriter, r *http.Request) {
	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/bookmarks/"), "/")
	if id == "" || strings.Contains(id, "/") {
		writeErr(w, 404, "not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		b, err := h.repo.Get(id)
		if err == ErrNotFound {
			writeErr(w, 404, "not found")
			return
		}
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		writeJSON(w, 200, b)
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
