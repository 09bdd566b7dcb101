package task

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"noteflow/internal/telemetry"
)

type Handler struct {
	repo       Repo
	events     telemetry.Repository
	maxFocused int
	refresh    func(context.Context) error
}

func NewHandler(repo Repo) *Handler {
	return &Handler{repo: repo, maxFocused: MaxFocusedTasks}
}

func (h *Handler) SetEvents(events telemetry.Repository) {
	h.events = events
}

func (h *Handler) SetMaxFocused(n int) {
	if n > 0 {
		h.maxFocused = n
	}
}

// SetRefresh installs the hook that re-evaluates mission progress after a
// task changes. Errors are the hook's problem; the task write already
// succeeded by the time it runs.
func (h *Handler) SetRefresh(fn func(context.Context) error) {
	h.refresh = fn
}

func (h *Handler) record(eventType telemetry.EventType, metadata telemetry.EventMetadata) {
	if h.events == nil {
		return
	}
	_ = h.events.RecordEvent(eventType, metadata)
}

func (h *Handler) refreshProgress(ctx context.Context) {
	if h.refresh == nil {
		return
	}
	_ = h.refresh(ctx)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func decodeJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

type upsertInput struct {
	Title    string  `json:"title"`
	Priority string  `json:"priority"`
	DueDate  *string `json:"due_date"`
}

// /api/tasks  (collection)
func (h *Handler) TasksRoot(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		ts, err := h.repo.List(ListFilter{
			Status:   q.Get("status"),
			Priority: q.Get("priority"),
		})
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		writeJSON(w, 200, ts)
		return

	case http.MethodPost:
		var in upsertInput
		if err := decodeJSON(r, &in); err != nil {
			writeErr(w, 400, "bad json")
			return
		}
		if strings.TrimSpace(in.Title) == "" {
			writeErr(w, 400, "title is required")
			return
		}

		t := Task{
			Title:    in.Title,
			Priority: NormalizePriority(in.Priority),
		}
		created, err := h.repo.Create(t)
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		if in.DueDate != nil && strings.TrimSpace(*in.DueDate) != "" {
			created, err = h.repo.Update(created.ID, Patch{DueDate: in.DueDate})
			if err != nil {
				writeErr(w, 500, err.Error())
				return
			}
		}

		h.record(telemetry.EventTaskCreated, telemetry.EventMetadata{
			"task_id":  created.ID,
			"priority": string(created.Priority),
		})
		writeJSON(w, 201, created)
		return

	default:
		writeErr(w, 405, "method not allowed")
		return
	}
}

// /api/tasks/{id}
func (h *Handler) TasksSub(w http.ResponseWriter, r *http.Request) {
	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/tasks/"), "/")
	if id == "" || strings.Contains(id, "/") {
		writeErr(w, 404, "not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		t, err := h.repo.Get(id)
		if err == ErrNotFound {
			writeErr(w, 404, "not found")
			return
		}
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		writeJSON(w, 200, t)
		return

	case http.MethodPatch:
		var p Patch
		if err := decodeJSON(r, &p); err != nil {
			writeErr(w, 400, "bad json")
			return
		}
		if p.Priority != nil && !p.Priority.IsValid() {
			writeErr(w, 400, "invalid priority")
			return
		}

		prev, err := h.repo.Get(id)
		if err == ErrNotFound {
			writeErr(w, 404, "not found")
			return
		}
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}

		t, err := h.repo.Update(id, p)
		if err == ErrNotFound {
			writeErr(w, 404, "not found")
			return
		}
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}

		if !prev.Completed && t.Completed {
			h.record(telemetry.EventTaskCompleted, telemetry.EventMetadata{
				"task_id":  t.ID,
				"priority": string(t.Priority),
			})
			h.refreshProgress(r.Context())
		}
		writeJSON(w, 200, t)
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
		h.refreshProgress(r.Context())
		writeJSON(w, 200, map[string]any{"ok": true})
		return

	default:
		writeErr(w, 405, "method not allowed")
		return
	}
}

// /api/focus  (the focused-task set)
func (h *Handler) Focus(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		ids, err := h.repo.FocusSet()
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		writeJSON(w, 200, map[string]any{"taskIds": ids})
		return

	case http.MethodPut:
		var in struct {
			TaskIDs []string `json:"taskIds"`
		}
		if err := decodeJSON(r, &in); err != nil {
			writeErr(w, 400, "bad json")
			return
		}

		ids := dedupeFocus(in.TaskIDs)
		if len(ids) > h.maxFocused {
			writeErr(w, 400, "too many focused tasks")
			return
		}
		for _, id := range ids {
			if _, err := h.repo.Get(id); err == ErrNotFound {
				writeErr(w, 400, "unknown task: "+id)
				return
			} else if err != nil {
				writeErr(w, 500, err.Error())
				return
			}
		}

		if err := h.repo.SetFocus(ids); err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		h.refreshProgress(r.Context())
		writeJSON(w, 200, map[string]any{
			"ok":      true,
			"taskIds": ids,
		})
		return

	default:
		writeErr(w, 405, "method not allowed")
		return
	}
}
