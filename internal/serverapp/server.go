// Package serverapp assembles the HTTP surface: repositories, the
// gamification service, API routes, static assets, and middleware.
package serverapp

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"noteflow/internal/bookmark"
	"noteflow/internal/config"
	"noteflow/internal/gamify"
	"noteflow/internal/httpmw"
	"noteflow/internal/note"
	"noteflow/internal/storage"
	"noteflow/internal/streak"
	"noteflow/internal/task"
	"noteflow/internal/telemetry"
	staticfiles "noteflow/static"
)

type Options struct {
	Config        *config.Config
	DataDir       string
	StaticDir     string
	UseDiskStatic bool
	Logger        *log.Logger
}

// App is the wired application. Close releases the state store.
type App struct {
	Handler http.Handler
	Gamify  *gamify.Service
	store   storage.Store
}

func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}

// NewHandler is the single-return convenience used by tests.
func NewHandler(opts Options) (http.Handler, error) {
	app, err := NewApp(opts)
	if err != nil {
		return nil, err
	}
	return app.Handler, nil
}

func NewApp(opts Options) (*App, error) {
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	if strings.TrimSpace(opts.DataDir) == "" {
		opts.DataDir = opts.Config.Server.DataDir
	}
	if strings.TrimSpace(opts.StaticDir) == "" {
		opts.StaticDir = opts.Config.Server.StaticDir
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	mux := http.NewServeMux()

	staticHandler := http.FileServer(http.FS(staticfiles.EmbeddedFS()))
	if opts.UseDiskStatic {
		staticHandler = http.FileServer(http.Dir(opts.StaticDir))
	}
	mux.Handle("/static/", http.StripPrefix("/static/", staticHandler))
	mux.Handle("/", http.RedirectHandler("/static/", http.StatusFound))

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "noteflow",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	events := telemetry.NewMemoryRepository()

	taskRepo, err := task.NewFileRepo(opts.DataDir)
	if err != nil {
		return nil, err
	}
	noteRepo, err := note.NewFileRepo(opts.DataDir)
	if err != nil {
		return nil, err
	}
	bookmarkRepo, err := bookmark.NewFileRepo(opts.DataDir)
	if err != nil {
		return nil, err
	}

	store, err := storage.OpenSQLite(opts.Config.Gamify.StatePath)
	if err != nil {
		return nil, err
	}

	gamifySvc := gamify.NewService(gamify.Options{
		Store:  store,
		Ledger: taskRepo,
		Events: events,
		Logger: opts.Logger,
		Bonuses: streak.Bonuses{
			FirstLogin:  opts.Config.Gamify.LoginBonus.First,
			Consecutive: opts.Config.Gamify.LoginBonus.Consecutive,
		},
	})

	taskHandler := task.NewHandler(taskRepo)
	taskHandler.SetEvents(events)
	taskHandler.SetMaxFocused(opts.Config.Tasks.MaxFocused)
	taskHandler.SetRefresh(func(ctx context.Context) error {
		_, err := gamifySvc.Refresh(ctx)
		return err
	})
	mux.HandleFunc("/api/tasks", taskHandler.TasksRoot)
	mux.HandleFunc("/api/tasks/", taskHandler.TasksSub)
	mux.HandleFunc("/api/focus", taskHandler.Focus)

	noteHandler := note.NewHandler(noteRepo)
	mux.HandleFunc("/api/notes", noteHandler.NotesRoot)
	mux.HandleFunc("/api/notes/", noteHandler.NotesSub)

	bookmarkHandler := bookmark.NewHandler(bookmarkRepo)
	mux.HandleFunc("/api/bookmarks", bookmarkHandler.BookmarksRoot)
	mux.HandleFunc("/api/bookmarks/", bookmarkHandler.BookmarksSub)

	gamifyHandler := gamify.NewHandler(gamifySvc)
	mux.HandleFunc("/api/gamify/session", gamifyHandler.Session)
	mux.HandleFunc("/api/gamify/state", gamifyHandler.State)

	mux.HandleFunc("/api/telemetry/stats", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		since := time.Now().AddDate(0, 0, -7)
		if raw := strings.TrimSpace(r.URL.Query().Get("since")); raw != "" {
			d, err := time.Parse("2006-01-02", raw)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]any{"error": "since must be YYYY-MM-DD"})
				return
			}
			since = d
		}
		evs, err := events.GetEvents(since, nil)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
			return
		}
		stats, err := telemetry.CalculateStats(evs, since)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, stats)
	})

	mux.HandleFunc("/api/config", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(opts.Config); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})

	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if _, err := taskRepo.List(task.ListFilter{Status: "all"}); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{
				"ok":    false,
				"error": "task storage unavailable",
			})
			return
		}
		if _, _, err := store.Get(r.Context(), "default", gamify.KeyXP); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{
				"ok":    false,
				"error": "state store unavailable",
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "noteflow",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	handler := httpmw.Chain(
		mux,
		httpmw.WithAccessLog(opts.Logger),
		httpmw.WithRequestID,
		httpmw.WithRecover(opts.Logger),
	)

	return &App{Handler: handler, Gamify: gamifySvc, store: store}, nil
}

func UseDiskStaticByEnv() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("NOTEFLOW_DEV_STATIC"))) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
