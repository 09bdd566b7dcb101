package task

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"
)

var ErrNotFound = errors.New("task not found")

// Patch represents a partial update. nil pointer => "no change".
type Patch struct {
	Title     *string   `json:"title,omitempty"`
	Completed *bool     `json:"completed,omitempty"`
	Priority  *Priority `json:"priority,omitempty"`
	DueDate   *string   `json:"due_date,omitempty"` // "" clears
}

type ListFilter struct {
	// Status: "" | "all" | "pending" | "completed"
	Status string
	// Priority: "" | "any" | "low" | "medium" | "high"
	Priority string
}

// Repo owns the task ledger and the focus set. The gamification core consumes
// it through the read-only Ledger view.
type Repo interface {
	Create(t Task) (Task, error)
	Get(id string) (Task, error)
	Update(id string, patch Patch) (Task, error)
	Delete(id string) error
	List(filter ListFilter) ([]Task, error)

	FocusSet() ([]string, error)
	SetFocus(ids []string) error
}

// Ledger is the read-only accessor granted to the gamification core.
type Ledger interface {
	List(filter ListFilter) ([]Task, error)
	FocusSet() ([]string, error)
}

type MemoryRepo struct {
	mu    sync.RWMutex
	tasks map[string]Task
	focus []string
	now   func() time.Time
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		tasks: map[string]Task{},
		now:   time.Now,
	}
}

// SetNowFunc overrides the clock, for tests.
func (r *MemoryRepo) SetNowFunc(now func() time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = now
}

func newID(prefix string) string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return prefix + "_" + hex.EncodeToString(b[:])
}

func applyPatch(t *Task, p Patch, now time.Time) {
	if p.Title != nil {
		t.Title = strings.TrimSpace(*p.Title)
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Priority != nil && p.Priority.IsValid() {
		t.Priority = *p.Priority
	}
	if p.DueDate != nil {
		if *p.DueDate == "" {
			t.DueDate = nil
		} else if d, err := time.ParseInLocation("2006-01-02", *p.DueDate, now.Location()); err == nil {
			t.DueDate = &d
		}
	}
	t.UpdatedAt = now
}

func (r *MemoryRepo) Create(t Task) (Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if t.ID == "" {
		t.ID = newID("task")
	}
	if !t.Priority.IsValid() {
		t.Priority = PriorityMedium
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
	t.Title = strings.TrimSpace(t.Title)

	r.tasks[t.ID] = t
	return t, nil
}

func (r *MemoryRepo) Get(id string) (Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[id]
	if !ok {
		return Task{}, ErrNotFound
	}
	return t, nil
}

func (r *MemoryRepo) Update(id string, p Patch) (Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok {
		return Task{}, ErrNotFound
	}
	applyPatch(&t, p, r.now())
	r.tasks[id] = t
	return t, nil
}

func (r *MemoryRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return ErrNotFound
	}
	delete(r.tasks, id)
	r.focus = removeFromFocus(r.focus, id)
	return nil
}

func (r *MemoryRepo) List(filter ListFilter) ([]Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := func(t Task) bool {
		switch strings.ToLower(strings.TrimSpace(filter.Status)) {
		case "", "all":
		case "pending":
			if t.Completed {
				return false
			}
		case "completed":
			if !t.Completed {
				return false
			}
		}

		switch p := strings.ToLower(strings.TrimSpace(filter.Priority)); p {
		case "", "any":
		default:
			if string(t.Priority) != p {
				return false
			}
		}
		return true
	}

	out := make([]Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		if matches(t) {
			out = append(out, t)
		}
	}

	// Newest first, stable on id for equal timestamps.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *MemoryRepo) FocusSet() ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.focus...), nil
}

func (r *MemoryRepo) SetFocus(ids []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.focus = dedupeFocus(ids)
	return nil
}

func dedupeFocus(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := map[string]bool{}
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func removeFromFocus(focus []string, id string) []string {
	out := focus[:0]
	for _, f := range focus {
		if f != id {
			out = append(out, f)
		}
	}
	return out
}
