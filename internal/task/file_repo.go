package task

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

type userLedger struct {
	Tasks map[string]Task `json:"tasks"`
	Focus []string        `json:"focus,omitempty"`
}

type fileState struct {
	Users map[string]userLedger `json:"users"`
}

type store struct {
	mu   sync.RWMutex
	path string
	s    fileState
	now  func() time.Time
}

// FileRepo is a JSON-file-backed Repo scoped to one user. All scopes share a
// single file and lock.
type FileRepo struct {
	store  *store
	userID string
}

func NewFileRepo(dataDir string) (*FileRepo, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	st := &store{
		path: filepath.Join(dataDir, "tasks.json"),
		s:    fileState{Users: map[string]userLedger{}},
		now:  time.Now,
	}
	if err := st.load(); err != nil {
		return nil, err
	}
	return &FileRepo{store: st, userID: "default"}, nil
}

func (s *store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.s = fileState{Users: map[string]userLedger{}}
			return nil
		}
		return err
	}

	var loaded fileState
	if err := json.Unmarshal(b, &loaded); err != nil {
		// Corrupt ledger file degrades to an empty ledger rather than
		// refusing to boot.
		s.s = fileState{Users: map[string]userLedger{}}
		return nil
	}
	if loaded.Users == nil {
		loaded.Users = map[string]userLedger{}
	}
	for uid, ul := range loaded.Users {
		if ul.Tasks == nil {
			ul.Tasks = map[string]Task{}
		}
		ul.Focus = dedupeFocus(ul.Focus)
		loaded.Users[uid] = ul
	}
	s.s = loaded
	return nil
}

func (s *store) saveLocked() error {
	b, err := json.MarshalIndent(s.s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0o644)
}

func (r *FileRepo) ForUser(userID string) *FileRepo {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		userID = "default"
	}
	return &FileRepo{store: r.store, userID: userID}
}

func (r *FileRepo) ledgerLocked() userLedger {
	ul, ok := r.store.s.Users[r.userID]
	if !ok {
		ul = userLedger{Tasks: map[string]Task{}}
		r.store.s.Users[r.userID] = ul
	}
	return ul
}

func (r *FileRepo) Create(t Task) (Task, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := r.store.now()
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

	ul := r.ledgerLocked()
	ul.Tasks[t.ID] = t
	r.store.s.Users[r.userID] = ul
	if err := r.store.saveLocked(); err != nil {
		return Task{}, err
	}
	return t, nil
}

func (r *FileRepo) Get(id string) (Task, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	ul, ok := r.store.s.Users[r.userID]
	if !ok {
		return Task{}, ErrNotFound
	}
	t, ok := ul.Tasks[id]
	if !ok {
		return Task{}, ErrNotFound
	}
	return t, nil
}

func (r *FileRepo) Update(id string, p Patch) (Task, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	ul := r.ledgerLocked()
	t, ok := ul.Tasks[id]
	if !ok {
		return Task{}, ErrNotFound
	}
	applyPatch(&t, p, r.store.now())
	ul.Tasks[id] = t
	r.store.s.Users[r.userID] = ul
	if err := r.store.saveLocked(); err != nil {
		return Task{}, err
	}
	return t, nil
}

func (r *FileRepo) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	ul := r.ledgerLocked()
	if _, ok := ul.Tasks[id]; !ok {
		return ErrNotFound
	}
	delete(ul.Tasks, id)
	ul.Focus = removeFromFocus(ul.Focus, id)
	r.store.s.Users[r.userID] = ul
	return r.store.saveLocked()
}

func (r *FileRepo) List(filter ListFilter) ([]Task, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	ul, ok := r.store.s.Users[r.userID]
	if !ok {
		return []Task{}, nil
	}

	status := strings.ToLower(strings.TrimSpace(filter.Status))
	prio := strings.ToLower(strings.TrimSpace(filter.Priority))

	out := make([]Task, 0, len(ul.Tasks))
	for _, t := range ul.Tasks {
		switch status {
		case "", "all":
		case "pending":
			if t.Completed {
				continue
			}
		case "completed":
			if !t.Completed {
				continue
			}
		}
		if prio != "" && prio != "any" && string(t.Priority) != prio {
			continue
		}
		out = append(out, t)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *FileRepo) FocusSet() ([]string, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	ul, ok := r.store.s.Users[r.userID]
	if !ok {
		return []string{}, nil
	}
	return append([]string(nil), ul.Focus...), nil
}

func (r *FileRepo) SetFocus(ids []string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	ul := r.ledgerLocked()
	ul.Focus = dedupeFocus(ids)
	r.store.s.Users[r.userID] = ul
	return r.store.saveLocked()
}
