package note

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

type userNotes struct {
	Notes map[string]Note `json:"notes"`
}

type fileState struct {
	Users map[string]userNotes `json:"users"`
}

type store struct {
	mu   sync.RWMutex
	path string
	s    fileState
	now  func() time.Time
}

// FileRepo is a JSON-file-backed Repo scoped to one user.
type FileRepo struct {
	store  *store
	userID string
}

func NewFileRepo(dataDir string) (*FileRepo, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	st := &store{
		path: filepath.Join(dataDir, "notes.json"),
		s:    fileState{Users: map[string]userNotes{}},
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
			s.s = fileState{Users: map[string]userNotes{}}
			return nil
		}
		return err
	}

	var loaded fileState
	if err := json.Unmarshal(b, &loaded); err != nil {
		s.s = fileState{Users: map[string]userNotes{}}
		return nil
	}
	if loaded.Users == nil {
		loaded.Users = map[string]userNotes{}
	}
	for uid, un := range loaded.Users {
		if un.Notes == nil {
			un.Notes = map[string]Note{}
		}
		loaded.Users[uid] = un
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

func newID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return "note_" + hex.EncodeToString(b[:])
}

func (r *FileRepo) notesLocked() userNotes {
	un, ok := r.store.s.Users[r.userID]
	if !ok {
		un = userNotes{Notes: map[string]Note{}}
		r.store.s.Users[r.userID] = un
	}
	return un
}

func (r *FileRepo) Create(n Note) (Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := r.store.now()
	if n.ID == "" {
		n.ID = newID()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = now
	}
	n.UpdatedAt = now
	n.Title = strings.TrimSpace(n.Title)

	un := r.notesLocked()
	un.Notes[n.ID] = n
	r.store.s.Users[r.userID] = un
	if err := r.store.saveLocked(); err != nil {
		return Note{}, err
	}
	return n, nil
}

func (r *FileRepo) Get(id string) (Note, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	un, ok := r.store.s.Users[r.userID]
	if !ok {
		return Note{}, ErrNotFound
	}
	n, ok := un.Notes[id]
	if !ok {
		return Note{}, ErrNotFound
	}
	return n, nil
}

func (r *FileRepo) Update(id string, p Patch) (Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	un := r.notesLocked()
	n, ok := un.Notes[id]
	if !ok {
		return Note{}, ErrNotFound
	}
	if p.Title != nil {
		n.Title = strings.TrimSpace(*p.Title)
	}
	if p.Body != nil {
		n.Body = *p.Body
	}
	if p.Pinned != nil {
		n.Pinned = *p.Pinned
	}
	n.UpdatedAt = r.store.now()
	un.Notes[id] = n
	r.store.s.Users[r.userID] = un
	if err := r.store.saveLocked(); err != nil {
		return Note{}, err
	}
	return n, nil
}

func (r *FileRepo) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	un := r.notesLocked()
	if _, ok := un.Notes[id]; !ok {
		return ErrNotFound
	}
	delete(un.Notes, id)
	r.store.s.Users[r.userID] = un
	return r.store.saveLocked()
}

func (r *FileRepo) List() ([]Note, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	un, ok := r.store.s.Users[r.userID]
	if !ok {
		return []Note{}, nil
	}

	out := make([]Note, 0, len(un.Notes))
	for _, n := range un.Notes {
		out = append(out, n)
	}

	// Pinned first, then newest.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Pinned != out[j].Pinned {
			return out[i].Pinned
		}
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
