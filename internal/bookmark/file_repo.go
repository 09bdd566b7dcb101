package bookmark

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

type userBookmarks struct {
	Bookmarks map[string]Bookmark `json:"bookmarks"`
}

type fileState struct {
	Users map[string]userBookmarks `json:"users"`
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
		path: filepath.Join(dataDir, "bookmarks.json"),
		s:    fileState{Users: map[string]userBookmarks{}},
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
			s.s = fileState{Users: map[string]userBookmarks{}}
			return nil
		}
		return err
	}

	var loaded fileState
	if err := json.Unmarshal(b, &loaded); err != nil {
		s.s = fileState{Users: map[string]userBookmarks{}}
		return nil
	}
	if loaded.Users == nil {
		loaded.Users = map[string]userBookmarks{}
	}
	for uid, ub := range loaded.Users {
		if ub.Bookmarks == nil {
			ub.Bookmarks = map[string]Bookmark{}
		}
		loaded.Users[uid] = ub
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
	return "bm_" + hex.EncodeToString(b[:])
}

func (r *FileRepo) bookmarksLocked() userBookmarks {
	ub, ok := r.store.s.Users[r.userID]
	if !ok {
		ub = userBookmarks{Bookmarks: map[string]Bookmark{}}
		r.store.s.Users[r.userID] = ub
	}
	return ub
}

func (r *FileRepo) Create(b Bookmark) (Bookmark, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if b.ID == "" {
		b.ID = newID()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = r.store.now()
	}
	b.Title = strings.TrimSpace(b.Title)
	b.URL = strings.TrimSpace(b.URL)

	ub := r.bookmarksLocked()
	ub.Bookmarks[b.ID] = b
	r.store.s.Users[r.userID] = ub
	if err := r.store.saveLocked(); err != nil {
		return Bookmark{}, err
	}
	return b, nil
}

func (r *FileRepo) Get(id string) (Bookmark, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	ub, ok := r.store.s.Users[r.userID]
	if !ok {
		return Bookmark{}, ErrNotFound
	}
	b, ok := ub.Bookmarks[id]
	if !ok {
		return Bookmark{}, ErrNotFound
	}
	return b, nil
}

func (r *FileRepo) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	ub := r.bookmarksLocked()
	if _, ok := ub.Bookmarks[id]; !ok {
		return ErrNotFound
	}
	delete(ub.Bookmarks, id)
	r.store.s.Users[r.userID] = ub
	return r.store.saveLocked()
}

func (r *FileRepo) List() ([]Bookmark, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	ub, ok := r.store.s.Users[r.userID]
	if !ok {
		return []Bookmark{}, nil
	}

	out := make([]Bookmark, 0, len(ub.Bookmarks))
	for _, b := range ub.Bookmarks {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
