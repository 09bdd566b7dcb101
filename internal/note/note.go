package note

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("note not found")

type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Pinned    bool      `json:"pinned"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Patch represents a partial update. nil pointer => "no change".
type Patch struct {
	Title  *string `json:"title,omitempty"`
	Body   *string `json:"body,omitempty"`
	Pinned *bool   `json:"pinned,omitempty"`
}

type Repo interface {
	Create(n Note) (Note, error)
	Get(id string) (Note, error)
	Update(id string, patch Patch) (Note, error)
	Delete(id string) error
	List() ([]Note, error)
}
