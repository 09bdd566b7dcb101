package bookmark

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("bookmark not found")

type Bookmark struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Repo interface {
	Create(b Bookmark) (Bookmark, error)
	Get(id string) (Bookmark, error)
	Delete(id string) error
	List() ([]Bookmark, error)
}
