package note

import (
	"testing"
)

func TestFileRepo_CRUD(t *testing.T) {
	repo, err := NewFileRepo(t.TempDir())
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	created, err := repo.Create(Note{Title: "  Reading list  ", Body: "chapters 1-3"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" || created.Title != "Reading list" {
		t.Fatalf("unexpected note: %+v", created)
	}

	pinned := true
	updated, err := repo.Update(created.ID, Patch{Pinned: &pinned})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.Pinned {
		t.Fatal("pin not applied")
	}

	if _, err := repo.Get("note_missing"); err != ErrNotFound {
		t.Fatalf("get missing = %v, want ErrNotFound", err)
	}

	other, err := repo.Create(Note{Title: "Unpinned"})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	list, err := repo.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].ID != created.ID {
		t.Fatalf("pinned note should sort first: %+v", list)
	}

	if err := repo.Delete(other.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	list, _ = repo.List()
	if len(list) != 1 {
		t.Fatalf("list after delete = %d, want 1", len(list))
	}
}

func TestFileRepo_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewFileRepo(dir)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	created, err := repo.Create(Note{Title: "keep me"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	again, err := NewFileRepo(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, err := again.Get(created.ID)
	if err != nil || got.Title != "keep me" {
		t.Fatalf("note lost across reopen: %+v %v", got, err)
	}
}
