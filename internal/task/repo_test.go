package task

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func fixedClock(s string) func() time.Time {
	ts, err := time.ParseInLocation("2006-01-02 15:04", s, time.Local)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return ts }
}

func testRepoContract(t *testing.T, repo Repo) {
	t.Helper()

	created, err := repo.Create(Task{Title: "  Read chapter 4  "})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("create did not assign an id")
	}
	if created.Title != "Read chapter 4" {
		t.Fatalf("title not trimmed: %q", created.Title)
	}
	if created.Priority != PriorityMedium {
		t.Fatalf("default priority = %q, want medium", created.Priority)
	}
	if created.Completed {
		t.Fatal("new task must start pending")
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("created_at not set")
	}

	got, err := repo.Get(created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("get returned wrong task: %q", got.ID)
	}

	done := true
	high := PriorityHigh
	updated, err := repo.Update(created.ID, Patch{Completed: &done, Priority: &high})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.Completed || updated.Priority != PriorityHigh {
		t.Fatalf("patch not applied: %+v", updated)
	}

	if _, err := repo.Get("task_missing"); err != ErrNotFound {
		t.Fatalf("get missing = %v, want ErrNotFound", err)
	}
	if _, err := repo.Update("task_missing", Patch{}); err != ErrNotFound {
		t.Fatalf("update missing = %v, want ErrNotFound", err)
	}
	if err := repo.Delete("task_missing"); err != ErrNotFound {
		t.Fatalf("delete missing = %v, want ErrNotFound", err)
	}

	second, err := repo.Create(Task{Title: "Write summary", Priority: PriorityLow})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	all, err := repo.List(ListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("list returned %d tasks, want 2", len(all))
	}

	pending, err := repo.List(ListFilter{Status: "pending"})
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != second.ID {
		t.Fatalf("pending filter wrong: %+v", pending)
	}

	highOnly, err := repo.List(ListFilter{Priority: "high"})
	if err != nil {
		t.Fatalf("list high: %v", err)
	}
	if len(highOnly) != 1 || highOnly[0].ID != created.ID {
		t.Fatalf("priority filter wrong: %+v", highOnly)
	}

	// Focus set: dedupes, and deleting a task removes it.
	if err := repo.SetFocus([]string{created.ID, second.ID, created.ID, " "}); err != nil {
		t.Fatalf("set focus: %v", err)
	}
	focus, err := repo.FocusSet()
	if err != nil {
		t.Fatalf("focus set: %v", err)
	}
	if len(focus) != 2 {
		t.Fatalf("focus = %v, want 2 deduped ids", focus)
	}

	if err := repo.Delete(second.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	focus, _ = repo.FocusSet()
	if len(focus) != 1 || focus[0] != created.ID {
		t.Fatalf("deleted task still focused: %v", focus)
	}
}

func TestMemoryRepo(t *testing.T) {
	testRepoContract(t, NewMemoryRepo())
}

func TestFileRepo(t *testing.T) {
	repo, err := NewFileRepo(t.TempDir())
	if err != nil {
		t.Fatalf("new file repo: %v", err)
	}
	testRepoContract(t, repo)
}

func TestFileRepo_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	repo, err := NewFileRepo(dir)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	created, err := repo.Create(Task{Title: "Survive restart"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.SetFocus([]string{created.ID}); err != nil {
		t.Fatalf("set focus: %v", err)
	}

	again, err := NewFileRepo(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, err := again.Get(created.ID)
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if got.Title != "Survive restart" {
		t.Fatalf("title lost: %q", got.Title)
	}
	focus, _ := again.FocusSet()
	if len(focus) != 1 || focus[0] != created.ID {
		t.Fatalf("focus lost: %v", focus)
	}
}

func TestFileRepo_UserScopesAreIsolated(t *testing.T) {
	repo, err := NewFileRepo(t.TempDir())
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	alice := repo.ForUser("alice")
	bob := repo.ForUser("bob")

	created, err := alice.Create(Task{Title: "Alice's task"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := bob.Get(created.ID); err != ErrNotFound {
		t.Fatalf("bob sees alice's task: %v", err)
	}
	bobList, _ := bob.List(ListFilter{})
	if len(bobList) != 0 {
		t.Fatalf("bob's list not empty: %+v", bobList)
	}
}

func TestFileRepo_CorruptFileDegradesToEmpty(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewFileRepo(dir)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := repo.Create(Task{Title: "will be lost"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Clobber the ledger file, then reopen.
	if err := os.WriteFile(filepath.Join(dir, "tasks.json"), []byte("{{{not json"), 0o644); err != nil {
		t.Fatalf("clobber: %v", err)
	}
	again, err := NewFileRepo(dir)
	if err != nil {
		t.Fatalf("reopen corrupt: %v", err)
	}
	all, err := again.List(ListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("corrupt ledger should load empty, got %+v", all)
	}
}

func TestMemoryRepo_SetNowFunc(t *testing.T) {
	repo := NewMemoryRepo()
	repo.SetNowFunc(fixedClock("2024-03-20 12:00"))

	created, err := repo.Create(Task{Title: "clocked"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	want := fixedClock("2024-03-20 12:00")()
	if !created.CreatedAt.Equal(want) {
		t.Fatalf("created_at = %v, want %v", created.CreatedAt, want)
	}
}
