package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func testStoreContract(t *testing.T, st Store) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := st.Get(ctx, "default", "user-xp")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if ok {
		t.Fatal("missing key reported present")
	}

	if err := st.Set(ctx, "default", "user-xp", "150"); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := st.Get(ctx, "default", "user-xp")
	if err != nil || !ok || v != "150" {
		t.Fatalf("get after set = (%q, %v, %v), want (150, true, nil)", v, ok, err)
	}

	// Upsert overwrites.
	if err := st.Set(ctx, "default", "user-xp", "300"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, _, _ = st.Get(ctx, "default", "user-xp")
	if v != "300" {
		t.Fatalf("overwrite lost: %q", v)
	}

	// Scopes are isolated.
	if _, ok, _ := st.Get(ctx, "other", "user-xp"); ok {
		t.Fatal("scope isolation broken")
	}
	if err := st.Set(ctx, "other", "user-xp", "1"); err != nil {
		t.Fatalf("set other scope: %v", err)
	}
	v, _, _ = st.Get(ctx, "default", "user-xp")
	if v != "300" {
		t.Fatalf("writing another scope clobbered default: %q", v)
	}

	if err := st.Delete(ctx, "default", "user-xp"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := st.Get(ctx, "default", "user-xp"); ok {
		t.Fatal("key survived delete")
	}

	// Deleting a missing key is not an error.
	if err := st.Delete(ctx, "default", "never-set"); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	st := NewMemoryStore()
	defer st.Close()
	testStoreContract(t, st)
}

func TestSQLiteStore(t *testing.T) {
	st, err := OpenSQLite(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer st.Close()
	testStoreContract(t, st)
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "dir", "state.db")

	st, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := st.Set(ctx, "default", "daily-login-streak", "4"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	st2, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer st2.Close()
	v, ok, err := st2.Get(ctx, "default", "daily-login-streak")
	if err != nil || !ok || v != "4" {
		t.Fatalf("get after reopen = (%q, %v, %v), want (4, true, nil)", v, ok, err)
	}
}
