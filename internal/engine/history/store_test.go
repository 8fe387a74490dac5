package history

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

const migrationPath = "../../../migrations/001_init_history.sql"

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := OpenSQLite(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	store := New(db)
	if err := store.Init(context.Background(), migrationPath); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return store
}

func TestStore_CreateAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	entry := &Entry{
		ID:         "gen-1",
		Prompt:     "room 4x5 with a south door",
		ParamsJSON: `{"shape_type":"room"}`,
		DXFFile:    "gen-1.dxf",
		SVGFile:    "gen-1.svg",
	}
	if err := store.Create(ctx, entry); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if entry.CreatedAt == "" || entry.UpdatedAt != entry.CreatedAt {
		t.Errorf("timestamps not stamped: created=%q updated=%q", entry.CreatedAt, entry.UpdatedAt)
	}

	got, err := store.Get(ctx, "gen-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Prompt != entry.Prompt || got.ParamsJSON != entry.ParamsJSON || got.DXFFile != entry.DXFFile {
		t.Errorf("Get returned %+v, want %+v", got, entry)
	}
	if got.STLFile != "" {
		t.Errorf("fresh entry has stl_filename %q", got.STLFile)
	}
}

func TestStore_GetMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get missing = %v, want ErrNotFound", err)
	}
}

func TestStore_ListNewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Created within the same second: the id tiebreaker keeps the
	// order stable.
	for _, id := range []string{"a", "b", "c"} {
		if err := store.Create(ctx, &Entry{ID: id, DXFFile: id + ".dxf", SVGFile: id + ".svg"}); err != nil {
			t.Fatalf("Create %s: %v", id, err)
		}
	}

	entries, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("List returned %d entries, want 3", len(entries))
	}
	for i, want := range []string{"c", "b", "a"} {
		if entries[i].ID != want {
			t.Errorf("entries[%d].ID = %q, want %q", i, entries[i].ID, want)
		}
	}
}

func TestStore_SetSTL(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Create(ctx, &Entry{ID: "gen-1", DXFFile: "gen-1.dxf", SVGFile: "gen-1.svg"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := store.SetSTL(ctx, "gen-1", "gen-1.stl"); err != nil {
		t.Fatalf("SetSTL: %v", err)
	}

	got, err := store.Get(ctx, "gen-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.STLFile != "gen-1.stl" {
		t.Errorf("stl_filename = %q, want %q", got.STLFile, "gen-1.stl")
	}

	if err := store.SetSTL(ctx, "missing", "x.stl"); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetSTL on missing id = %v, want ErrNotFound", err)
	}
}

func TestStore_DeleteAndClear(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b"} {
		if err := store.Create(ctx, &Entry{ID: id, DXFFile: id + ".dxf", SVGFile: id + ".svg"}); err != nil {
			t.Fatalf("Create %s: %v", id, err)
		}
	}

	if err := store.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := store.Delete(ctx, "a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete = %v, want ErrNotFound", err)
	}

	deleted, err := store.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if deleted != 1 {
		t.Errorf("Clear deleted %d entries, want 1", deleted)
	}

	entries, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("List after Clear returned %d entries", len(entries))
	}
}
