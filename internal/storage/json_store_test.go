package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()

	store := NewJSONStore(filepath.Join(t.TempDir(), "dayspan.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	return store
}

func TestJSONStoreInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "dayspan.json")
	store := NewJSONStore(path)

	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file missing after Init: %v", err)
	}

	if err := store.Init(); err == nil {
		t.Error("Init() on existing storage should fail")
	}
}

func TestJSONStoreLoadUninitialized(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	if err := store.Load(); err == nil {
		t.Error("Load() without Init should fail")
	}
}

func TestJSONStoreRoundTrip(t *testing.T) {
	store := newTestJSONStore(t)

	if err := store.Set("settings.v2", `{"theme":"nord"}`); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	// Reopen to prove the write reached disk.
	reopened := NewJSONStore(store.GetConfigPath())
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	value, ok, err := reopened.Get("settings.v2")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok {
		t.Fatal("Get() ok = false, want true")
	}
	if want := `{"theme":"nord"}`; value != want {
		t.Errorf("Get() = %q, want %q", value, want)
	}
}

func TestJSONStoreGetMissingKey(t *testing.T) {
	store := newTestJSONStore(t)

	_, ok, err := store.Get("nope")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok {
		t.Error("Get() ok = true for missing key, want false")
	}
}

func TestJSONStoreDelete(t *testing.T) {
	store := newTestJSONStore(t)

	if err := store.Set("settings", "old"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Delete("settings"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	_, ok, err := store.Get("settings")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok {
		t.Error("Get() ok = true after Delete, want false")
	}
}

func TestJSONStoreUseBeforeLoad(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "dayspan.json"))

	if _, _, err := store.Get("settings"); err == nil {
		t.Error("Get() before Load should fail")
	}
	if err := store.Set("settings", "x"); err == nil {
		t.Error("Set() before Load should fail")
	}
}
