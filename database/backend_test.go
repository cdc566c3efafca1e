package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"prospera-go-be/config"
)

// exerciseBackend runs the shared load/save contract against b.
func exerciseBackend(t *testing.T, b Backend) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := b.Load(ctx, "missing"); err != nil || ok {
		t.Fatalf("load missing: ok=%v err=%v", ok, err)
	}
	if err := b.Save(ctx, KeyProfile, []byte(`{"name":"a"}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := b.Save(ctx, KeyProfile, []byte(`{"name":"b"}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, ok, err := b.Load(ctx, KeyProfile)
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if string(got) != `{"name":"b"}` {
		t.Fatalf("load = %s", got)
	}
}

func TestMemoryBackend(t *testing.T) {
	exerciseBackend(t, NewMemory())
}

func TestMemoryBackendCopiesValues(t *testing.T) {
	b := NewMemory()
	value := []byte("abc")
	if err := b.Save(context.Background(), "k", value); err != nil {
		t.Fatalf("save: %v", err)
	}
	value[0] = 'x'
	got, _, _ := b.Load(context.Background(), "k")
	if string(got) != "abc" {
		t.Fatalf("stored value aliased caller slice: %s", got)
	}
}

func TestSQLiteBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	b, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	exerciseBackend(t, b)
	if err := b.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen sqlite: %v", err)
	}
	defer reopened.Close()
	got, ok, err := reopened.Load(context.Background(), KeyProfile)
	if err != nil || !ok || string(got) != `{"name":"b"}` {
		t.Fatalf("reopened load = %s ok=%v err=%v", got, ok, err)
	}
}

func TestOpenSQLiteRequiresPath(t *testing.T) {
	if _, err := OpenSQLite("  "); err == nil {
		t.Fatal("expected error for blank path")
	}
}

func TestPostgresBackend(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	b, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	defer b.Close()
	exerciseBackend(t, b)
}

func TestOpenSelectsDriver(t *testing.T) {
	b, err := Open(config.Config{StoreDriver: config.DriverMemory})
	if err != nil {
		t.Fatalf("open memory: %v", err)
	}
	if _, ok := b.(*MemoryBackend); !ok {
		t.Fatalf("expected memory backend, got %T", b)
	}

	b, err = Open(config.Config{StoreDriver: config.DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "x.db")})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer b.Close()
	if _, ok := b.(*SQLiteBackend); !ok {
		t.Fatalf("expected sqlite backend, got %T", b)
	}

	if _, err := Open(config.Config{StoreDriver: "redis"}); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}
