package db

import (
	"path/filepath"
	"testing"
)

func TestOpenMemory(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	var count int
	if err := d.QueryRow("SELECT COUNT(*) FROM search_queries").Scan(&count); err != nil {
		t.Errorf("table search_queries: %v", err)
	}
	if d.Path() != ":memory:" {
		t.Errorf("Path() = %q", d.Path())
	}
}

func TestMigrateIdempotent(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	if err := d.migrate(); err != nil {
		t.Fatalf("second migrate() error: %v", err)
	}
}

func TestOpenFileCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "queries.db")

	d, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}

	if _, err := d.Exec(`INSERT INTO search_queries (id, query, normalized, result_count, created_at) VALUES ('a', 'Berlin', 'berlin', 1, 0)`); err != nil {
		t.Fatalf("insert: %v", err)
	}
	d.Close()

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	var count int
	if err := reopened.QueryRow("SELECT COUNT(*) FROM search_queries").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}
