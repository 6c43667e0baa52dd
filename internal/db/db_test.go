package db_test

import (
	"path/filepath"
	"testing"

	"github.com/Shining04/Kcal.txt/internal/db"
)

func TestOpenConfiguresBusyTimeout(t *testing.T) {
	t.Parallel()

	sqldb, err := db.Open(filepath.Join(t.TempDir(), "kcaltxt.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer sqldb.Close()

	var timeout int
	if err := sqldb.QueryRow(`PRAGMA busy_timeout`).Scan(&timeout); err != nil {
		t.Fatalf("read busy_timeout: %v", err)
	}
	if timeout != 5000 {
		t.Fatalf("expected busy_timeout 5000, got %d", timeout)
	}
}
