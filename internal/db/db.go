package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Open returns a handle to the diary database. Slot payloads are tiny
// whole-value writes, so a single connection with a short busy timeout
// is all the store needs.
func Open(path string) (*sql.DB, error) {
	sqldb, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open diary database: %w", err)
	}
	sqldb.SetMaxOpenConns(1)
	if err := sqldb.Ping(); err != nil {
		sqldb.Close()
		return nil, fmt.Errorf("ping diary database: %w", err)
	}
	if _, err := sqldb.Exec(`PRAGMA busy_timeout = 5000;`); err != nil {
		sqldb.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}
	return sqldb, nil
}
