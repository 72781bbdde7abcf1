package shared

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// busyTimeoutMs bounds how long a journal write waits on a lock held by
// another qbtui process before failing.
const busyTimeoutMs = 5000

// NewDatabase opens the journal database at path, which may be ":memory:"
// for tests, and verifies the connection. The busy timeout is set through
// the driver DSN so every pooled connection gets it, letting concurrent CLI
// and TUI invocations sharing one journal file wait instead of erroring.
func NewDatabase(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("%s?_busy_timeout=%d", path, busyTimeoutMs)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// ConfigureDatabase sets connection pool settings for the journal database.
func ConfigureDatabase(db *sql.DB, maxOpenConns, maxIdleConns int) {
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
}
