package turso

import (
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "github.com/tursodatabase/go-libsql"
)

// DB wraps the libsql connection pool.
type DB struct {
	*sql.DB
}

// NewDB opens a libsql database. Remote Turso URLs receive the auth token as
// a query parameter; local "file:" URLs ignore it.
func NewDB(databaseURL, authToken string) (*DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("LAUNCHDASH_DATABASE_URL environment variable is required")
	}

	db, err := sql.Open("libsql", connectionString(databaseURL, authToken))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Turso closes idle Hrana streams aggressively; keep no idle connections.
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(0)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db}, nil
}

func connectionString(databaseURL, authToken string) string {
	if authToken == "" || strings.HasPrefix(databaseURL, "file:") {
		return databaseURL
	}
	sep := "?"
	if strings.Contains(databaseURL, "?") {
		sep = "&"
	}
	return databaseURL + sep + "authToken=" + url.QueryEscape(authToken)
}
