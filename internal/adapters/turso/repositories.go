package turso

import (
	"database/sql"

	"github.com/emiliopalmerini/launchdash/internal/ports"
)

// Repositories holds all turso repository implementations as port interfaces.
type Repositories struct {
	Launches ports.LaunchRepository
}

// NewRepositories creates all turso repository implementations from a database connection.
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Launches: NewLaunchRepository(db),
	}
}
