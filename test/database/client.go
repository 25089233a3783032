// Package database provides test database clients backed by per-test schemas.
package database

import (
	"testing"

	"github.com/autopiloot/autopiloot/pkg/database"
	"github.com/autopiloot/autopiloot/test/util"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to an external PostgreSQL
// service container. In local dev: spins up a testcontainer with PostgreSQL.
// The schema and connection are cleaned up when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
