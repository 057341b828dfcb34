package sqlrepo

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"
)

var (
	//go:embed schema_postgres.sql
	postgresSchema string
	//go:embed schema_sqlite.sql
	sqliteSchema string
)

// Migrate creates the tables used by the repositories. It is safe to run
// on every start.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	var schema string
	switch driver {
	case "postgres", "pgx":
		schema = postgresSchema
	case "sqlite3":
		schema = sqliteSchema
	default:
		return fmt.Errorf("sqlrepo: unsupported driver %q", driver)
	}

	for _, stmt := range strings.Split(schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
