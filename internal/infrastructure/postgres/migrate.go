package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate aplica el esquema embebido. Las sentencias son idempotentes
// (IF NOT EXISTS), así que se puede ejecutar en cada arranque.
func Migrate(ctx context.Context, q Querier) error {
	files, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("listar migraciones: %w", err)
	}
	sort.Strings(files)
	for _, f := range files {
		content, err := migrationsFS.ReadFile(f)
		if err != nil {
			return fmt.Errorf("leer migración %s: %w", f, err)
		}
		if _, err := q.Exec(ctx, string(content)); err != nil {
			return fmt.Errorf("aplicar migración %s: %w", f, err)
		}
	}
	return nil
}
