package history

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

type Migration struct {
	Name  string
	UpSQL string
}

// Applied in order; a migration runs once and is remembered in the
// migrations table.
var migrations = []Migration{
	{
		Name: "0001_create_expressions",
		UpSQL: `CREATE TABLE IF NOT EXISTS expressions (
	id BIGSERIAL PRIMARY KEY,
	expr TEXT NOT NULL,
	tokens JSONB NOT NULL,
	error TEXT NOT NULL DEFAULT '',
	at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
)`,
	},
	{
		Name:  "0002_index_expressions_at",
		UpSQL: `CREATE INDEX IF NOT EXISTS expressions_at_idx ON expressions (at DESC)`,
	},
}

func (s *Store) Migrate(ctx context.Context) error {
	err := s.requireMigrationsTable(ctx)
	if err != nil {
		return err
	}

	for _, migration := range migrations {
		err = s.execMigration(ctx, migration)
		if err != nil {
			return fmt.Errorf("migration %s: %w", migration.Name, err)
		}
	}

	return nil
}

func (s *Store) requireMigrationsTable(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS migrations (
	name TEXT PRIMARY KEY,
	at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
)`)
	return err
}

func (s *Store) execMigration(ctx context.Context, migration Migration) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var name string
	err = tx.QueryRowContext(ctx, `SELECT name FROM migrations WHERE name = $1`, migration.Name).Scan(&name)
	if err == nil {
		s.log.Debug("migration already applied", zap.String("name", migration.Name))
		return nil
	}
	if err != sql.ErrNoRows {
		return err
	}

	if _, err = tx.ExecContext(ctx, migration.UpSQL); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `INSERT INTO migrations (name) VALUES ($1)`, migration.Name); err != nil {
		return err
	}

	s.log.Info("applied migration", zap.String("name", migration.Name))
	return tx.Commit()
}
