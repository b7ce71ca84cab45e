package localstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/devhub/internal/client/migrations"
	"github.com/pressly/goose/v3"
)

// InitDatabase opens the sqlite database at dsn and brings the schema up to
// date with the embedded migrations.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}
