package repositories

import (
	"context"
	_ "embed"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-image-vault/internal/logger"
)

//go:embed schema.sql
var schema string

// Migrate creates the tables and indexes when they do not exist yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)
	logger.Log.Infow("schema applied", "error", err)
	return err
}
