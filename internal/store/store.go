// Package store owns the database handle: opening the sqlite-backed bun
// connection and bootstrapping the schema.
package store

import (
	"context"
	"database/sql"

	"github.com/goliatone/go-errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"github.com/ticklist/ticklist/internal/model"
)

// Open connects to the database behind the given DSN.
func Open(dsn string) (*bun.DB, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "unable to open database")
	}

	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}

// InitSchema creates the backing tables when they do not exist yet.
// Versioned migrations are out of scope; sqlite bootstraps in place.
func InitSchema(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*model.User)(nil),
		(*model.Todo)(nil),
	}

	for _, m := range models {
		if _, err := db.NewCreateTable().Model(m).IfNotExists().Exec(ctx); err != nil {
			return errors.Wrap(err, errors.CategoryInternal, "unable to create schema")
		}
	}

	return nil
}
