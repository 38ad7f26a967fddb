package database

import (
	"context"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/vaenkat/health-ecosystem-hub/config"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/migrate"
)

// NewEntClient builds the ent client from the central config's database
// section.
func NewEntClient(cfg config.DatabaseConfig) (*repo.Client, error) {
	return NewEntClientFromConfig(FromCentralConfig(cfg))
}

func NewEntClientFromConfig(cfg Config) (*repo.Client, error) {
	db, err := openSQLDB(cfg)
	if err != nil {
		return nil, err
	}

	drv := entsql.OpenDB(dialect.Postgres, db)
	client := repo.NewClient(repo.Driver(drv))
	if cfg.EnableLogging {
		client = client.Debug()
	}
	return client, nil
}

// MigrateEnt applies the schema against the connected database. With safe
// off, columns and indexes removed from the schema are dropped too.
func MigrateEnt(ctx context.Context, client *repo.Client, safe bool) error {
	if safe {
		return client.Schema.Create(ctx)
	}
	return client.Schema.Create(ctx,
		migrate.WithDropColumn(true),
		migrate.WithDropIndex(true),
	)
}
