package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "modernc.org/sqlite"

	"github.com/biomarkerlab/labreports/gen/ent"
	"github.com/biomarkerlab/labreports/internal/common"
)

// DBResult bundles the handles InitDatabase hands back to callers.
type DBResult struct {
	Client  *ent.Client
	Cleanup func()
}

// InitDatabase opens either an in-memory SQLite database (CLI/dev mode) or the
// configured Postgres database, and runs schema migration.
func InitDatabase(ctx context.Context, cfg *common.Config, inmem bool, logger *slog.Logger) (*DBResult, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if inmem {
		db, err := sql.Open("sqlite", "file:labreports?mode=memory&cache=shared&_pragma=foreign_keys(1)")
		if err != nil {
			return nil, common.WrapError(err, "open sqlite")
		}
		// cache=shared needs a single connection or tables vanish between conns
		db.SetMaxOpenConns(1)
		drv := entsql.OpenDB(dialect.SQLite, db)
		client := ent.NewClient(ent.Driver(drv))
		if err := client.Schema.Create(ctx); err != nil {
			_ = client.Close()
			return nil, common.WrapError(err, "migrate sqlite schema")
		}
		logger.Info("using in-memory sqlite database")
		return &DBResult{
			Client: client,
			Cleanup: func() {
				if err := client.Close(); err != nil {
					logger.Error("failed to close ent client", "error", err)
				}
			},
		}, nil
	}

	client, pool, err := Open(ctx, Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, err
	}
	if err := HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		Close(client, pool, logger)
		return nil, common.WrapError(err, "database health check")
	}
	if err := client.Schema.Create(ctx); err != nil {
		Close(client, pool, logger)
		return nil, common.WrapError(err, "migrate schema")
	}
	return &DBResult{
		Client:  client,
		Cleanup: func() { Close(client, pool, logger) },
	}, nil
}
