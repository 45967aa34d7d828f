// Package storage persists the exercise catalog and generated programs in
// PostgreSQL.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
)

// connectTimeout bounds the startup ping so a misconfigured DSN fails fast
// instead of hanging the server boot.
const connectTimeout = 5 * time.Second

// DB is the PostgreSQL-backed store for exercises and generated programs.
// The embedded pool is shared by the HTTP and MCP servers and is safe for
// concurrent use.
type DB struct {
	Pool *pgxpool.Pool
}

// New opens a connection pool and verifies the database is reachable before
// any server starts accepting requests.
func New(ctx context.Context, dsn string) (*DB, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("creating pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &DB{Pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	db.Pool.Close()
}

// RunMigrations applies pending schema migrations from the given directory.
// Applied on every server and importer start; a no-op when up to date.
func RunMigrations(dsn, migrationsPath string) error {
	m, err := migrate.New("file://"+migrationsPath, dsn)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}
