// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// PoolConfig sizes the connection pool. Zero values keep database/sql defaults.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Conn is the shared connection pool handed to every handler.
type Conn struct {
	*sql.DB
	driver Driver
}

// Open creates the pool for databaseURL. No connection is made until the
// first query, so an unreachable database is not an error here.
func Open(databaseURL string, pool PoolConfig) (*Conn, error) {
	driver, dsn := ParseDSN(databaseURL)

	sqlDB, err := sql.Open(string(driver), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	if isMemoryDSN(dsn) {
		// every new connection would get its own empty in-memory database
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
	} else {
		if pool.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
		}
		if pool.MaxIdleConns > 0 {
			sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
		}
		if pool.ConnMaxLifetime > 0 {
			sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)
		}
	}

	return &Conn{DB: sqlDB, driver: driver}, nil
}

func (c *Conn) Driver() Driver {
	return c.driver
}

// Rebind rewrites '?' placeholders into the driver's format.
func (c *Conn) Rebind(query string) string {
	return rebind(c.driver, query)
}

// Now runs the diagnostic SELECT NOW() and returns the server time as text.
func (c *Conn) Now(ctx context.Context) (string, error) {
	query := "SELECT NOW()"
	if c.driver == DriverSQLite {
		query = "SELECT CURRENT_TIMESTAMP"
	}

	var now string
	if err := c.QueryRowContext(ctx, query).Scan(&now); err != nil {
		return "", fmt.Errorf("failed to query server time: %w", err)
	}
	return now, nil
}
