// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"strconv"
	"strings"
)

// Driver is a database/sql driver name.
type Driver string

const (
	DriverPostgres Driver = "postgres" // github.com/lib/pq
	DriverSQLite   Driver = "sqlite"   // modernc.org/sqlite
)

const (
	defaultSQLiteFile = "cadastro.db"
	sqlitePragmas     = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
)

// ParseDSN picks the driver for databaseURL and returns a DSN it accepts.
//
//	postgres://... | postgresql://... | host=... dbname=...  -> postgres
//	sqlite:///abs/path.db | sqlite://rel.db | sqlite://:memory: -> sqlite
//	""                                                      -> sqlite, cadastro.db
//
// Anything else is treated as a sqlite file path.
func ParseDSN(databaseURL string) (Driver, string) {
	switch {
	case databaseURL == "":
		return DriverSQLite, sqliteDSN(defaultSQLiteFile)
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return DriverPostgres, databaseURL
	case strings.HasPrefix(databaseURL, "sqlite://"):
		return DriverSQLite, sqliteDSN(strings.TrimPrefix(databaseURL, "sqlite://"))
	case strings.Contains(databaseURL, "host=") || strings.Contains(databaseURL, "dbname="):
		return DriverPostgres, databaseURL
	}
	return DriverSQLite, sqliteDSN(databaseURL)
}

func sqliteDSN(path string) string {
	path = strings.TrimPrefix(path, "file:")
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return "file:" + path + sep + sqlitePragmas
}

func isMemoryDSN(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

// rebind converts '?' placeholders to $1, $2, ... for Postgres.
func rebind(driver Driver, query string) string {
	if driver != DriverPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}
