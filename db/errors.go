// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"errors"
	"strconv"

	"github.com/lib/pq"
	"modernc.org/sqlite"
)

// ErrorCode returns the driver's code for err: the SQLSTATE for Postgres,
// the numeric result code for sqlite, or "" for anything else.
func ErrorCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return strconv.Itoa(liteErr.Code())
	}

	return ""
}
