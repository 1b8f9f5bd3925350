// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the cadastro/respostas API server.

The server registers users by email and stores their answers to a
questionnaire, keyed by question number, in a SQL database.

# Starting the Server

Configuration comes from flags, environment variables (optionally loaded
from a .env file), a config file, or defaults:

	DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 3000 -d "postgres://..." -create-schema

With no database URL the server uses a local sqlite file, cadastro.db.

# Configuration

  - DATABASE_URL (-d): postgres://, postgresql://, sqlite:// or a file path
  - PORT (-p): Server port (default: 3000)
  - LOG_LEVEL (--log-level): debug, info, warn, error
  - APP_ENV (--env): dev, staging, prod (prod logs JSON)
  - CREATE_SCHEMA (--create-schema): create tables on startup
  - PROBE_INTERVAL (--probe-interval): database health probe period
  - DB_MAX_OPEN_CONNS, DB_MAX_IDLE_CONNS: pool sizing
  - -c: config file (yaml, json or toml)

A database that is unreachable at startup is logged, not fatal. GET /health
reports 503 until a probe succeeds.

# Architecture

  - handlers: HTTP request handlers (registrations, answers)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - db: Connection pool, schema, readiness probe
  - logging: slog setup
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
