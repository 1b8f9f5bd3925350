// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"fmt"
)

// CreateSchema creates the cadastro and respostas tables.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, conn *Conn) error {
	stmts := sqliteSchema
	if conn.Driver() == DriverPostgres {
		stmts = postgresSchema
	}

	for _, stmt := range stmts {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS cadastro (
		id SERIAL PRIMARY KEY,
		email TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS respostas (
		id SERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES cadastro(id) ON DELETE CASCADE,
		pergunta_id INTEGER NOT NULL,
		resposta_chave TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_respostas_user_id ON respostas(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_respostas_pergunta_id ON respostas(pergunta_id)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS cadastro (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS respostas (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES cadastro(id) ON DELETE CASCADE,
		pergunta_id INTEGER NOT NULL,
		resposta_chave TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_respostas_user_id ON respostas(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_respostas_pergunta_id ON respostas(pergunta_id)`,
}
