// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/cadastro-respostas/db"
)

// TestDBURL is an in-memory sqlite database; each SetupTestDB call gets a fresh one
const TestDBURL = "sqlite://:memory:"

// SetupTestDB creates a fresh test database with the full schema
func SetupTestDB(t *testing.T) *db.Conn {
	t.Helper()

	conn, err := db.Open(TestDBURL, db.PoolConfig{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(context.Background(), conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// CreateTestRegistration inserts a cadastro row and returns its id
func CreateTestRegistration(t *testing.T, conn *db.Conn, email string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(conn.Rebind("INSERT INTO cadastro (email) VALUES (?) RETURNING id"), email).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test registration: %v", err)
	}

	return id
}

// CreateTestAnswer inserts a respostas row and returns its id
func CreateTestAnswer(t *testing.T, conn *db.Conn, userID, perguntaID int64, chave string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(conn.Rebind(`
		INSERT INTO respostas (user_id, pergunta_id, resposta_chave)
		VALUES (?, ?, ?)
		RETURNING id
	`), userID, perguntaID, chave).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test answer: %v", err)
	}

	return id
}

// CountRows returns the number of rows in table
func CountRows(t *testing.T, conn *db.Conn, table string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		var raw []byte
		if s, ok := body.(string); ok {
			raw = []byte(s)
		} else {
			raw, _ = json.Marshal(body)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
