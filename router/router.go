// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"time"

	"github.com/danielhkuo/cadastro-respostas/db"
	"github.com/danielhkuo/cadastro-respostas/handlers"
	"github.com/danielhkuo/cadastro-respostas/middleware"
	"github.com/danielhkuo/cadastro-respostas/models"
)

const rootMessage = "Ok – Servidor disponível."

func NewRouter(conn *db.Conn, ready *db.Readiness) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	registrationHandler := handlers.NewRegistrationHandler(conn)
	answerHandler := handlers.NewAnswerHandler(conn)

	// Health check
	mux.HandleFunc("GET /health", healthHandler(ready))

	// Registrations
	mux.HandleFunc("GET /cadastro/{email}", middleware.WithLogging(registrationHandler.CheckEmail))
	mux.HandleFunc("POST /cadastro", middleware.WithLogging(registrationHandler.Create))
	mux.HandleFunc("DELETE /cadastro/{id}", middleware.WithLogging(registrationHandler.Delete))

	// Answers
	mux.HandleFunc("GET /respostas", middleware.WithLogging(answerHandler.List))
	mux.HandleFunc("POST /respostas", middleware.WithLogging(answerHandler.Create))
	mux.HandleFunc("GET /respostas/usuario/{usuario}", middleware.WithLogging(answerHandler.ListByUser))
	mux.HandleFunc("GET /respostas/pergunta/{pergunta_id}", middleware.WithLogging(answerHandler.ListByQuestion))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(rootMessage))
	})

	return mux
}

// healthHandler reports the last database probe: 200 when it succeeded,
// 503 otherwise (including before the first probe completes).
func healthHandler(ready *db.Readiness) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ok, lastErr, checkedAt := ready.Status()

		resp := models.HealthResponse{Status: "ok", Database: "up"}
		if !checkedAt.IsZero() {
			resp.CheckedAt = checkedAt.UTC().Format(time.RFC3339)
		}

		if ok {
			middleware.JSONResponse(w, http.StatusOK, resp)
			return
		}

		resp.Status = "unavailable"
		resp.Database = "down"
		if lastErr != nil {
			resp.Error = lastErr.Error()
		} else {
			resp.Error = "database not checked yet"
		}
		middleware.JSONResponse(w, http.StatusServiceUnavailable, resp)
	}
}
