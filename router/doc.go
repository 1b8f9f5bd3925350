// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the cadastro/respostas API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(conn, ready)

# Endpoints

Root and health:

	GET /        - Plain text liveness message
	GET /health  - Last database probe (200 up, 503 down)

Registrations:

	GET    /cadastro/{email} - 200 if registered, 404 if available
	POST   /cadastro         - Register an email
	DELETE /cadastro/{id}    - Delete a user and their answers

Answers:

	GET  /respostas                        - All answers
	POST /respostas                        - Submit an answer
	GET  /respostas/usuario/{usuario}      - Answers by email or user id
	GET  /respostas/pergunta/{pergunta_id} - Answers to one question

Every route except the root and health endpoints is wrapped with
middleware.WithLogging. CORS is applied by the caller around the whole mux.
*/
package router
