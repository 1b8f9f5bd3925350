// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the cadastro/respostas API.

# Handler Types

Each handler is a struct holding the shared connection pool:

  - RegistrationHandler: email lookup, registration and deletion
  - AnswerHandler: answer submission and queries

Handlers are created via constructor functions that accept *db.Conn:

	registrationHandler := handlers.NewRegistrationHandler(conn)

# Registrations

	GET    /cadastro/{email} → CheckEmail (200 taken, 404 available)
	POST   /cadastro         → Create
	DELETE /cadastro/{id}    → Delete (answers are removed by cascade)

# Answers

	GET  /respostas                        → List
	POST /respostas                        → Create
	GET  /respostas/usuario/{usuario}      → ListByUser
	GET  /respostas/pergunta/{pergunta_id} → ListByQuestion

ListByUser treats a value containing '@' as an email and anything else as a
numeric user id. A value that is neither is rejected with 400.

# Responses

Success bodies are the row or list itself, or {"message": ...}. Failures are
{"error": ...} with a Portuguese message. Database errors are logged with the
driver error code and returned as 500 without detail.
*/
package handlers
