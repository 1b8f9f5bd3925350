// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /respostas", middleware.WithLogging(handler))

Each request gets an X-Request-ID (a UUID unless the client sent one),
available to handlers through RequestID(r.Context()). Logs request start
(method, path, remote) and completion (status, size, duration_ms).

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Reflects the request origin and answers preflight requests with 204.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.MessageResponse(w, http.StatusOK, "E-mail já cadastrado.")
	middleware.ErrorResponse(w, http.StatusBadRequest, "E-mail é obrigatório.")

Parse JSON request bodies:

	var req models.CreateRegistrationRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "JSON inválido.")
		return
	}
*/
package middleware
