// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/cadastro-respostas/db"
	"github.com/danielhkuo/cadastro-respostas/middleware"
	"github.com/danielhkuo/cadastro-respostas/models"
)

const (
	msgEmailRegistered  = "E-mail já cadastrado."
	msgEmailAvailable   = "E-mail disponível."
	msgEmailRequired    = "E-mail é obrigatório."
	msgUserDeleted      = "Usuário deletado com sucesso."
	msgUserNotFound     = "Usuário não encontrado."
	msgInvalidID        = "ID inválido."
	msgInvalidJSON      = "JSON inválido."
	msgCheckEmailFailed = "Erro ao verificar e-mail."
	msgCreateUserFailed = "Erro ao criar usuário."
	msgDeleteUserFailed = "Erro ao deletar usuário."
)

type RegistrationHandler struct {
	db *db.Conn
}

func NewRegistrationHandler(conn *db.Conn) *RegistrationHandler {
	return &RegistrationHandler{db: conn}
}

// CheckEmail handles GET /cadastro/{email}
func (h *RegistrationHandler) CheckEmail(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")
	if email == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgEmailRequired)
		return
	}

	var id int64
	err := h.db.QueryRowContext(r.Context(),
		h.db.Rebind("SELECT id FROM cadastro WHERE email = ?"), email).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		middleware.MessageResponse(w, http.StatusNotFound, msgEmailAvailable)
		return
	}
	if err != nil {
		logDBError(r, "failed to check email", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, msgCheckEmailFailed)
		return
	}

	middleware.MessageResponse(w, http.StatusOK, msgEmailRegistered)
}

// Create handles POST /cadastro
func (h *RegistrationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRegistrationRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	if err := req.Validate(); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgEmailRequired)
		return
	}

	var reg models.Registration
	err := h.db.QueryRowContext(r.Context(),
		h.db.Rebind("INSERT INTO cadastro (email) VALUES (?) RETURNING id, email"),
		req.Email,
	).Scan(&reg.ID, &reg.Email)
	if err != nil {
		logDBError(r, "failed to insert registration", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, msgCreateUserFailed)
		return
	}

	slog.Info("registration created", "id", reg.ID)

	middleware.JSONResponse(w, http.StatusCreated, reg)
}

// Delete handles DELETE /cadastro/{id}
func (h *RegistrationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	result, err := h.db.ExecContext(r.Context(),
		h.db.Rebind("DELETE FROM cadastro WHERE id = ?"), id)
	if err != nil {
		logDBError(r, "failed to delete registration", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, msgDeleteUserFailed)
		return
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logDBError(r, "failed to read affected rows", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, msgDeleteUserFailed)
		return
	}

	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, msgUserNotFound)
		return
	}

	slog.Info("registration deleted", "id", id)

	middleware.MessageResponse(w, http.StatusOK, msgUserDeleted)
}

// logDBError logs a driver error with enough context to find the request
func logDBError(r *http.Request, msg string, err error) {
	slog.Error(msg,
		"request_id", middleware.RequestID(r.Context()),
		"method", r.Method,
		"path", r.URL.Path,
		"code", db.ErrorCode(err),
		"error", err,
	)
}
