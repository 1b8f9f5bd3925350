// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielhkuo/cadastro-respostas/db"
	"github.com/danielhkuo/cadastro-respostas/middleware"
	"github.com/danielhkuo/cadastro-respostas/models"
)

const (
	msgFieldsRequired       = "Todos os campos são obrigatórios."
	msgNoAnswersForEmail    = "Nenhuma resposta encontrada para este e-mail."
	msgNoAnswersForUser     = "Nenhuma resposta encontrada para este usuário."
	msgNoAnswersForQuestion = "Nenhuma resposta encontrada para esta pergunta."
	msgInvalidUser          = "Usuário inválido: informe um e-mail ou um ID numérico."
	msgListAnswersFailed    = "Erro ao buscar respostas."
	msgCreateAnswerFailed   = "Erro ao criar resposta."
)

const answerColumns = "id, user_id, pergunta_id, resposta_chave"

type AnswerHandler struct {
	db *db.Conn
}

func NewAnswerHandler(conn *db.Conn) *AnswerHandler {
	return &AnswerHandler{db: conn}
}

// List handles GET /respostas
func (h *AnswerHandler) List(w http.ResponseWriter, r *http.Request) {
	answers, err := h.queryAnswers(r.Context(),
		"SELECT "+answerColumns+" FROM respostas ORDER BY id")
	if err != nil {
		logDBError(r, "failed to list answers", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, msgListAnswersFailed)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, answers)
}

// Create handles POST /respostas
func (h *AnswerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAnswerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	if err := req.Validate(); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgFieldsRequired)
		return
	}

	var answer models.Answer
	err := h.db.QueryRowContext(r.Context(),
		h.db.Rebind(`
			INSERT INTO respostas (user_id, pergunta_id, resposta_chave)
			VALUES (?, ?, ?)
			RETURNING `+answerColumns),
		req.UserID, req.PerguntaID, req.RespostaChave,
	).Scan(&answer.ID, &answer.UserID, &answer.PerguntaID, &answer.RespostaChave)
	if err != nil {
		logDBError(r, "failed to insert answer", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, msgCreateAnswerFailed)
		return
	}

	slog.Info("answer created", "id", answer.ID, "user_id", answer.UserID, "pergunta_id", answer.PerguntaID)

	middleware.JSONResponse(w, http.StatusCreated, answer)
}

// ListByUser handles GET /respostas/usuario/{usuario}
// The path value is either the user's email or their numeric id.
func (h *AnswerHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	usuario := r.PathValue("usuario")

	var (
		query    string
		arg      any
		notFound string
	)
	if strings.Contains(usuario, "@") {
		query = "SELECT " + answerColumns + ` FROM respostas
			WHERE user_id = (SELECT id FROM cadastro WHERE email = ?)
			ORDER BY id`
		arg = usuario
		notFound = msgNoAnswersForEmail
	} else {
		userID, err := strconv.ParseInt(usuario, 10, 64)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidUser)
			return
		}
		query = "SELECT " + answerColumns + " FROM respostas WHERE user_id = ? ORDER BY id"
		arg = userID
		notFound = msgNoAnswersForUser
	}

	answers, err := h.queryAnswers(r.Context(), query, arg)
	if err != nil {
		logDBError(r, "failed to list answers by user", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, msgListAnswersFailed)
		return
	}

	if len(answers) == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, notFound)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, answers)
}

// ListByQuestion handles GET /respostas/pergunta/{pergunta_id}
func (h *AnswerHandler) ListByQuestion(w http.ResponseWriter, r *http.Request) {
	perguntaID, err := strconv.ParseInt(r.PathValue("pergunta_id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	answers, err := h.queryAnswers(r.Context(),
		"SELECT "+answerColumns+" FROM respostas WHERE pergunta_id = ? ORDER BY id", perguntaID)
	if err != nil {
		logDBError(r, "failed to list answers by question", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, msgListAnswersFailed)
		return
	}

	if len(answers) == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, msgNoAnswersForQuestion)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, answers)
}

// queryAnswers runs a SELECT over answerColumns. The result is never nil.
func (h *AnswerHandler) queryAnswers(ctx context.Context, query string, args ...any) ([]models.Answer, error) {
	rows, err := h.db.QueryContext(ctx, h.db.Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	answers := []models.Answer{}
	for rows.Next() {
		var a models.Answer
		if err := rows.Scan(&a.ID, &a.UserID, &a.PerguntaID, &a.RespostaChave); err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, rows.Err()
}
