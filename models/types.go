package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Request types

type CreateRegistrationRequest struct {
	Email string `json:"email"`
}

// Validate only checks presence; format is the database's concern.
func (r CreateRegistrationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required),
	)
}

type CreateAnswerRequest struct {
	UserID        int64  `json:"user_id"`
	PerguntaID    int64  `json:"pergunta_id"`
	RespostaChave string `json:"resposta_chave"`
}

// Validate treats zero values as missing.
func (r CreateAnswerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserID, validation.Required),
		validation.Field(&r.PerguntaID, validation.Required),
		validation.Field(&r.RespostaChave, validation.Required),
	)
}

// Domain types

// Registration is a row of cadastro.
type Registration struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// Answer is a row of respostas.
type Answer struct {
	ID            int64  `json:"id"`
	UserID        int64  `json:"user_id"`
	PerguntaID    int64  `json:"pergunta_id"`
	RespostaChave string `json:"resposta_chave"`
}

// Response types

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	CheckedAt string `json:"checked_at,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
