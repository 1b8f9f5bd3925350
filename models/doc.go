// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateRegistrationRequest: email
  - CreateAnswerRequest: user_id, pergunta_id, resposta_chave

Both implement Validate, which only checks that every field is present
(non-zero). Decoding is lenient about JSON types: ids may be numbers or
numeric strings, and email and resposta_chave accept any JSON value, stored
as text. null, false, 0 and "" count as missing.

# Domain Types

Rows as stored in the database:

  - Registration: cadastro row (id, email)
  - Answer: respostas row (id, user_id, pergunta_id, resposta_chave)

# Response Types

  - MessageResponse: message
  - HealthResponse: status, database, checked_at, error
  - ErrorResponse: error
*/
package models
