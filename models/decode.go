// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// UnmarshalJSON accepts any JSON scalar for email.
func (r *CreateRegistrationRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Email json.RawMessage `json:"email"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	email, err := scalarText(raw.Email)
	if err != nil {
		return fmt.Errorf("email: %w", err)
	}
	r.Email = email
	return nil
}

// UnmarshalJSON accepts integers or numeric strings for the ids and any JSON
// value for resposta_chave.
func (r *CreateAnswerRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		UserID        json.RawMessage `json:"user_id"`
		PerguntaID    json.RawMessage `json:"pergunta_id"`
		RespostaChave json.RawMessage `json:"resposta_chave"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var err error
	if r.UserID, err = integerField(raw.UserID); err != nil {
		return fmt.Errorf("user_id: %w", err)
	}
	if r.PerguntaID, err = integerField(raw.PerguntaID); err != nil {
		return fmt.Errorf("pergunta_id: %w", err)
	}
	if r.RespostaChave, err = scalarText(raw.RespostaChave); err != nil {
		return fmt.Errorf("resposta_chave: %w", err)
	}
	return nil
}

// scalarText renders a JSON value as the text stored in the database.
// Absent fields, null, false, 0 and "" all come back empty and so fail
// presence validation. Objects and arrays are kept as JSON text.
func scalarText(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return "", err
	}

	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case bool:
		if t {
			return "true", nil
		}
		return "", nil
	case json.Number:
		if f, err := t.Float64(); err == nil && f == 0 {
			return "", nil
		}
		return t.String(), nil
	default:
		var compact bytes.Buffer
		if err := json.Compact(&compact, raw); err != nil {
			return "", err
		}
		return compact.String(), nil
	}
}

// integerField reads an integer given as a JSON number or a numeric string.
func integerField(raw json.RawMessage) (int64, error) {
	text, err := scalarText(raw)
	if err != nil || text == "" {
		return 0, err
	}

	n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not an integer: %s", text)
	}
	return n, nil
}
