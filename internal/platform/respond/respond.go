// Package respond junta los helpers de respuesta JSON que antes se duplicaban por módulo.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"pet-wellness-web/internal/platform/httpclient"
	"pet-wellness-web/internal/platform/validation"
)

type errorBody struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, errorBody{Message: msg})
}

// StatusOf mapea un error a status HTTP:
// - validation.Error => 422
// - APIError => mismo status que el backend
// - NetworkError => 502
func StatusOf(err error) int {
	var ve *validation.Error
	if errors.As(err, &ve) {
		return http.StatusUnprocessableEntity
	}
	var ae *httpclient.APIError
	if errors.As(err, &ae) && ae.Status >= 400 {
		return ae.Status
	}
	var ne *httpclient.NetworkError
	if errors.As(err, &ne) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// Error responde {"message": ...} con el status de StatusOf.
func Error(w http.ResponseWriter, err error) {
	status := StatusOf(err)

	var ve *validation.Error
	if errors.As(err, &ve) {
		JSON(w, status, errorBody{Message: ve.Error(), Fields: ve.Fields})
		return
	}

	var ae *httpclient.APIError
	if errors.As(err, &ae) {
		msg := ae.Message
		if msg == "" {
			msg = http.StatusText(status)
		}
		Message(w, status, msg)
		return
	}

	switch status {
	case http.StatusBadGateway:
		Message(w, status, "backend unavailable")
	default:
		Message(w, status, "internal error")
	}
}

// DecodeJSON decodifica el body; false si ya respondió 400.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		Message(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}
