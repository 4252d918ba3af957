package respond

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Envelope is the command response body: every reply carries an errorMap,
// empty on success, keyed by failure category otherwise.
type Envelope map[string]interface{}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// WriteResult writes a 200 response with an empty errorMap merged into payload.
func WriteResult(w http.ResponseWriter, payload Envelope) {
	body := Envelope{"errorMap": map[string]interface{}{}}
	for k, v := range payload {
		body[k] = v
	}
	WriteJSON(w, http.StatusOK, body)
}

// WriteErrorMap writes a response whose errorMap has a single category entry.
func WriteErrorMap(w http.ResponseWriter, statusCode int, category, message string) {
	WriteJSON(w, statusCode, Envelope{
		"errorMap": map[string]interface{}{category: message},
	})
}

// WriteValidationErrors writes a 400 with per-field violation messages and
// echoes the offending dtoIn, matching the command contract.
func WriteValidationErrors(w http.ResponseWriter, fieldErrors map[string]string, dtoIn map[string]interface{}) {
	WriteJSON(w, http.StatusBadRequest, Envelope{
		"errorMap": map[string]interface{}{"validation": fieldErrors},
		"dtoIn":    dtoIn,
	})
}

// WriteUnauthenticated writes a 401 under the auth category.
func WriteUnauthenticated(w http.ResponseWriter, message string) {
	WriteErrorMap(w, http.StatusUnauthorized, "auth", message)
}

// WriteForbidden writes a 403 under the auth category.
func WriteForbidden(w http.ResponseWriter, message string) {
	WriteErrorMap(w, http.StatusForbidden, "auth", message)
}

// WriteNotFound writes a 404 under the notFound category.
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteErrorMap(w, http.StatusNotFound, "notFound", message)
}

// WriteInternalError writes a 500 under the system category. Callers must
// pass a generic message; internal diagnostics belong in the log, not here.
func WriteInternalError(w http.ResponseWriter, message string) {
	WriteErrorMap(w, http.StatusInternalServerError, "system", message)
}

// WriteBadRequest writes a 400 under the request category (malformed body,
// before schema validation even runs).
func WriteBadRequest(w http.ResponseWriter, message string) {
	WriteErrorMap(w, http.StatusBadRequest, "request", message)
}
