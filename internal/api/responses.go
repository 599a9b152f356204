package api

import (
	"net/http"

	"github.com/mealworks/savor-api/internal/api/shared"
)

// Thin forwarders so handlers in this package read cleanly. The real
// implementations live in the shared package.

// RespondWithJSON writes a success envelope.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, message string, data interface{}) {
	shared.RespondWithJSON(w, r, status, message, data)
}

// RespondWithError writes a failure envelope.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	shared.RespondWithError(w, r, status, message)
}

// RespondWithErrorAndLog writes a failure envelope and logs the cause.
func RespondWithErrorAndLog(w http.ResponseWriter, r *http.Request, status int, userMessage string, err error) {
	shared.RespondWithErrorAndLog(w, r, status, userMessage, err)
}

// DecodeJSON decodes a JSON request body.
func DecodeJSON(r *http.Request, v interface{}) error {
	return shared.DecodeJSON(r, v)
}

// DecodeForm decodes a JSON or form request body.
func DecodeForm(r *http.Request, v interface{}) error {
	return shared.DecodeForm(r, v)
}
