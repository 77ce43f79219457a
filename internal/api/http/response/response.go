// Package response writes the portal's JSON envelope.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/dtroode/studentportal-server/internal/model"
)

// JSON writes payload with status.
func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// OK writes a successful envelope around data.
func OK[T any](w http.ResponseWriter, data T, message string) {
	JSON(w, http.StatusOK, model.OK(data, message))
}

// Message writes a successful envelope without data.
func Message(w http.ResponseWriter, message string) {
	JSON(w, http.StatusOK, model.Response[struct{}]{Success: true, Message: message})
}

// Error writes a failed envelope. Portal errors keep their message;
// anything else becomes a 500 with fallback.
func Error(w http.ResponseWriter, err error, fallback string) {
	if pe, ok := model.AsPortalError(err); ok {
		JSON(w, Status(pe.Kind), model.Fail(pe.Message))
		return
	}
	JSON(w, http.StatusInternalServerError, model.Fail(fallback))
}

// Status maps an error kind to its HTTP status code.
func Status(kind model.ErrorKind) int {
	switch kind {
	case model.KindInvalid:
		return http.StatusBadRequest
	case model.KindUnauthorized:
		return http.StatusUnauthorized
	case model.KindForbidden:
		return http.StatusForbidden
	case model.KindNotFound:
		return http.StatusNotFound
	case model.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
