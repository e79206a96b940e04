// Package http exposes the REST API the mobile client talks to.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/courseflow/courseflow-backend/internal/domain"
)

// ProblemDetail is the RFC7807-style error body
type ProblemDetail struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// writeJSON sends a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeProblem sends an RFC7807-style problem response
func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	writeJSON(w, status, ProblemDetail{
		Title:  title,
		Status: status,
		Detail: detail,
	})
}

// respondError maps domain errors to HTTP responses
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, domain.ErrDuplicate):
		writeProblem(w, http.StatusConflict, "Duplicate", err.Error())
	case errors.Is(err, domain.ErrValidation):
		writeProblem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	case errors.Is(err, domain.ErrInvalidStatusTransition):
		writeProblem(w, http.StatusConflict, "Invalid Transition", err.Error())
	default:
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}

// decodeJSON decodes the request body into the target struct
func decodeJSON(r *http.Request, target any) error {
	return json.NewDecoder(r.Body).Decode(target)
}
