package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/signalsfoundry/sensitivity-calculator/core"
	"github.com/signalsfoundry/sensitivity-calculator/units"
)

// statusForError maps the calculator error taxonomy onto HTTP status
// codes. Every deterministic input error is a 400; anything else is a 500.
func statusForError(err error) int {
	var (
		unknownErr *core.UnknownParameterError
		rangeErr   *core.RangeError
		invalidErr *core.InvalidInputError
		domainErr  *core.DomainError
		unitErr    *units.UnitError
	)
	switch {
	case errors.As(err, &unknownErr),
		errors.As(err, &rangeErr),
		errors.As(err, &invalidErr),
		errors.As(err, &domainErr),
		errors.As(err, &unitErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorResponse is the JSON error body: {"detail": "..."}.
type errorResponse struct {
	Detail string `json:"detail"`
}

func writeError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	detail := err.Error()
	if status == http.StatusInternalServerError {
		detail = "internal error"
	}
	writeJSON(w, status, errorResponse{Detail: detail})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
