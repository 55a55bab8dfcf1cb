package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/signalsfoundry/sensitivity-calculator/core"
	"github.com/signalsfoundry/sensitivity-calculator/units"
)

func TestStatusForError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"unknown parameter", &core.UnknownParameterError{Name: "warble"}, http.StatusBadRequest},
		{"range", &core.RangeError{Name: "elevation", Value: 2, Min: 5, Max: 90}, http.StatusBadRequest},
		{"invalid input", &core.InvalidInputError{Reason: "nothing to solve for"}, http.StatusBadRequest},
		{"domain", &core.DomainError{Op: "opacity lookup", Reason: "frequency outside table"}, http.StatusBadRequest},
		{"unit", &units.UnitError{Reason: "dimension mismatch"}, http.StatusBadRequest},
		{"wrapped range", fmt.Errorf("set elevation: %w", &core.RangeError{Name: "elevation"}), http.StatusBadRequest},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := statusForError(tc.err); got != tc.want {
				t.Errorf("statusForError(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}
