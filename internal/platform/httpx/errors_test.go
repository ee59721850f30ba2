package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wingscafe/tracker/internal/checkout"
	"github.com/wingscafe/tracker/internal/shared"
)

func TestRespondErrorStatuses(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("catalog: add: %w", shared.FieldError("name", "required")), http.StatusBadRequest},
		{fmt.Errorf("%w: eof", ErrBadRequest), http.StatusBadRequest},
		{fmt.Errorf("catalog: %w", shared.ErrNotFound), http.StatusNotFound},
		{&checkout.InsufficientStockError{Available: 2}, http.StatusConflict},
		{checkout.ErrInvalidQuantity, http.StatusUnprocessableEntity},
		{checkout.ErrProductNotSelected, http.StatusUnprocessableEntity},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		RespondError(rec, tc.err)
		require.Equal(t, tc.status, rec.Code, tc.err.Error())
	}
}

func TestRespondErrorValidationFields(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, fmt.Errorf("roster: %w", shared.FieldError("email", "email")))

	var body ProblemDetail
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, map[string]string{"email": "email"}, body.Fields)
}

func TestRespondErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, errors.New("pg: connection refused"))
	require.NotContains(t, rec.Body.String(), "connection refused")
}
