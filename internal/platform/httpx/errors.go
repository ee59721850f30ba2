package httpx

import (
	"errors"
	"net/http"

	"github.com/wingscafe/tracker/internal/checkout"
	"github.com/wingscafe/tracker/internal/shared"
)

// ErrBadRequest marks malformed request input such as undecodable JSON.
var ErrBadRequest = errors.New("bad request")

// RespondError maps domain errors to HTTP responses using RFC7807.
func RespondError(w http.ResponseWriter, err error) {
	var verr *shared.ValidationError
	var stock *checkout.InsufficientStockError
	switch {
	case errors.As(err, &verr):
		JSON(w, http.StatusBadRequest, ProblemDetail{
			Title:  "Validation Failed",
			Status: http.StatusBadRequest,
			Detail: verr.Error(),
			Fields: verr.Fields,
		})
	case errors.Is(err, shared.ErrValidation), errors.Is(err, ErrBadRequest):
		Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	case errors.Is(err, shared.ErrNotFound):
		Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.As(err, &stock):
		Problem(w, http.StatusConflict, "Insufficient Stock", stock.Error())
	case errors.Is(err, checkout.ErrProductNotSelected), errors.Is(err, checkout.ErrInvalidQuantity):
		Problem(w, http.StatusUnprocessableEntity, "Sale Rejected", err.Error())
	default:
		Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
