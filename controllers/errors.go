package controllers

import (
	"errors"
	"net/http"

	"github.com/somchx/buffet-ordering-system/services"
)

// แปลง business error → HTTP status
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrMenuItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrOrderClosed),
		errors.Is(err, services.ErrAlreadyCheckedOut),
		errors.Is(err, services.ErrMenuItemUnavailable),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidPrice):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
