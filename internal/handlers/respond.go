package handlers

import (
	"errors"

	"github.com/stocklane/inventory_backend/internal/apperrors"
)

// clientMessage extracts the message a client should see from a service error.
// AppError.Error() appends the wrapped sentinel cause; response bodies carry
// the message alone.
func clientMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
