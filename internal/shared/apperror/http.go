package apperror

import (
	"errors"
	"net/http"
)

// HTTPError is the wire-level projection handlers write out.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP projects any error to its HTTP representation. Errors that are not
// an AppError are treated as store failures: the request cannot be served,
// but the cause is reported to the caller with a 400 rather than hidden
// behind a 500.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		}
	}

	return HTTPError{
		Status:  http.StatusBadRequest,
		Code:    CodeStoreError,
		Message: err.Error(),
	}
}
