package applicationerrors

import (
	"fmt"
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrRequestBodyEmpty = apperror.New(
		apperror.CodeInvalidInput,
		"Request body cannot be empty.",
		http.StatusBadRequest,
	)
	ErrInvalidRequestBody = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid request body.",
		http.StatusBadRequest,
	)
	ErrMissingRequiredFields = apperror.New(
		apperror.CodeInvalidInput,
		"Missing required fields: leave_start_date, leave_end_date, and employeeId.",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)

// EmployeeDoesNotExist names the offending id in the canonical message.
func EmployeeDoesNotExist(id int) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidInput,
		fmt.Sprintf("Employee ID %d does not exist.", id),
		http.StatusBadRequest,
	)
}
