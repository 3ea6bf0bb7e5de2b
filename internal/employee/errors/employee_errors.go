package employeeerrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found.",
		http.StatusNotFound,
	)
	// Canonical message regardless of which name is blank; the last checked
	// field wins, matching the documented contract.
	ErrNameBlank = apperror.New(
		apperror.CodeInvalidInput,
		"lastName can not be blank.",
		http.StatusBadRequest,
	)
)
