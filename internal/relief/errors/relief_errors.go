package errors

import (
	"net/http"

	"go-payroll-my/internal/shared/apperror"
)

var (
	ErrUnknownItemKey = apperror.New(
		apperror.CodeInvalidInput,
		"One or more relief item keys are not recognized",
		http.StatusBadRequest,
	)

	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"Relief year must be a four digit year",
		http.StatusBadRequest,
	)
)
