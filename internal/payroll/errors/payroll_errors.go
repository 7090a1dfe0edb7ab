package errors

import (
	"net/http"

	"go-payroll-my/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found in this company",
		http.StatusNotFound,
	)

	ErrRunAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Payroll has already been run for this employee and period",
		http.StatusConflict,
	)

	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"Payroll period must be a valid year and month 1-12",
		http.StatusBadRequest,
	)

	ErrEmployeeInactive = apperror.New(
		apperror.CodeInvalidState,
		"Employee is not active for payroll",
		http.StatusUnprocessableEntity,
	)

	ErrRunNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payroll run not found",
		http.StatusNotFound,
	)
)
