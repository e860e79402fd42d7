package salaryerrors

import (
	"go-salary/internal/shared/apperror"
	"net/http"
)

var (
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeValidationError,
		"invalid date format, expected YYYY-MM-DD or an ISO timestamp",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeValidationError,
		"date_to must not be before date",
		http.StatusBadRequest,
	)
	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeValidationError,
		"invalid salary status filter",
		http.StatusBadRequest,
	)
	ErrInvalidPagination = apperror.New(
		apperror.CodeValidationError,
		"pagination take must be positive and skip must not be negative",
		http.StatusBadRequest,
	)
)
