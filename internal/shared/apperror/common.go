package apperror

import "net/http"

var (
	ErrInternal = New(
		CodeInternalError,
		"something went wrong!",
		http.StatusInternalServerError,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)

	ErrTooManyRequests = New(
		CodeRateLimited,
		"Too many requests from this IP",
		http.StatusTooManyRequests,
	)

	ErrDataAccess = New(
		CodeDataAccess,
		"failed to read data from store",
		http.StatusInternalServerError,
	)
)

func RequiredField(field string) *AppError {
	return New(CodeValidationError, field+" is required", http.StatusBadRequest)
}

func InvalidField(field string) *AppError {
	return New(CodeValidationError, field+" is invalid", http.StatusBadRequest)
}
