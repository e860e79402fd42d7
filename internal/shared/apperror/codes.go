package apperror

const (
	// Client errors
	CodeInvalidInput    = "INVALID_INPUT"
	CodeValidationError = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeRateLimited     = "RATE_LIMITED"

	// Server / store errors
	CodeDataAccess         = "DATA_ACCESS_ERROR"
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
