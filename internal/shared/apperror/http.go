package apperror

import "net/http"

type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP flattens any error into the shape handlers write to the client.
func ToHTTP(err error) HTTPError {
	if err == nil {
		return HTTPError{
			Status:  ErrInternal.HTTPStatus,
			Code:    ErrInternal.Code,
			Message: ErrInternal.Message,
		}
	}

	if appErr, ok := As(err); ok {
		status := appErr.HTTPStatus
		if status == 0 {
			status = http.StatusBadRequest
		}
		return HTTPError{
			Status:  status,
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		}
	}

	msg := err.Error()
	if msg == "" {
		msg = ErrInternal.Message
	}
	return HTTPError{
		Status:  ErrInternal.HTTPStatus,
		Code:    ErrInternal.Code,
		Message: msg,
	}
}
