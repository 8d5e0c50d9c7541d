package apperror

import (
	"errors"
	"net/http"
)

// HTTPError is what the boundary writes. Anything that is not an AppError
// collapses to a generic 500 so driver/storage details never leak out.
type HTTPError struct {
	Status  int
	Code    string
	Message string
}

func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}

	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: "An unexpected error occurred",
	}
}
