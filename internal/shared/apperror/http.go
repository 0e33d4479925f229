package apperror

import (
	"errors"
	"net/http"
)

type HTTPError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ToHTTP memetakan error apapun ke representasi HTTP.
// Error yang bukan *AppError dianggap infrastruktur dan tidak dibocorkan ke client.
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
		Code:    CodeDatabaseError,
		Message: ErrDatabase.Message,
	}
}
