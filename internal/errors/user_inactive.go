package errors

import "net/http"

var ErrUserInactive = &Exception{
	Message:    "user is deactivated",
	StatusCode: http.StatusBadRequest,
}
