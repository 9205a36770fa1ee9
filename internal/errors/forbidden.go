package errors

import "net/http"

var ErrForbidden = &Exception{
	Message:    "operation not permitted for this role",
	StatusCode: http.StatusForbidden,
}
