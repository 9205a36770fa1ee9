package errors

import "net/http"

var ErrDuplicateCategory = &Exception{
	Message:    "category name already exists",
	StatusCode: http.StatusConflict,
}
