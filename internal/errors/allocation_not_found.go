package errors

import "net/http"

var ErrAllocationNotFound = &Exception{
	Message:    "allocation not found",
	StatusCode: http.StatusNotFound,
}
