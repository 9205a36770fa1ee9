package errors

import "net/http"

var ErrFeatureRequestNotFound = &Exception{
	Message:    "feature request not found",
	StatusCode: http.StatusNotFound,
}
