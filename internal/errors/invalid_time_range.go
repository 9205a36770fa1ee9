package errors

import "net/http"

var ErrInvalidTimeRange = &Exception{
	Message:    "start time must be before end time",
	StatusCode: http.StatusBadRequest,
}
