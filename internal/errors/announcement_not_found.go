package errors

import "net/http"

var ErrAnnouncementNotFound = &Exception{
	Message:    "announcement not found",
	StatusCode: http.StatusNotFound,
}
