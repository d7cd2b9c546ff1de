package dto

import (
	"net/http"
	"time"

	"github.com/storefront/backend/internal/domain/shared"
)

// MessageUnexpected is returned for errors that carry no domain kind
const MessageUnexpected = "An unexpected error occurred"

// HTTPErrorInfo is the body of every error response
type HTTPErrorInfo struct {
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path"`
	HTTPStatus int    `json:"httpStatus"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

// NewHTTPErrorInfo builds an error body stamped with the current time.
// Error is the reason phrase of status.
func NewHTTPErrorInfo(status int, path, message string) HTTPErrorInfo {
	return HTTPErrorInfo{
		Timestamp:  time.Now().Format(time.RFC3339),
		Path:       path,
		HTTPStatus: status,
		Error:      http.StatusText(status),
		Message:    message,
	}
}

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	shared.CodeInvalidInput: http.StatusUnprocessableEntity,
	shared.CodeNotFound:     http.StatusNotFound,
}

// GetHTTPStatus returns the HTTP status code for a domain error code.
// Unknown codes are 500 Internal Server Error.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
