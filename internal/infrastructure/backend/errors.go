package backend

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/storefront/backend/internal/domain/shared"
)

// HTTPError is returned for a non-2xx response that does not map to a domain
// error kind. It keeps the downstream status so it can be passed on.
type HTTPError struct {
	StatusCode int
	Message    string
	Body       string
}

// Error implements the error interface
func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
	}
	return fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// errorBody is the subset of the error response body the client reads
type errorBody struct {
	Message string `json:"message"`
}

// errorMessage extracts the message of an error body, falling back to the raw body
func errorMessage(body []byte) string {
	var info errorBody
	if err := json.Unmarshal(body, &info); err == nil && info.Message != "" {
		return info.Message
	}
	return strings.TrimSpace(string(body))
}

// translateStatus maps a failed response to an error:
// 404 is NotFound, 422 is InvalidInput, any other status is an *HTTPError.
func translateStatus(status int, body []byte) error {
	message := errorMessage(body)
	switch status {
	case http.StatusNotFound:
		return shared.NewNotFoundError("%s", message)
	case http.StatusUnprocessableEntity:
		return shared.NewInvalidInputError("%s", message)
	default:
		return &HTTPError{StatusCode: status, Message: message, Body: string(body)}
	}
}
