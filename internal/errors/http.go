package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// maxBodyInError bounds how much of a response body is kept on an error.
const maxBodyInError = 512

// apiErrorItem is the element Instapaper puts in the result array on failure:
// [{"type":"error","error_code":1240,"message":"Invalid URL specified"}]
type apiErrorItem struct {
	Type      string `json:"type"`
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
}

// NewHTTPError builds the error for a non-2xx response. 401 and 403 become an
// AuthenticationError wrapping the APIError; everything else is an APIError.
func NewHTTPError(op string, statusCode int, body []byte) error {
	apiErr := &APIError{
		Op:         op,
		StatusCode: statusCode,
		Body:       truncate(body),
		Err:        fmt.Errorf("%s", http.StatusText(statusCode)),
	}
	if code, msg, ok := ParseErrorBody(body); ok {
		apiErr.Code = code
		apiErr.Message = msg
	}
	if statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		return &AuthenticationError{Op: op, StatusCode: statusCode, Err: apiErr}
	}
	return apiErr
}

// NewNetworkError wraps a failure to send the request or read the response.
func NewNetworkError(op string, err error) *APIError {
	return &APIError{Op: op, Err: fmt.Errorf("network error: %w", err)}
}

// NewDecodeError wraps a body that could not be decoded.
func NewDecodeError(op string, statusCode int, body []byte, err error) *APIError {
	return &APIError{Op: op, StatusCode: statusCode, Body: truncate(body), Err: fmt.Errorf("decode response: %w", err)}
}

// NewValidationError wraps a request rejected before it was sent.
func NewValidationError(op string, err error) *APIError {
	return &APIError{Op: op, Err: fmt.Errorf("invalid request: %w", err)}
}

// ParseErrorBody extracts the first Instapaper error object from body.
func ParseErrorBody(body []byte) (code int, message string, ok bool) {
	var items []apiErrorItem
	if err := json.Unmarshal(body, &items); err != nil {
		return 0, "", false
	}
	for _, it := range items {
		if it.Type == "error" {
			return it.ErrorCode, it.Message, true
		}
	}
	return 0, "", false
}

func truncate(body []byte) string {
	if len(body) > maxBodyInError {
		return string(body[:maxBodyInError]) + "..."
	}
	return string(body)
}
