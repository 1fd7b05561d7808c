package fitsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is the service's JSON error envelope. Message carries the single
// error form {"error": "..."}; Messages carries the multi-error form
// {"errors": [...]} used by validation failures. Form holds the echoed
// registration values, when the endpoint returns them.
type APIError struct {
	StatusCode int               `json:"-"`
	Message    string            `json:"error,omitempty"`
	Messages   []string          `json:"errors,omitempty"`
	Form       map[string]string `json:"form,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if len(e.Messages) > 0 {
		return fmt.Sprintf("api error (status %d): %v", e.StatusCode, e.Messages)
	}
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// decodeError reads a non-2xx response body into an APIError. Bodies that are
// not the JSON envelope still produce a usable error with the status code.
func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
