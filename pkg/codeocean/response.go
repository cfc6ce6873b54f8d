package codeocean

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Response is the raw result of a single API request. The client returns it
// unprocessed: no status-code branching, no body parsing, no error
// translation. Interpretation is left entirely to the caller.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// IsSuccess reports whether the response carries a 2xx status code.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// JSON decodes the response body into v. Convenience for callers; the client
// never invokes it.
func (r *Response) JSON(v interface{}) error {
	err := json.Unmarshal(r.Body, v)
	if err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}

	return nil
}

// AsError converts a non-2xx response into an *APIError. It returns nil for
// 2xx responses. Callers that prefer error-style handling over raw status
// inspection can use it after any operation.
func (r *Response) AsError() error {
	if r.IsSuccess() {
		return nil
	}

	apiErr := &APIError{StatusCode: r.StatusCode}

	// Best effort: the platform reports errors as {"message": "..."}. A body
	// that does not parse still yields a useful status-only error.
	_ = json.Unmarshal(r.Body, apiErr)

	return apiErr
}
