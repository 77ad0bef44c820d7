package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrSessionExpired marks a call rejected with HTTP 401. The pipeline has
// already evicted the session by the time a caller sees this error; the
// call chain should be abandoned, not retried.
var ErrSessionExpired = errors.New("api: session expired")

// APIError is a non-2xx response passed through verbatim to the caller.
// Unauthorized responses become ErrSessionExpired instead, except on the
// credential exchange endpoints where the rejection payload matters.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

func newAPIError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	apiErr := &APIError{Status: resp.StatusCode}

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			apiErr.Message = payload.Error
		} else {
			apiErr.Message = payload.Message
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = string(body)
	}

	return apiErr
}
