package backend

import (
	"errors"
	"fmt"

	"fundilink/models"
)

// ErrAuthRequired marks any 401/403 from the backend, or a protected call
// attempted without a token. Callers show the sign-in prompt and, where it
// matters, preserve the user's intent for replay.
var ErrAuthRequired = errors.New("authentication required")

// ErrUnavailable covers network failures and unclassified non-2xx statuses.
// Callers show a generic "try again" message; no automatic retry happens
// at this layer.
var ErrUnavailable = errors.New("service unavailable")

// APIError is a server-rejected request (4xx with a detail body). Its
// detail is surfaced to the user verbatim; Fields carries the structured
// validation list when the backend sent one.
type APIError struct {
	Status int
	Detail string
	Fields []models.FieldError
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend rejected request (%d): %s", e.Status, e.Detail)
}

// AsAPIError unwraps err into an *APIError when possible.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
