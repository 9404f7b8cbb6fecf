package seq

import (
	"errors"
	"fmt"
	"net/http"

	operatorerrors "github.com/dc-tec/seq-operator/internal/errors"
)

// APIError is a non-2xx response of the Seq API.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// Is makes every APIError match operatorerrors.ErrRemoteAPI.
func (e *APIError) Is(target error) bool {
	return target == operatorerrors.ErrRemoteAPI
}

// StatusCode returns the HTTP status of an APIError in err's chain, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsNotFound reports whether err is a 404 from the Seq API.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsUnauthorized reports whether err is a 401 from the Seq API: the credentials were
// rejected or the session is no longer valid.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}
