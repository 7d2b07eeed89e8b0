package coral

import (
	"errors"
	"fmt"
	"net/http"
)

// execFn represents a func to operate on a classified-successful response.
type execFn func(response *http.Response) error

// Sentinel errors forming the closed classification taxonomy. Every
// failure surfaced by a Client is an *APIError wrapping exactly one of
// these, or wrapping the underlying transport/filesystem error when no
// kind applies.
var (
	// ErrRequestFailed marks an HTTP status code outside [200,299].
	// The response body is discarded, not inspected.
	ErrRequestFailed = errors.New("request failed")
	// ErrJSONConversion marks a request body that failed to serialize.
	ErrJSONConversion = errors.New("json conversion failure")
	// ErrInvalidData marks a response that arrived without a body
	// where one was required.
	ErrInvalidData = errors.New("invalid data")
	// ErrResponseUnsuccessful marks a transport completion that did
	// not yield a valid HTTP response.
	ErrResponseUnsuccessful = errors.New("response unsuccessful")
	// ErrJSONParsing marks a response body that failed to decode into
	// the expected type.
	ErrJSONParsing = errors.New("json parsing failure")
)

// APIError is the single error type a Client surfaces. Err holds a
// taxonomy sentinel, or the underlying error for unclassified
// transport and filesystem failures. Detail is diagnostic text, not
// meant to be pattern-matched.
type APIError struct {
	StatusCode int
	Detail     string
	Err        error
}

func (e *APIError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Detail != "":
		return fmt.Sprintf("%v: %d, %s", e.Err, e.StatusCode, e.Detail)
	case e.StatusCode != 0:
		return fmt.Sprintf("%v: %d", e.Err, e.StatusCode)
	case e.Detail != "":
		return fmt.Sprintf("%v: %s", e.Err, e.Detail)
	default:
		return e.Err.Error()
	}
}

func (e *APIError) Unwrap() error {
	return e.Err
}
