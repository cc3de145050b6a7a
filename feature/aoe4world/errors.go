package aoe4world

import (
	"errors"
	"fmt"
)

// ErrUpstreamRequest marks every failure to obtain a decoded response: transport errors,
// non-success statuses and undecodable bodies.
var ErrUpstreamRequest = errors.New("upstream request failed")

// HTTPError is returned when the API answers with a non-2xx status.
type HTTPError struct {
	StatusCode int
	Status     string
	URL        string
	// Body holds the first bytes of the response, if any.
	Body string
}

func (e *HTTPError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("GET %s: %s: %s", e.URL, e.Status, e.Body)
	}
	return fmt.Sprintf("GET %s: %s", e.URL, e.Status)
}

// Unwrap lets errors.Is match ErrUpstreamRequest.
func (e *HTTPError) Unwrap() error {
	return ErrUpstreamRequest
}

// IsNotFound reports whether err is an HTTPError with status 404.
func IsNotFound(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == 404
}
