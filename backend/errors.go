package backend

import (
	"errors"
	"fmt"
	"net/http"
)

// RequestError wraps a transport-level failure (connection refused, timeout,
// DNS). The request never produced an HTTP response.
type RequestError struct {
	URL string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("backend request failed: %s: %v", e.URL, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// StatusError is a non-2xx HTTP response from the backend. Body holds a
// snippet of the response body for diagnostics.
type StatusError struct {
	URL  string
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned %d for %s: %s", e.Code, e.URL, e.Body)
}

// DecodeError is a 2xx response whose body could not be decoded as the
// expected JSON shape.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("backend response for %s is not valid JSON: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}
