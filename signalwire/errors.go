package signalwire

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid signalwire configuration")
	// ErrTransport indicates the request never reached the server or no response arrived
	ErrTransport = errors.New("signalwire request failed")
	// ErrUnauthorized indicates the server rejected the credentials
	ErrUnauthorized = errors.New("unauthorized access")
	// ErrNotFound indicates the addressed resource does not exist
	ErrNotFound = errors.New("resource not found")
	// ErrUnexpected covers every other failure, including undecodable responses
	ErrUnexpected = errors.New("unexpected error")
)

// ErrorKind classifies an Error. The set is closed.
type ErrorKind int

const (
	// KindUnexpected is any non-2xx status not covered below, or a 2xx body
	// that does not decode into the expected schema
	KindUnexpected ErrorKind = iota
	// KindTransport is a DNS, connect, TLS, timeout or body read failure
	KindTransport
	// KindUnauthorized is a 401 response
	KindUnauthorized
	// KindNotFound is a 404 on an endpoint addressed by identifier
	KindNotFound
)

// String returns the string representation of an ErrorKind
func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	default:
		return "unexpected"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindTransport:
		return ErrTransport
	case KindUnauthorized:
		return ErrUnauthorized
	case KindNotFound:
		return ErrNotFound
	default:
		return ErrUnexpected
	}
}

// Error is returned by every Client operation that fails after the client
// was constructed.
type Error struct {
	Kind ErrorKind
	// Message is the transport diagnostic, the not-found description, or the
	// raw response body for unexpected statuses
	Message string
	// StatusCode is zero for transport failures
	StatusCode int
	// Body holds the raw response text when one was received
	Body string
	Err  error
}

// Error implements the error interface
func (e *Error) Error() string {
	switch e.Kind {
	case KindTransport:
		return fmt.Sprintf("HTTP request failed with status: %s", e.Message)
	case KindUnauthorized:
		return "Unauthorized access"
	case KindNotFound:
		return fmt.Sprintf("Resource not found: %s", e.Message)
	default:
		return fmt.Sprintf("Unexpected error: %s", e.Message)
	}
}

// Unwrap returns the underlying cause, if any
func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match the package sentinels against the error kind
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// IsNotFound checks if the error indicates a not found response
func (e *Error) IsNotFound() bool {
	return e.Kind == KindNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *Error) IsUnauthorized() bool {
	return e.Kind == KindUnauthorized
}

// IsNotFound reports whether err is a not-found error from this package.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnauthorized reports whether err is an unauthorized error from this package.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

func transportError(err error) *Error {
	return &Error{Kind: KindTransport, Message: err.Error(), Err: err}
}

func unauthorizedError() *Error {
	return &Error{Kind: KindUnauthorized, StatusCode: http.StatusUnauthorized}
}

func notFoundError(resource, id, body string) *Error {
	return &Error{
		Kind:       KindNotFound,
		Message:    fmt.Sprintf("%s %q", resource, id),
		StatusCode: http.StatusNotFound,
		Body:       body,
	}
}

func statusError(status int, body string) *Error {
	return &Error{Kind: KindUnexpected, Message: body, StatusCode: status, Body: body}
}

func parseError(status int, body string, err error) *Error {
	return &Error{
		Kind:       KindUnexpected,
		Message:    fmt.Sprintf("failed to parse response: %v. Response was: %s", err, body),
		StatusCode: status,
		Body:       body,
		Err:        err,
	}
}

func unexpectedError(err error) *Error {
	return &Error{Kind: KindUnexpected, Message: err.Error(), Err: err}
}
