package api

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound       = errors.New("api: not found")
	ErrBadRequest     = errors.New("api: bad request")
	ErrEmailDisabled  = errors.New("api: test email sending is not configured")
	ErrRequestTooLong = errors.New("api: request body too large")
)

// HTTPError pairs an HTTP status with a stable machine-readable code.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.Status)
}

func (e HTTPError) Unwrap() error { return e.Err }

func notFound(what string, err error) HTTPError {
	return HTTPError{Status: http.StatusNotFound, Code: "not_found", Message: what + " not found", Err: errors.Join(ErrNotFound, err)}
}

func badRequest(msg string, err error) HTTPError {
	return HTTPError{Status: http.StatusBadRequest, Code: "bad_request", Message: msg, Err: errors.Join(ErrBadRequest, err)}
}
