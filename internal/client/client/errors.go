package client

import (
	"errors"
	"fmt"
	"net/http"
)

// Kinds of failure as seen by the authentication flow.
var (
	ErrNoConnection   = errors.New("no connection")
	ErrInvalidRequest = errors.New("invalid request")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("conflict")
	ErrValidation     = errors.New("validation failed")
	ErrInternal       = errors.New("internal server error")
	ErrUnavailable    = errors.New("server unavailable")
	ErrServer         = errors.New("server error")
	ErrClient         = errors.New("client error")

	// ErrEmptyResponse is returned when a 2xx answer carries no usable body.
	ErrEmptyResponse = errors.New("empty response")
)

// HTTPError is a failed round trip or a non-2xx answer.
// Status is 0 when no response was received at all.
type HTTPError struct {
	Method string
	Path   string
	Status int
	Body   []byte
	Err    error
}

func (e *HTTPError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s %s: no response: %v", e.Method, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s: status %d %s", e.Method, e.Path, e.Status, http.StatusText(e.Status))
}

func (e *HTTPError) Unwrap() error { return e.Err }

// RequestError means the request could not be built before transmission.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string { return "build request: " + e.Err.Error() }

func (e *RequestError) Unwrap() error { return e.Err }

// APIError is a classified failure carrying one fixed human-readable message.
type APIError struct {
	Kind    error
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string { return e.Message }

func (e *APIError) Unwrap() []error {
	errs := []error{e.Kind}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

var statusKinds = map[int]struct {
	kind error
	msg  string
}{
	0:                              {ErrNoConnection, "Unable to connect to the server. Please check your internet connection."},
	http.StatusBadRequest:          {ErrInvalidRequest, "Invalid request data. Please check your information."},
	http.StatusUnauthorized:        {ErrUnauthorized, "Authentication failed. Please check your credentials."},
	http.StatusForbidden:           {ErrForbidden, "Access denied. You do not have permission to perform this action."},
	http.StatusNotFound:            {ErrNotFound, "The requested resource was not found."},
	http.StatusConflict:            {ErrConflict, "Username or email already exists. Please choose different credentials."},
	http.StatusUnprocessableEntity: {ErrValidation, "Validation failed. Please check your input data."},
	http.StatusInternalServerError: {ErrInternal, "Internal server error. Please try again later."},
	http.StatusServiceUnavailable:  {ErrUnavailable, "Service temporarily unavailable. Please try again later."},
}

// Classify maps a transport failure to an *APIError. Errors that are neither
// *HTTPError nor *RequestError are reported as client errors. A nil err
// yields nil.
func Classify(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var he *HTTPError
	if errors.As(err, &he) {
		if k, ok := statusKinds[he.Status]; ok {
			return &APIError{Kind: k.kind, Status: he.Status, Message: k.msg, Err: err}
		}
		return &APIError{
			Kind:    ErrServer,
			Status:  he.Status,
			Message: fmt.Sprintf("Server Error: %d - %s", he.Status, http.StatusText(he.Status)),
			Err:     err,
		}
	}

	var re *RequestError
	if errors.As(err, &re) {
		return &APIError{Kind: ErrClient, Message: "Client Error: " + re.Err.Error(), Err: err}
	}

	return &APIError{Kind: ErrClient, Message: "Client Error: " + err.Error(), Err: err}
}
