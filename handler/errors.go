package handler

import (
	"errors"
	"fmt"
	"net/http"
)

// Kinds of request-level failures. Match with errors.Is.
var (
	ErrRequest          = errors.New("request failed")
	ErrMissingParameter = errors.New("missing parameter")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrGateway          = errors.New("upstream service failed")
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrOutput           = errors.New("failed to write output")
	ErrInvalidStatus    = errors.New("invalid status code")
)

// Registration errors returned by Wrap.
var (
	ErrNilHandler             = errors.New("handler is nil")
	ErrContextFactoryRequired = errors.New("custom context type requires WithContextFactory")
	ErrBuildChain             = errors.New("failed to build validation chain")
)

// RequestError is a failure raised by business logic after validation has
// passed. The dispatcher logs it and responds with Status and no body.
type RequestError struct {
	Status    int
	Message   string
	Parameter string
	Kind      error
	Err       error
}

func (e *RequestError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes both the kind sentinel and the cause.
func (e *RequestError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// NewRequestError returns a generic request failure with the given status.
func NewRequestError(status int, message string, cause error) *RequestError {
	return &RequestError{Status: status, Message: message, Kind: ErrRequest, Err: cause}
}

func MissingParameter(name string) *RequestError {
	return &RequestError{
		Status:    http.StatusBadRequest,
		Message:   fmt.Sprintf("missing parameter '%s'", name),
		Parameter: name,
		Kind:      ErrMissingParameter,
	}
}

func InvalidParameter(name string, cause error) *RequestError {
	return &RequestError{
		Status:    http.StatusBadRequest,
		Message:   fmt.Sprintf("invalid parameter '%s'", name),
		Parameter: name,
		Kind:      ErrInvalidParameter,
		Err:       cause,
	}
}

// Gateway reports a failure of an upstream dependency (502).
func Gateway(message string, cause error) *RequestError {
	return &RequestError{Status: http.StatusBadGateway, Message: message, Kind: ErrGateway, Err: cause}
}

// Unauthenticated reports a caller without access (403).
func Unauthenticated(message string) *RequestError {
	return &RequestError{Status: http.StatusForbidden, Message: message, Kind: ErrUnauthenticated}
}

// OutputError reports a failure while producing the response body (500).
func OutputError(cause error) *RequestError {
	return &RequestError{Status: http.StatusInternalServerError, Kind: ErrOutput, Err: cause}
}

// AsRequestError extracts a *RequestError from err.
func AsRequestError(err error) (*RequestError, bool) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr, true
	}
	return nil, false
}
