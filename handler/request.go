package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrymomot/paramguard/pkg/binder"
	"github.com/dmitrymomot/paramguard/pkg/validator"
)

// Request is the view of a request handed to business logic once its
// parameters have passed validation. Accessors never panic; parse and
// presence failures come back as *RequestError values that the dispatcher
// turns into a 400 response when returned.
type Request struct {
	params validator.Params
	r      *http.Request
	w      http.ResponseWriter
}

func newRequest(params validator.Params, w http.ResponseWriter, r *http.Request) *Request {
	return &Request{params: params, r: r, w: w}
}

// Param returns the value of a parameter that must be present.
func (r *Request) Param(name string) (string, error) {
	value, ok := r.params.Get(name)
	if !ok {
		return "", MissingParameter(name)
	}
	return value, nil
}

// ParamOr returns the parameter value, or fallback when it is absent or empty.
func (r *Request) ParamOr(name, fallback string) string {
	if value, ok := r.params.Get(name); ok && value != "" {
		return value
	}
	return fallback
}

// OptionalParam returns the parameter value and whether it was sent.
func (r *Request) OptionalParam(name string) (string, bool) {
	return r.params.Get(name)
}

func (r *Request) Long(name string) (int64, error) {
	value, err := r.Param(name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, InvalidParameter(name, err)
	}
	return n, nil
}

// LongOr returns fallback when the parameter is absent or empty. A present
// value that is not an integer is still an error.
func (r *Request) LongOr(name string, fallback int64) (int64, error) {
	value, ok := r.params.Get(name)
	if !ok || value == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, InvalidParameter(name, err)
	}
	return n, nil
}

// PositiveLong requires an integer greater than zero.
func (r *Request) PositiveLong(name string) (int64, error) {
	n, err := r.Long(name)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, InvalidParameter(name, errors.New("must be positive"))
	}
	return n, nil
}

func (r *Request) Date(name string) (time.Time, error) {
	return r.temporal(name, validator.LocalDate)
}

// DateOr returns fallback when the parameter is absent or empty.
func (r *Request) DateOr(name string, fallback time.Time) (time.Time, error) {
	t, ok, err := r.optionalTemporal(name, validator.LocalDate)
	if err != nil || !ok {
		return fallback, err
	}
	return t, nil
}

// OptionalDate returns nil when the parameter is absent or empty.
func (r *Request) OptionalDate(name string) (*time.Time, error) {
	t, ok, err := r.optionalTemporal(name, validator.LocalDate)
	if err != nil || !ok {
		return nil, err
	}
	return &t, nil
}

func (r *Request) DateTime(name string) (time.Time, error) {
	return r.temporal(name, validator.LocalDateTime)
}

func (r *Request) OptionalDateTime(name string) (*time.Time, error) {
	t, ok, err := r.optionalTemporal(name, validator.LocalDateTime)
	if err != nil || !ok {
		return nil, err
	}
	return &t, nil
}

func (r *Request) temporal(name string, typ validator.TemporalType) (time.Time, error) {
	value, err := r.Param(name)
	if err != nil {
		return time.Time{}, err
	}
	t, err := typ.Parse(value)
	if err != nil {
		return time.Time{}, InvalidParameter(name, err)
	}
	return t, nil
}

func (r *Request) optionalTemporal(name string, typ validator.TemporalType) (time.Time, bool, error) {
	value, ok := r.params.Get(name)
	if !ok || value == "" {
		return time.Time{}, false, nil
	}
	t, err := typ.Parse(value)
	if err != nil {
		return time.Time{}, false, InvalidParameter(name, err)
	}
	return t, true, nil
}

// ParamMap returns the first value of every parameter.
func (r *Request) ParamMap() map[string]string {
	names := r.params.Names()
	m := make(map[string]string, len(names))
	for _, name := range names {
		if value, ok := r.params.Get(name); ok {
			m[name] = value
		}
	}
	return m
}

// Params returns the underlying parameter lookup.
func (r *Request) Params() validator.Params {
	return r.params
}

// Bind copies parameters into a struct tagged with `param`.
func (r *Request) Bind(v any) error {
	if err := binder.Bind(r.params, v); err != nil {
		return NewRequestError(http.StatusBadRequest, "failed to bind parameters", err)
	}
	return nil
}

// Redirect sends a temporary redirect and returns its status. Return that
// status from the handler so the dispatcher leaves the response untouched:
//
//	return req.Redirect("/login"), nil
func (r *Request) Redirect(url string) int {
	http.Redirect(r.w, r.r, url, http.StatusTemporaryRedirect)
	return http.StatusTemporaryRedirect
}

// RedirectSeeOther sends a 303 redirect and returns its status.
func (r *Request) RedirectSeeOther(url string) int {
	http.Redirect(r.w, r.r, url, http.StatusSeeOther)
	return http.StatusSeeOther
}

func (r *Request) Cookies() []*http.Cookie {
	return r.r.Cookies()
}

// AddCookie sets a cookie on the response.
func (r *Request) AddCookie(c *http.Cookie) {
	http.SetCookie(r.w, c)
}

func (r *Request) Path() string {
	return r.r.URL.Path
}

func (r *Request) HTTPRequest() *http.Request {
	return r.r
}

func (r *Request) ResponseWriter() http.ResponseWriter {
	return r.w
}
