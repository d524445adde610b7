package binder

import (
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/paramguard/pkg/validator"
)

// DefaultMaxMemory is the maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20

// Extractor produces the parameter lookup for a request.
type Extractor func(r *http.Request) (validator.Params, error)

// Option configures Params.
type Option func(*options)

type options struct {
	maxMemory int64
	path      bool
}

// WithMaxMemory sets the in-memory limit for multipart forms.
func WithMaxMemory(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxMemory = n
		}
	}
}

// WithPathParams includes chi URL parameters. Query and form values of the
// same name take precedence.
func WithPathParams() Option {
	return func(o *options) { o.path = true }
}

// Params returns an Extractor that merges query parameters with the
// urlencoded or multipart body of the request. Bodies of any other media type
// are ignored: they carry no request parameters.
//
// Example:
//
//	extract := binder.Params(binder.WithPathParams())
//	params, err := extract(r)
//	if err != nil {
//		// malformed body
//	}
//	id, ok := params.Get("id")
func Params(opts ...Option) Extractor {
	o := &options{maxMemory: DefaultMaxMemory}
	for _, opt := range opts {
		opt(o)
	}

	return func(r *http.Request) (validator.Params, error) {
		values := url.Values{}

		if o.path {
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				for i, key := range rctx.URLParams.Keys {
					if key != "*" && i < len(rctx.URLParams.Values) {
						values.Set(key, rctx.URLParams.Values[i])
					}
				}
			}
		}

		form, err := parseBody(r, o.maxMemory)
		if err != nil {
			return nil, err
		}
		for key, vs := range form {
			values[key] = vs
		}
		return validator.Values(values), nil
	}
}

// parseBody returns query and body values for form requests, or query values only.
func parseBody(r *http.Request, maxMemory int64) (url.Values, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" || r.Body == nil || r.Body == http.NoBody {
		return r.URL.Query(), nil
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}

	switch {
	case mediaType == "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}
		return r.Form, nil

	case strings.HasPrefix(mediaType, "multipart/form-data"):
		if params["boundary"] == "" {
			return nil, fmt.Errorf("%w: missing boundary in content type", ErrFailedToParseForm)
		}
		if err := r.ParseMultipartForm(maxMemory); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}
		return r.Form, nil

	default:
		return r.URL.Query(), nil
	}
}
