package handler

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/paramguard/pkg/binder"
	"github.com/dmitrymomot/paramguard/pkg/i18n"
	"github.com/dmitrymomot/paramguard/pkg/logger"
	"github.com/dmitrymomot/paramguard/pkg/requestid"
	"github.com/dmitrymomot/paramguard/pkg/rules"
	"github.com/dmitrymomot/paramguard/pkg/validator"
	"github.com/dmitrymomot/paramguard/pkg/xmlout"
)

// ContentType is set on every response carrying an XML body.
const ContentType = "application/xml; charset=utf-8"

// HandlerFunc is business logic invoked with parameters that passed
// validation. It writes its XML fragment to out and returns the response
// status. Returning a *RequestError responds with that error's status and no
// body.
//
//	func getUser(ctx handler.Context, req *handler.Request, out *xmlout.Writer) (int, error) {
//		id, err := req.PositiveLong("id")
//		if err != nil {
//			return 0, err
//		}
//		out.OpenElement("user")
//		out.AttributeInt("id", id)
//		out.CloseElement()
//		return http.StatusOK, nil
//	}
type HandlerFunc[C Context] func(ctx C, req *Request, out *xmlout.Writer) (int, error)

// Generator is a handler type. Implementing rules.Declarer as well lets
// WrapGenerator derive its validation chain from the declared parameters.
type Generator[C Context] interface {
	Generate(ctx C, req *Request, out *xmlout.Writer) (int, error)
}

// Decorator wraps a HandlerFunc. The first decorator passed to
// WithDecorators is the outermost.
type Decorator[C Context] func(HandlerFunc[C]) HandlerFunc[C]

// WrapOption configures Wrap.
type WrapOption[C Context] func(*wrapConfig[C])

type chainPart struct {
	chain       *validator.Chain
	descriptors []rules.Descriptor
}

type wrapConfig[C Context] struct {
	name           string
	parts          []chainPart
	registry       *rules.Registry
	extract        binder.Extractor
	log            *slog.Logger
	translator     *i18n.Translator
	contextFactory func(http.ResponseWriter, *http.Request) C
	decorators     []Decorator[C]
}

// WithName sets the handler name used in logs.
func WithName[C Context](name string) WrapOption[C] {
	return func(c *wrapConfig[C]) {
		c.name = name
	}
}

// WithChain appends the constraints of an explicitly composed chain.
func WithChain[C Context](chain *validator.Chain) WrapOption[C] {
	return func(c *wrapConfig[C]) {
		if chain != nil {
			c.parts = append(c.parts, chainPart{chain: chain})
		}
	}
}

// WithRules appends constraints built from descriptors by the registry.
func WithRules[C Context](descriptors ...rules.Descriptor) WrapOption[C] {
	return func(c *wrapConfig[C]) {
		if len(descriptors) > 0 {
			c.parts = append(c.parts, chainPart{descriptors: descriptors})
		}
	}
}

// WithRegistry sets the registry used to build descriptors. Defaults to rules.Default.
func WithRegistry[C Context](reg *rules.Registry) WrapOption[C] {
	return func(c *wrapConfig[C]) {
		if reg != nil {
			c.registry = reg
		}
	}
}

// WithBinder sets the parameter extractor. Defaults to binder.Params().
func WithBinder[C Context](extract binder.Extractor) WrapOption[C] {
	return func(c *wrapConfig[C]) {
		if extract != nil {
			c.extract = extract
		}
	}
}

func WithLogger[C Context](log *slog.Logger) WrapOption[C] {
	return func(c *wrapConfig[C]) {
		if log != nil {
			c.log = log
		}
	}
}

// WithTranslator adds a localised message attribute to validation errors.
// The language is negotiated from the Accept-Language header.
func WithTranslator[C Context](tr *i18n.Translator) WrapOption[C] {
	return func(c *wrapConfig[C]) {
		c.translator = tr
	}
}

// WithContextFactory is required when C is not the default Context.
func WithContextFactory[C Context](f func(http.ResponseWriter, *http.Request) C) WrapOption[C] {
	return func(c *wrapConfig[C]) {
		if f != nil {
			c.contextFactory = f
		}
	}
}

func WithDecorators[C Context](decorators ...Decorator[C]) WrapOption[C] {
	return func(c *wrapConfig[C]) {
		c.decorators = append(c.decorators, decorators...)
	}
}

// Wrap converts business logic into an http.HandlerFunc that validates every
// request before invoking it. The validation chain is built here, so a bad
// rule is reported at registration time rather than on the first request.
//
//	h, err := handler.Wrap(getUser,
//		handler.WithRules[handler.Context](
//			rules.LongParameter("id", rules.Between(1, 1<<31)),
//		),
//	)
func Wrap[C Context](h HandlerFunc[C], opts ...WrapOption[C]) (http.HandlerFunc, error) {
	if h == nil {
		return nil, ErrNilHandler
	}

	cfg := &wrapConfig[C]{name: "handler"}
	for _, opt := range opts {
		opt(cfg)
	}
	return wrap(h, cfg)
}

// MustWrap is Wrap that panics on registration errors.
func MustWrap[C Context](h HandlerFunc[C], opts ...WrapOption[C]) http.HandlerFunc {
	fn, err := Wrap(h, opts...)
	if err != nil {
		panic(err)
	}
	return fn
}

// WrapGenerator wraps a Generator. Parameters declared through
// rules.Declarer are validated first, in declaration order, followed by any
// chain given through options.
func WrapGenerator[C Context](g Generator[C], opts ...WrapOption[C]) (http.HandlerFunc, error) {
	if g == nil {
		return nil, ErrNilHandler
	}

	cfg := &wrapConfig[C]{name: fmt.Sprintf("%T", g)}
	if d, ok := any(g).(rules.Declarer); ok {
		cfg.parts = append(cfg.parts, chainPart{descriptors: d.Parameters()})
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return wrap(g.Generate, cfg)
}

func wrap[C Context](h HandlerFunc[C], cfg *wrapConfig[C]) (http.HandlerFunc, error) {
	if cfg.log == nil {
		cfg.log = slog.Default()
	}
	if cfg.extract == nil {
		cfg.extract = binder.Params()
	}
	if cfg.contextFactory == nil {
		if _, ok := any(&httpContext{}).(C); !ok {
			return nil, ErrContextFactoryRequired
		}
		cfg.contextFactory = func(w http.ResponseWriter, r *http.Request) C {
			return any(NewContext(w, r)).(C)
		}
	}

	chain, err := buildChain(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrBuildChain, cfg.name, err)
	}

	final := h
	for i := len(cfg.decorators) - 1; i >= 0; i-- {
		final = cfg.decorators[i](final)
	}

	d := &dispatcher[C]{
		name:       cfg.name,
		chain:      chain,
		handler:    final,
		extract:    cfg.extract,
		factory:    cfg.contextFactory,
		translator: cfg.translator,
		log:        cfg.log.With(logger.Handler(cfg.name)),
	}
	return d.serveHTTP, nil
}

func buildChain[C Context](cfg *wrapConfig[C]) (*validator.Chain, error) {
	chain := validator.NewChain()
	for _, part := range cfg.parts {
		if part.chain != nil {
			chain = chain.With(part.chain.Constraints()...)
			continue
		}
		if cfg.registry == nil {
			cfg.registry = rules.Default(rules.WithLogger(cfg.log))
		}
		built, err := cfg.registry.Build(part.descriptors...)
		if err != nil {
			return nil, err
		}
		chain = chain.With(built.Constraints()...)
	}
	return chain, nil
}

// dispatcher runs the validate and execute stages for one handler.
type dispatcher[C Context] struct {
	name       string
	chain      *validator.Chain
	handler    HandlerFunc[C]
	extract    binder.Extractor
	factory    func(http.ResponseWriter, *http.Request) C
	translator *i18n.Translator
	log        *slog.Logger
}

func (d *dispatcher[C]) serveHTTP(w http.ResponseWriter, r *http.Request) {
	params, err := d.extract(r)
	if err != nil {
		d.fail(w, r, NewRequestError(http.StatusBadRequest, "malformed request parameters", err))
		return
	}

	if err := d.chain.Validate(params); err != nil {
		d.rejected(w, r, err)
		return
	}

	var body bytes.Buffer
	out := xmlout.New(&body)

	status, err := d.handler(d.factory(w, r), newRequest(params, w, r), out)
	if err != nil {
		if reqErr, ok := AsRequestError(err); ok {
			d.fail(w, r, reqErr)
			return
		}
		d.fail(w, r, NewRequestError(http.StatusInternalServerError, "handler failed", err))
		return
	}

	if err := out.Close(); err != nil {
		d.fail(w, r, OutputError(err))
		return
	}

	// The redirect has already been written by the handler.
	if status == http.StatusTemporaryRedirect || status == http.StatusSeeOther {
		return
	}

	if status == 0 {
		status = http.StatusOK
	}
	if !validStatus(status) {
		d.fail(w, r, OutputError(fmt.Errorf("%w: %d", ErrInvalidStatus, status)))
		return
	}
	d.respond(w, r, status, body.Bytes())
}

// validStatus reports whether net/http accepts code as a response status.
func validStatus(code int) bool {
	return code >= 100 && code <= 999
}

// rejected answers a request whose parameters failed validation.
func (d *dispatcher[C]) rejected(w http.ResponseWriter, r *http.Request, err error) {
	verr := validator.ExtractValidationError(err)
	if verr == nil {
		d.fail(w, r, NewRequestError(http.StatusInternalServerError, "constraint failed", err))
		return
	}

	status := verr.Status
	if !validStatus(status) {
		status = http.StatusBadRequest
	}

	d.log.LogAttrs(r.Context(), slog.LevelDebug, "request parameters rejected",
		logger.RequestID(requestid.FromContext(r.Context())),
		logger.ErrorType(string(verr.Type)),
		logger.Parameter(verr.Parameter),
		logger.Status(status),
	)

	var message string
	if d.translator != nil {
		message = d.translator.Message(d.translator.Match(r.Header.Get("Accept-Language")), verr)
	}

	var body bytes.Buffer
	if err := errorElement(verr, message).Render(r.Context(), &body); err != nil {
		d.fail(w, r, OutputError(err))
		return
	}
	d.respond(w, r, status, body.Bytes())
}

// fail logs a request-level failure and responds with its status only.
// A status net/http would reject is answered with 500.
func (d *dispatcher[C]) fail(w http.ResponseWriter, r *http.Request, reqErr *RequestError) {
	status := reqErr.Status
	if !validStatus(status) {
		status = http.StatusInternalServerError
	}

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}

	attrs := []slog.Attr{
		logger.RequestID(requestid.FromContext(r.Context())),
		logger.Status(status),
		logger.Error(reqErr),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	}
	if reqErr.Parameter != "" {
		attrs = append(attrs, logger.Parameter(reqErr.Parameter))
	}
	d.log.LogAttrs(r.Context(), level, "request failed", attrs...)

	w.WriteHeader(status)
}

func (d *dispatcher[C]) respond(w http.ResponseWriter, r *http.Request, status int, body []byte) {
	if len(body) > 0 {
		w.Header().Set("Content-Type", ContentType)
	}
	w.WriteHeader(status)
	if len(body) == 0 {
		return
	}
	if _, err := w.Write(body); err != nil {
		d.log.LogAttrs(r.Context(), slog.LevelError, "failed to write response",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(fmt.Errorf("%w: %w", ErrOutput, err)),
		)
	}
}
