package main

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/paramguard/handler"
	"github.com/dmitrymomot/paramguard/pkg/binder"
	"github.com/dmitrymomot/paramguard/pkg/httpserver"
	"github.com/dmitrymomot/paramguard/pkg/i18n"
	"github.com/dmitrymomot/paramguard/pkg/requestid"
	"github.com/dmitrymomot/paramguard/pkg/rules"
)

var (
	//go:embed rules.yaml
	defaultRules []byte

	//go:embed messages.yaml
	defaultMessages []byte
)

// newRouter wires every handler. All chains are built here, so a broken rule
// stops the process before it serves traffic.
func newRouter(log *slog.Logger, manifest *rules.Manifest, tr *i18n.Translator) (http.Handler, error) {
	reg := rules.Default(rules.WithLogger(log))

	search, err := manifest.Chain(reg, "users.search")
	if err != nil {
		return nil, err
	}
	register, err := manifest.Chain(reg, "users.register")
	if err != nil {
		return nil, err
	}

	common := []handler.WrapOption[handler.Context]{
		handler.WithLogger[handler.Context](log),
		handler.WithRegistry[handler.Context](reg),
		handler.WithTranslator[handler.Context](tr),
		handler.WithBinder[handler.Context](binder.Params(binder.WithPathParams())),
		handler.WithDecorators(handler.Logging[handler.Context](log)),
	}
	with := func(opts ...handler.WrapOption[handler.Context]) []handler.WrapOption[handler.Context] {
		return append(append([]handler.WrapOption[handler.Context]{}, common...), opts...)
	}

	showUser, err := handler.WrapGenerator[handler.Context](userPage{}, with(handler.WithName[handler.Context]("users.show"))...)
	if err != nil {
		return nil, err
	}
	searchHandler, err := handler.Wrap(searchUsers, with(
		handler.WithName[handler.Context]("users.search"),
		handler.WithChain[handler.Context](search),
	)...)
	if err != nil {
		return nil, err
	}
	registerHandler, err := handler.Wrap(registerUser, with(
		handler.WithName[handler.Context]("users.register"),
		handler.WithChain[handler.Context](register),
	)...)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)

	r.Get("/health", httpserver.Health(log, httpserver.Check{
		Name: "rules",
		Fn: func(context.Context) error {
			if len(manifest.Names()) == 0 {
				return fmt.Errorf("no handler rules loaded")
			}
			return nil
		},
	}))
	r.Get("/users", searchHandler)
	r.Post("/users", registerHandler)
	r.Get("/users/{id}", showUser)

	return r, nil
}
