// Package handler wraps business logic in a request-dispatch shell that
// validates request parameters before the logic runs.
//
// Every request goes through two stages:
//
//  1. Validate. Parameters are extracted from the request and checked against
//     the handler's validation chain. The first failing constraint ends the
//     request: the client receives one XML error element and the status of the
//     failure. Business logic is never called.
//  2. Execute. Business logic receives a *Request view and an *xmlout.Writer.
//     A returned *RequestError ends the request with that error's status and no
//     body. Any other error responds 500. Otherwise the returned status is
//     written with the buffered XML body, except for 307 and 303: those are
//     redirects the logic has already written through Request.Redirect.
//
// # Declaring rules
//
// Chains come from descriptors built by a rules.Registry, from an explicit
// validator.Chain, or from a Generator that implements rules.Declarer:
//
//	type userPage struct{}
//
//	func (userPage) Parameters() []rules.Descriptor {
//		return []rules.Descriptor{
//			rules.LongParameter("id", rules.Between(1, 1_000_000)),
//			rules.TemporalParameter("since", rules.Optional()),
//		}
//	}
//
//	func (userPage) Generate(ctx handler.Context, req *handler.Request, out *xmlout.Writer) (int, error) {
//		id, err := req.Long("id")
//		if err != nil {
//			return 0, err
//		}
//		out.OpenElement("user")
//		out.AttributeInt("id", id)
//		out.CloseElement()
//		return http.StatusOK, nil
//	}
//
//	h, err := handler.WrapGenerator[handler.Context](userPage{})
//
// Chains are built when the handler is wrapped, so an invalid rule (an empty
// name, a bad pattern, min >= max) fails registration instead of a request.
// A built chain is never mutated and is shared by all concurrent requests.
//
// # Custom contexts
//
// Handlers may use their own context type by providing a factory:
//
//	type AppContext struct {
//		handler.Context
//		TenantID string
//	}
//
//	h, err := handler.Wrap(logic,
//		handler.WithContextFactory(func(w http.ResponseWriter, r *http.Request) AppContext {
//			return AppContext{Context: handler.NewContext(w, r), TenantID: tenantFrom(r)}
//		}),
//	)
package handler
