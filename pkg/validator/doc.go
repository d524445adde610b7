// Package validator implements request parameter constraints and the ordered
// rule chain that evaluates them.
//
// A Constraint is a pure predicate over a Params lookup. It returns nil when the
// parameters satisfy it and a *ValidationError otherwise. Constraints are built
// once, usually at handler registration time, and their constructors reject
// invalid configuration (empty names, regular expressions that do not compile,
// inverted ranges) so that misconfiguration never reaches a request.
//
// # Constraint kinds
//
//   - Required    – the parameter must be present; an empty value counts as present
//   - Pattern     – a present value must fully match a regular expression
//   - Email       – a present value must be shaped like an email address
//   - Long        – a present value must parse as int64 within [min, max]
//   - Temporal    – a present value must parse as the configured TemporalType
//   - UUID        – a present value must parse as a UUID
//   - Choice      – a present value must equal one of a fixed set of values
//
// All kinds except Required take a required flag: an absent optional parameter
// passes, an absent required parameter fails with missing-parameter.
//
// # Chains
//
// A Chain evaluates its constraints in insertion order and stops at the first
// failure, so declaration order decides which single error is reported:
//
//	age, _ := validator.Long("age", true, 0, 150)
//	contact, _ := validator.Email("contact", true)
//	chain := validator.NewChain(age, contact).Requires("token")
//
//	if err := chain.Validate(validator.Values(r.URL.Query())); err != nil {
//	    verr := validator.ExtractValidationError(err)
//	    // verr.Type, verr.Parameter, verr.Attrs, verr.Status
//	}
//
// Chains are immutable: With and Requires return new chains. A chain can be
// shared across goroutines without locking.
//
// # Error Handling
//
// ValidationError carries the error type tag, the parameter name, the HTTP
// status (400 for every builtin kind) and kind-specific attributes: pattern for
// invalid-parameter, min and max for out-of-range. Message, TranslationKey and
// TranslationValues are provided for human-facing rendering.
package validator
