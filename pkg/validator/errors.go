package validator

import "errors"

// Construction errors. A constraint that fails to build never reaches a request.
var (
	// ErrEmptyParameterName is returned when a constraint is declared without a parameter name.
	ErrEmptyParameterName = errors.New("parameter name must not be empty")

	// ErrInvalidPattern is returned when a pattern constraint has a regular expression that does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrInvalidRange is returned when a long constraint has min >= max.
	ErrInvalidRange = errors.New("invalid range: min must be less than max")

	// ErrUnknownTemporalType is returned for a temporal type that has no known textual format.
	ErrUnknownTemporalType = errors.New("unknown temporal type")

	// ErrNoChoices is returned when a choice constraint is declared without any allowed value.
	ErrNoChoices = errors.New("choice constraint requires at least one value")
)
