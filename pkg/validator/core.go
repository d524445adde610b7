package validator

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
)

// Params is a read-only view over request parameters.
// Get distinguishes an absent parameter from a parameter present with an empty value.
type Params interface {
	Get(name string) (string, bool)
	Names() []string
}

// Values adapts url.Values to Params. The first value of a key wins.
type Values url.Values

func (v Values) Get(name string) (string, bool) {
	vs, ok := v[name]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

func (v Values) Names() []string {
	names := make([]string, 0, len(v))
	for name, vs := range v {
		if len(vs) > 0 {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// ErrorType tags a ValidationError with the kind of violated constraint.
type ErrorType string

const (
	TypeMissingParameter ErrorType = "missing-parameter"
	TypeInvalidParameter ErrorType = "invalid-parameter"
	TypeInvalidEmail     ErrorType = "invalid-email"
	TypeInvalidLong      ErrorType = "invalid-long-parameter"
	TypeOutOfRange       ErrorType = "out-of-range"
	TypeInvalidTemporal  ErrorType = "invalid-temporal"
	TypeInvalidUUID      ErrorType = "invalid-uuid"
	TypeInvalidChoice    ErrorType = "invalid-choice"
)

// Attr is a kind-specific attribute of a ValidationError, such as the pattern
// of a failed match or the bounds of a range.
type Attr struct {
	Name  string
	Value string
}

// ValidationError is the structured record produced by a failed constraint.
type ValidationError struct {
	Type              ErrorType
	Parameter         string
	Status            int
	Attrs             []Attr
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

func (e *ValidationError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: %s", e.Type, e.Parameter)
	}
	return fmt.Sprintf("%s: %s: %s", e.Type, e.Parameter, e.Message)
}

// Attr returns the value of the named attribute.
func (e *ValidationError) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Constraint is a single predicate over request parameters.
// Validate returns nil when the parameters satisfy the constraint and a
// *ValidationError otherwise.
type Constraint interface {
	Validate(params Params) error
}

// ConstraintFunc adapts an ordinary function to the Constraint interface.
type ConstraintFunc func(params Params) error

func (f ConstraintFunc) Validate(params Params) error {
	return f(params)
}

func newError(typ ErrorType, name, message, key string, attrs ...Attr) *ValidationError {
	values := map[string]any{"parameter": name}
	for _, a := range attrs {
		values[a.Name] = a.Value
	}
	return &ValidationError{
		Type:              typ,
		Parameter:         name,
		Status:            http.StatusBadRequest,
		Attrs:             attrs,
		Message:           message,
		TranslationKey:    key,
		TranslationValues: values,
	}
}

func checkName(name string) error {
	if name == "" {
		return ErrEmptyParameterName
	}
	return nil
}

// ExtractValidationError returns the ValidationError wrapped in err, if any.
func ExtractValidationError(err error) *ValidationError {
	if err == nil {
		return nil
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr
	}

	return nil
}

func IsValidationError(err error) bool {
	return ExtractValidationError(err) != nil
}
