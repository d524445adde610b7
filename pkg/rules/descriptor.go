package rules

import "github.com/dmitrymomot/paramguard/pkg/validator"

// Kind identifies a family of declarative rules.
type Kind string

const (
	KindParameter Kind = "parameter"
	KindLong      Kind = "long"
	KindEmail     Kind = "email"
	KindTemporal  Kind = "temporal"
	KindUUID      Kind = "uuid"
	KindChoice    Kind = "choice"
)

// Descriptor is a declarative parameter rule attached to a handler.
// Fields that do not apply to Kind are ignored by the builtin processors.
type Descriptor struct {
	Kind     Kind     `yaml:"kind"`
	Name     string   `yaml:"name"`
	Required *bool    `yaml:"required,omitempty"`
	Matches  string   `yaml:"matches,omitempty"`
	Min      *int64   `yaml:"min,omitempty"`
	Max      *int64   `yaml:"max,omitempty"`
	Type     string   `yaml:"type,omitempty"`
	Values   []string `yaml:"values,omitempty"`
}

// IsRequired reports whether the parameter is required. Rules are required unless declared otherwise.
func (d Descriptor) IsRequired() bool {
	return d.Required == nil || *d.Required
}

// Declarer is implemented by handlers that declare their parameter rules.
type Declarer interface {
	Parameters() []Descriptor
}

// Option customises a Descriptor built by one of the typed constructors.
type Option func(*Descriptor)

// Optional marks the parameter as not required.
func Optional() Option {
	return func(d *Descriptor) {
		required := false
		d.Required = &required
	}
}

// Matching sets the regular expression a parameter rule must fully match.
func Matching(regex string) Option {
	return func(d *Descriptor) { d.Matches = regex }
}

// Between sets the inclusive bounds of a long rule.
func Between(min, max int64) Option {
	return func(d *Descriptor) {
		d.Min = &min
		d.Max = &max
	}
}

// As sets the temporal type of a temporal rule.
func As(typ validator.TemporalType) Option {
	return func(d *Descriptor) { d.Type = string(typ) }
}

// OneOf sets the allowed values of a choice rule.
func OneOf(values ...string) Option {
	return func(d *Descriptor) { d.Values = append(d.Values, values...) }
}

func describe(kind Kind, name string, opts []Option) Descriptor {
	d := Descriptor{Kind: kind, Name: name}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// Parameter declares a string parameter, optionally constrained by Matching.
func Parameter(name string, opts ...Option) Descriptor {
	return describe(KindParameter, name, opts)
}

// LongParameter declares an integer parameter, optionally bounded by Between.
func LongParameter(name string, opts ...Option) Descriptor {
	return describe(KindLong, name, opts)
}

// EmailParameter declares an email address parameter.
func EmailParameter(name string, opts ...Option) Descriptor {
	return describe(KindEmail, name, opts)
}

// TemporalParameter declares a date/time parameter. The type defaults to a local date.
func TemporalParameter(name string, opts ...Option) Descriptor {
	return describe(KindTemporal, name, opts)
}

// UUIDParameter declares a UUID parameter.
func UUIDParameter(name string, opts ...Option) Descriptor {
	return describe(KindUUID, name, opts)
}

// ChoiceParameter declares a parameter restricted to the values given with OneOf.
func ChoiceParameter(name string, opts ...Option) Descriptor {
	return describe(KindChoice, name, opts)
}
