package rules

import (
	"math"
	"slices"

	"github.com/dmitrymomot/paramguard/pkg/validator"
)

// Processor turns descriptors it recognises into constraints.
// Every registered processor inspects every descriptor; a processor opts in by
// returning true from Accepts.
type Processor interface {
	Accepts(d Descriptor) bool
	Constraint(d Descriptor) (validator.Constraint, error)
}

// BuildFunc builds a constraint from a descriptor.
type BuildFunc func(d Descriptor) (validator.Constraint, error)

type kindProcessor struct {
	kinds []Kind
	build BuildFunc
}

// NewProcessor returns a processor that accepts descriptors of the given kinds
// and builds them with build.
func NewProcessor(build BuildFunc, kinds ...Kind) Processor {
	return kindProcessor{kinds: slices.Clone(kinds), build: build}
}

func (p kindProcessor) Accepts(d Descriptor) bool {
	return slices.Contains(p.kinds, d.Kind)
}

func (p kindProcessor) Constraint(d Descriptor) (validator.Constraint, error) {
	return p.build(d)
}

// Builtin returns the processor for the parameter, long, email and temporal kinds.
func Builtin() Processor {
	return NewProcessor(buildBuiltin, KindParameter, KindLong, KindEmail, KindTemporal)
}

func buildBuiltin(d Descriptor) (validator.Constraint, error) {
	switch d.Kind {
	case KindParameter:
		return validator.Pattern(d.Name, d.IsRequired(), d.Matches)
	case KindLong:
		min, max := int64(math.MinInt64), int64(math.MaxInt64)
		if d.Min != nil {
			min = *d.Min
		}
		if d.Max != nil {
			max = *d.Max
		}
		return validator.Long(d.Name, d.IsRequired(), min, max)
	case KindEmail:
		return validator.Email(d.Name, d.IsRequired())
	default:
		return validator.Temporal(d.Name, d.IsRequired(), validator.TemporalType(d.Type))
	}
}

// UUIDs returns the processor for the uuid kind.
func UUIDs() Processor {
	return NewProcessor(func(d Descriptor) (validator.Constraint, error) {
		return validator.UUID(d.Name, d.IsRequired())
	}, KindUUID)
}

// Choices returns the processor for the choice kind.
func Choices() Processor {
	return NewProcessor(func(d Descriptor) (validator.Constraint, error) {
		return validator.Choice(d.Name, d.IsRequired(), d.Values...)
	}, KindChoice)
}
