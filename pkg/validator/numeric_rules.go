package validator

import (
	"fmt"
	"math"
	"strconv"
)

type longConstraint struct {
	name     string
	required bool
	min      int64
	max      int64
}

// Long checks that a present parameter parses as a base-10 int64 within
// [min, max], inclusive on both ends. min must be strictly less than max.
func Long(name string, required bool, min, max int64) (Constraint, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	if min >= max {
		return nil, fmt.Errorf("%w: %s: min=%d max=%d", ErrInvalidRange, name, min, max)
	}
	return longConstraint{name: name, required: required, min: min, max: max}, nil
}

// AnyLong is Long over the full int64 range.
func AnyLong(name string, required bool) (Constraint, error) {
	return Long(name, required, math.MinInt64, math.MaxInt64)
}

func (c longConstraint) Validate(params Params) error {
	value, present, err := lookup(params, c.name, c.required)
	if err != nil || !present {
		return err
	}

	v, perr := strconv.ParseInt(value, 10, 64)
	if perr != nil {
		return newError(TypeInvalidLong, c.name, "must be an integer", "validation.integer")
	}

	if v < c.min || v > c.max {
		return newError(TypeOutOfRange, c.name,
			fmt.Sprintf("must be between %d and %d", c.min, c.max),
			"validation.between",
			Attr{Name: "min", Value: strconv.FormatInt(c.min, 10)},
			Attr{Name: "max", Value: strconv.FormatInt(c.max, 10)},
		)
	}
	return nil
}
