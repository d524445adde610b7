package validator

import (
	"fmt"
	"slices"
	"strings"
)

type choiceConstraint struct {
	name     string
	required bool
	values   []string
}

// Choice checks that a present parameter equals one of values. Comparison is case-sensitive.
func Choice(name string, required bool, values ...string) (Constraint, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoChoices, name)
	}
	return choiceConstraint{name: name, required: required, values: slices.Clone(values)}, nil
}

func (c choiceConstraint) Validate(params Params) error {
	value, present, err := lookup(params, c.name, c.required)
	if err != nil || !present {
		return err
	}
	if slices.Contains(c.values, value) {
		return nil
	}
	choices := strings.Join(c.values, ",")
	return newError(TypeInvalidChoice, c.name,
		fmt.Sprintf("must be one of: %s", choices),
		"validation.in_list",
		Attr{Name: "choices", Value: choices},
	)
}
