package validator

import (
	"fmt"
	"regexp"
)

type patternConstraint struct {
	name     string
	required bool
	source   string
	re       *regexp.Regexp
}

// Pattern checks that a present parameter fully matches regex.
// An empty regex accepts any present value. The match is anchored on both ends.
func Pattern(name string, required bool, regex string) (Constraint, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}

	c := patternConstraint{name: name, required: required, source: regex}
	if regex != "" {
		re, err := regexp.Compile(`^(?:` + regex + `)$`)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, regex, err)
		}
		c.re = re
	}
	return c, nil
}

func (c patternConstraint) Validate(params Params) error {
	value, present, err := lookup(params, c.name, c.required)
	if err != nil || !present || c.re == nil {
		return err
	}
	if c.re.MatchString(value) {
		return nil
	}
	return newError(TypeInvalidParameter, c.name,
		fmt.Sprintf("must match pattern %s", c.source),
		"validation.pattern",
		Attr{Name: "pattern", Value: c.source},
	)
}
