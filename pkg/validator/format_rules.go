package validator

import "regexp"

// emailRegex accepts a local part of word, hyphen, dot, backtick and apostrophe
// characters, one or more domain labels and a 2 to 4 letter top-level domain.
var emailRegex = regexp.MustCompile("(?i)^[\\w\\-]([\\w\\-.`']*\\w)?@([\\w\\-]+\\.)+[a-z]{2,4}$")

type emailConstraint struct {
	name     string
	required bool
}

// Email checks that a present parameter is shaped like an email address.
func Email(name string, required bool) (Constraint, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	return emailConstraint{name: name, required: required}, nil
}

func (c emailConstraint) Validate(params Params) error {
	value, present, err := lookup(params, c.name, c.required)
	if err != nil || !present {
		return err
	}
	if emailRegex.MatchString(value) {
		return nil
	}
	return newError(TypeInvalidEmail, c.name, "must be a valid email address", "validation.email")
}

// ValidEmail reports whether value is accepted by the Email constraint.
func ValidEmail(value string) bool {
	return emailRegex.MatchString(value)
}
