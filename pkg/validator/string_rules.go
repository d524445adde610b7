package validator

type requiredConstraint struct {
	name string
}

// Required fails with missing-parameter when the named parameter is absent.
// An empty value counts as present.
func Required(name string) (Constraint, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	return requiredConstraint{name: name}, nil
}

func (c requiredConstraint) Validate(params Params) error {
	if _, ok := params.Get(c.name); ok {
		return nil
	}
	return missing(c.name)
}

func missing(name string) *ValidationError {
	return newError(TypeMissingParameter, name, "parameter is required", "validation.required")
}

// lookup implements the shared absent-parameter behaviour: an absent optional
// parameter passes, an absent required one fails as missing.
func lookup(params Params, name string, required bool) (value string, present bool, err error) {
	value, present = params.Get(name)
	if !present && required {
		return "", false, missing(name)
	}
	return value, present, nil
}
