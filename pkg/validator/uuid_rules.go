package validator

import "github.com/google/uuid"

type uuidConstraint struct {
	name     string
	required bool
}

// UUID checks that a present parameter is a UUID in any form accepted by uuid.Parse.
func UUID(name string, required bool) (Constraint, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	return uuidConstraint{name: name, required: required}, nil
}

func (c uuidConstraint) Validate(params Params) error {
	value, present, err := lookup(params, c.name, c.required)
	if err != nil || !present {
		return err
	}
	if _, perr := uuid.Parse(value); perr == nil {
		return nil
	}
	return newError(TypeInvalidUUID, c.name, "must be a valid UUID", "validation.uuid")
}
