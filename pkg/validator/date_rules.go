package validator

import (
	"fmt"
	"time"
)

// TemporalType names a date/time type by its canonical textual format.
type TemporalType string

const (
	LocalDate      TemporalType = "local-date"
	LocalDateTime  TemporalType = "local-date-time"
	LocalTime      TemporalType = "local-time"
	OffsetDateTime TemporalType = "offset-date-time"
	Instant        TemporalType = "instant"
	YearMonth      TemporalType = "year-month"
	Year           TemporalType = "year"
)

// Fractional seconds after the seconds field are accepted by time.Parse even
// when the layout omits them.
var temporalLayouts = map[TemporalType][]string{
	LocalDate:      {time.DateOnly},
	LocalDateTime:  {"2006-01-02T15:04:05", "2006-01-02T15:04"},
	LocalTime:      {time.TimeOnly, "15:04"},
	OffsetDateTime: {time.RFC3339Nano, "2006-01-02T15:04Z07:00"},
	Instant:        {time.RFC3339Nano},
	YearMonth:      {"2006-01"},
	Year:           {"2006"},
}

// Layouts returns the accepted layouts for t, or false if t is unknown.
func (t TemporalType) Layouts() ([]string, bool) {
	layouts, ok := temporalLayouts[t]
	return layouts, ok
}

// Parse parses value as t.
func (t TemporalType) Parse(value string) (time.Time, error) {
	layouts, ok := t.Layouts()
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownTemporalType, t)
	}

	var err error
	for _, layout := range layouts {
		var parsed time.Time
		if parsed, err = time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, err
}

type temporalConstraint struct {
	name     string
	required bool
	typ      TemporalType
}

// Temporal checks that a present parameter parses as typ. An empty typ means LocalDate.
func Temporal(name string, required bool, typ TemporalType) (Constraint, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	if typ == "" {
		typ = LocalDate
	}
	if _, ok := typ.Layouts(); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemporalType, typ)
	}
	return temporalConstraint{name: name, required: required, typ: typ}, nil
}

func (c temporalConstraint) Validate(params Params) error {
	value, present, err := lookup(params, c.name, c.required)
	if err != nil || !present {
		return err
	}
	if _, perr := c.typ.Parse(value); perr == nil {
		return nil
	}
	return newError(TypeInvalidTemporal, c.name,
		fmt.Sprintf("must be a valid %s", c.typ),
		"validation.temporal",
		Attr{Name: "temporal-type", Value: string(c.typ)},
	)
}
