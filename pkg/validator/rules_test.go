package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramguard/pkg/validator"
)

func TestRequired(t *testing.T) {
	t.Parallel()

	c, err := validator.Required("name")
	require.NoError(t, err)

	t.Run("passes with empty value", func(t *testing.T) {
		assert.NoError(t, c.Validate(params("name", "")))
	})

	t.Run("passes with value", func(t *testing.T) {
		assert.NoError(t, c.Validate(params("name", "alice")))
	})

	t.Run("fails when absent", func(t *testing.T) {
		verr := requireType(t, c.Validate(params("other", "x")), validator.TypeMissingParameter)
		assert.Equal(t, "name", verr.Parameter)
		assert.Empty(t, verr.Attrs)
	})

	t.Run("parameter names are case-sensitive", func(t *testing.T) {
		requireType(t, c.Validate(params("Name", "alice")), validator.TypeMissingParameter)
	})
}

func TestPattern(t *testing.T) {
	t.Parallel()

	t.Run("optional with regex", func(t *testing.T) {
		c, err := validator.Pattern("id", false, "[0-9]+")
		require.NoError(t, err)

		assert.NoError(t, c.Validate(params("id", "42")))
		assert.NoError(t, c.Validate(params()))

		verr := requireType(t, c.Validate(params("id", "abc")), validator.TypeInvalidParameter)
		assert.Equal(t, "id", verr.Parameter)
		pattern, ok := verr.Attr("pattern")
		assert.True(t, ok)
		assert.Equal(t, "[0-9]+", pattern)
	})

	t.Run("match is anchored", func(t *testing.T) {
		c, err := validator.Pattern("id", false, "[0-9]+")
		require.NoError(t, err)

		requireType(t, c.Validate(params("id", "a42")), validator.TypeInvalidParameter)
		requireType(t, c.Validate(params("id", "42a")), validator.TypeInvalidParameter)
		requireType(t, c.Validate(params("id", "42\n")), validator.TypeInvalidParameter)
	})

	t.Run("alternation is anchored as a whole", func(t *testing.T) {
		c, err := validator.Pattern("mode", true, "on|off")
		require.NoError(t, err)

		assert.NoError(t, c.Validate(params("mode", "off")))
		requireType(t, c.Validate(params("mode", "onoff")), validator.TypeInvalidParameter)
	})

	t.Run("required and absent", func(t *testing.T) {
		c, err := validator.Pattern("id", true, "[0-9]+")
		require.NoError(t, err)

		requireType(t, c.Validate(params()), validator.TypeMissingParameter)
	})

	t.Run("no regex accepts any present value", func(t *testing.T) {
		c, err := validator.Pattern("q", true, "")
		require.NoError(t, err)

		assert.NoError(t, c.Validate(params("q", "")))
		assert.NoError(t, c.Validate(params("q", "anything at all")))
		requireType(t, c.Validate(params()), validator.TypeMissingParameter)
	})

	t.Run("invalid regex fails construction", func(t *testing.T) {
		c, err := validator.Pattern("id", false, "[0-9")
		assert.ErrorIs(t, err, validator.ErrInvalidPattern)
		assert.Nil(t, c)
	})
}

func TestEmail(t *testing.T) {
	t.Parallel()

	c, err := validator.Email("contact", true)
	require.NoError(t, err)

	valid := []string{
		"a@b.com",
		"john.doe@example.org",
		"o'brien@mail.example.co",
		"first-last@sub.domain.info",
		"UPPER@EXAMPLE.COM",
	}
	for _, v := range valid {
		t.Run("valid "+v, func(t *testing.T) {
			assert.NoError(t, c.Validate(params("contact", v)))
		})
	}

	invalid := []string{
		"not-an-email",
		"",
		"a@b",
		"a@b.c",
		"a@b.museums",
		"@example.com",
		"a b@example.com",
		"a@@example.com",
	}
	for _, v := range invalid {
		t.Run("invalid "+v, func(t *testing.T) {
			verr := requireType(t, c.Validate(params("contact", v)), validator.TypeInvalidEmail)
			assert.Equal(t, "contact", verr.Parameter)
		})
	}

	t.Run("required and absent", func(t *testing.T) {
		requireType(t, c.Validate(params()), validator.TypeMissingParameter)
	})

	t.Run("optional and absent", func(t *testing.T) {
		optional, err := validator.Email("contact", false)
		require.NoError(t, err)
		assert.NoError(t, optional.Validate(params()))
	})

	t.Run("ValidEmail", func(t *testing.T) {
		assert.True(t, validator.ValidEmail("a@b.com"))
		assert.False(t, validator.ValidEmail("not-an-email"))
	})
}

func TestLong(t *testing.T) {
	t.Parallel()

	c, err := validator.Long("age", true, 0, 150)
	require.NoError(t, err)

	tests := []struct {
		name  string
		input validator.Params
		want  validator.ErrorType
	}{
		{name: "in range", input: params("age", "30")},
		{name: "lower bound inclusive", input: params("age", "0")},
		{name: "upper bound inclusive", input: params("age", "150")},
		{name: "explicit plus sign", input: params("age", "+42")},
		{name: "above range", input: params("age", "200"), want: validator.TypeOutOfRange},
		{name: "below range", input: params("age", "-1"), want: validator.TypeOutOfRange},
		{name: "not a number", input: params("age", "abc"), want: validator.TypeInvalidLong},
		{name: "decimal", input: params("age", "3.5"), want: validator.TypeInvalidLong},
		{name: "empty", input: params("age", ""), want: validator.TypeInvalidLong},
		{name: "overflow", input: params("age", "99999999999999999999"), want: validator.TypeInvalidLong},
		{name: "absent", input: params(), want: validator.TypeMissingParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.Validate(tt.input)
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			requireType(t, err, tt.want)
		})
	}

	t.Run("out of range carries bounds", func(t *testing.T) {
		verr := requireType(t, c.Validate(params("age", "200")), validator.TypeOutOfRange)
		assert.Equal(t, []validator.Attr{{Name: "min", Value: "0"}, {Name: "max", Value: "150"}}, verr.Attrs)
	})

	t.Run("min must be below max", func(t *testing.T) {
		c, err := validator.Long("age", true, 100, 10)
		assert.ErrorIs(t, err, validator.ErrInvalidRange)
		assert.Nil(t, c)

		_, err = validator.Long("age", true, 10, 10)
		assert.ErrorIs(t, err, validator.ErrInvalidRange)
	})

	t.Run("any long accepts the full range", func(t *testing.T) {
		c, err := validator.AnyLong("n", false)
		require.NoError(t, err)

		assert.NoError(t, c.Validate(params("n", "-9223372036854775808")))
		assert.NoError(t, c.Validate(params("n", "9223372036854775807")))
		assert.NoError(t, c.Validate(params()))
	})
}

func TestTemporal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ     validator.TemporalType
		valid   []string
		invalid []string
	}{
		{
			typ:     validator.LocalDate,
			valid:   []string{"2024-02-29", "1999-12-31"},
			invalid: []string{"2023-02-29", "2024-13-01", "24-01-01", "2024-01-01T10:00:00"},
		},
		{
			typ:     validator.LocalDateTime,
			valid:   []string{"2024-01-15T10:30:00", "2024-01-15T10:30", "2024-01-15T10:30:00.123"},
			invalid: []string{"2024-01-15", "2024-01-15 10:30:00", "2024-01-15T25:00"},
		},
		{
			typ:     validator.LocalTime,
			valid:   []string{"10:30:00", "23:59", "08:15:30.5"},
			invalid: []string{"24:00", "10-30", "noon"},
		},
		{
			typ:     validator.OffsetDateTime,
			valid:   []string{"2024-01-01T10:00:00+01:00", "2024-01-01T10:00+01:00", "2024-01-01T10:00Z"},
			invalid: []string{"2024-01-01T10:00", "2024-01-01T10+01:00"},
		},
		{
			typ:     validator.Instant,
			valid:   []string{"2024-01-15T10:30:00Z", "2024-01-15T10:30:00.5+02:00"},
			invalid: []string{"2024-01-15T10:30:00", "2024-01-15"},
		},
		{
			typ:     validator.YearMonth,
			valid:   []string{"2024-01"},
			invalid: []string{"2024-1-1", "2024"},
		},
		{
			typ:     validator.Year,
			valid:   []string{"2024"},
			invalid: []string{"24", "year"},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			c, err := validator.Temporal("when", true, tt.typ)
			require.NoError(t, err)

			for _, v := range tt.valid {
				assert.NoError(t, c.Validate(params("when", v)), v)
			}
			for _, v := range tt.invalid {
				verr := requireType(t, c.Validate(params("when", v)), validator.TypeInvalidTemporal)
				assert.Equal(t, "when", verr.Parameter)
			}
		})
	}

	t.Run("defaults to local date", func(t *testing.T) {
		c, err := validator.Temporal("from", false, "")
		require.NoError(t, err)

		assert.NoError(t, c.Validate(params("from", "2024-01-15")))
		assert.NoError(t, c.Validate(params()))
		requireType(t, c.Validate(params("from", "10:30")), validator.TypeInvalidTemporal)
	})

	t.Run("never reported as invalid email", func(t *testing.T) {
		c, err := validator.Temporal("from", true, validator.LocalDate)
		require.NoError(t, err)

		verr := requireType(t, c.Validate(params("from", "x")), validator.TypeInvalidTemporal)
		assert.NotEqual(t, validator.TypeInvalidEmail, verr.Type)
	})

	t.Run("required and absent", func(t *testing.T) {
		c, err := validator.Temporal("from", true, validator.LocalDate)
		require.NoError(t, err)
		requireType(t, c.Validate(params()), validator.TypeMissingParameter)
	})

	t.Run("unknown type fails construction", func(t *testing.T) {
		_, err := validator.Temporal("from", true, "zoned")
		assert.ErrorIs(t, err, validator.ErrUnknownTemporalType)
	})
}

func TestTemporalTypeParse(t *testing.T) {
	t.Parallel()

	ts, err := validator.LocalDate.Parse("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, 2024, ts.Year())
	assert.Equal(t, 5, ts.Day())

	_, err = validator.TemporalType("nope").Parse("2024")
	assert.ErrorIs(t, err, validator.ErrUnknownTemporalType)
}

func TestUUID(t *testing.T) {
	t.Parallel()

	c, err := validator.UUID("id", true)
	require.NoError(t, err)

	assert.NoError(t, c.Validate(params("id", "6ba7b810-9dad-11d1-80b4-00c04fd430c8")))
	assert.NoError(t, c.Validate(params("id", "urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8")))
	requireType(t, c.Validate(params("id", "6ba7b810")), validator.TypeInvalidUUID)
	requireType(t, c.Validate(params()), validator.TypeMissingParameter)
}

func TestChoice(t *testing.T) {
	t.Parallel()

	c, err := validator.Choice("sort", false, "asc", "desc")
	require.NoError(t, err)

	assert.NoError(t, c.Validate(params("sort", "asc")))
	assert.NoError(t, c.Validate(params()))

	verr := requireType(t, c.Validate(params("sort", "ASC")), validator.TypeInvalidChoice)
	choices, ok := verr.Attr("choices")
	assert.True(t, ok)
	assert.Equal(t, "asc,desc", choices)

	_, err = validator.Choice("sort", false)
	assert.ErrorIs(t, err, validator.ErrNoChoices)
}
