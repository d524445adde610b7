package i18n_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramguard/pkg/i18n"
	"github.com/dmitrymomot/paramguard/pkg/validator"
)

const catalog = `
en:
  validation:
    required: "%{parameter} is required"
    between: "%{parameter} must be between %{min} and %{max}"
  greeting: "Hello, %{name}!"
de:
  validation:
    required: "%{parameter} ist erforderlich"
nl:
  greeting: "Hallo, %{name}!"
`

func load(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()
	tr, err := i18n.Load(strings.NewReader(catalog), opts...)
	require.NoError(t, err)
	return tr
}

func TestLoad(t *testing.T) {
	t.Parallel()

	tr := load(t)
	assert.Equal(t, "en", tr.DefaultLanguage())
	assert.Equal(t, []string{"en", "de", "nl"}, tr.Languages())

	tr = load(t, i18n.WithDefaultLanguage("nl"))
	assert.Equal(t, []string{"nl", "de", "en"}, tr.Languages())

	tr = load(t, i18n.WithDefaultLanguage("fr"))
	assert.Equal(t, "en", tr.DefaultLanguage())
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		err  error
	}{
		{"empty", "", i18n.ErrNoTranslations},
		{"malformed", "en: [", i18n.ErrFailedToParseYAML},
		{"language is not a map", "en: hello", i18n.ErrInvalidStructure},
		{"invalid language tag", "not a tag!:\n  k: v", i18n.ErrInvalidLanguage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := i18n.Load(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "messages.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalog), 0o600))

	tr, err := i18n.LoadFile(path)
	require.NoError(t, err)
	assert.True(t, tr.Has("de", "validation.required"))

	_, err = i18n.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestTranslate(t *testing.T) {
	t.Parallel()

	tr := load(t)
	params := map[string]any{"parameter": "age", "min": "0", "max": 150, "name": "Ann"}

	assert.Equal(t, "age is required", tr.T("en", "validation.required", params))
	assert.Equal(t, "age ist erforderlich", tr.T("de", "validation.required", params))
	assert.Equal(t, "age must be between 0 and 150", tr.T("de", "validation.between", params), "falls back to default language")
	assert.Equal(t, "Hallo, Ann!", tr.T("nl", "greeting", params))
	assert.Equal(t, "Hello, %{name}!", tr.T("en", "greeting", nil))
	assert.Equal(t, "validation.unknown", tr.T("en", "validation.unknown", params))
	assert.Equal(t, "validation", tr.T("en", "validation", params), "non-leaf keys are not messages")
	assert.Equal(t, "age is required", tr.T("fr", "validation.required", params))
}

func TestMatch(t *testing.T) {
	t.Parallel()

	tr := load(t)
	tests := []struct {
		header string
		want   string
	}{
		{"", "en"},
		{"de-DE,de;q=0.9,en;q=0.5", "de"},
		{"nl-BE", "nl"},
		{"fr-FR", "en"},
		{"fr;q=0.9, nl;q=0.8", "nl"},
		{";;;", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Match(tt.header))
		})
	}
}

func TestMessage(t *testing.T) {
	t.Parallel()

	tr := load(t)

	c, err := validator.Long("age", true, 0, 150)
	require.NoError(t, err)
	verr := validator.ExtractValidationError(c.Validate(validator.Values{"age": {"200"}}))
	require.NotNil(t, verr)
	assert.Equal(t, "age must be between 0 and 150", tr.Message("en", verr))

	missing := validator.ExtractValidationError(c.Validate(validator.Values{}))
	require.NotNil(t, missing)
	assert.Equal(t, "age ist erforderlich", tr.Message("de", missing))

	custom := &validator.ValidationError{Type: "custom", Parameter: "x", Message: "custom failure", TranslationKey: "validation.custom"}
	assert.Equal(t, "custom failure", tr.Message("en", custom))

	assert.Empty(t, tr.Message("en", nil))
}
