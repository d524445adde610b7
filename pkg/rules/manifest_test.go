package rules_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramguard/pkg/rules"
	"github.com/dmitrymomot/paramguard/pkg/validator"
)

const manifestYAML = `
handlers:
  users.show:
    - kind: long
      name: id
      min: 1
      max: 1000
    - kind: parameter
      name: fields
      required: false
      matches: "[a-z,]+"
  users.invite:
    - kind: email
      name: contact
    - kind: temporal
      name: expires
      required: false
      type: local-date-time
    - kind: choice
      name: role
      values: [admin, member]
`

func TestLoadManifest(t *testing.T) {
	t.Parallel()

	m, err := rules.LoadManifest(strings.NewReader(manifestYAML))
	require.NoError(t, err)
	assert.Equal(t, []string{"users.invite", "users.show"}, m.Names())

	show := m.Handlers["users.show"]
	require.Len(t, show, 2)
	assert.Equal(t, rules.KindLong, show[0].Kind)
	require.NotNil(t, show[0].Min)
	assert.Equal(t, int64(1), *show[0].Min)
	assert.False(t, show[1].IsRequired())

	t.Run("chain for users.show", func(t *testing.T) {
		chain, err := m.Chain(rules.Default(), "users.show")
		require.NoError(t, err)

		assert.NoError(t, chain.Validate(params("id", "7", "fields", "name,email")))
		assert.Equal(t, validator.TypeOutOfRange, failureType(t, chain.Validate(params("id", "0"))))
		assert.Equal(t, validator.TypeInvalidParameter, failureType(t, chain.Validate(params("id", "7", "fields", "NAME"))))
	})

	t.Run("chain for users.invite", func(t *testing.T) {
		chain, err := m.Chain(rules.Default(), "users.invite")
		require.NoError(t, err)

		assert.NoError(t, chain.Validate(params("contact", "a@b.com", "role", "admin")))
		assert.Equal(t, validator.TypeInvalidTemporal,
			failureType(t, chain.Validate(params("contact", "a@b.com", "expires", "tomorrow", "role", "admin"))))
		assert.Equal(t, validator.TypeMissingParameter,
			failureType(t, chain.Validate(params("contact", "a@b.com"))))
	})

	t.Run("unknown handler", func(t *testing.T) {
		_, err := m.Chain(rules.Default(), "users.delete")
		assert.ErrorIs(t, err, rules.ErrUnknownHandler)
	})
}

func TestLoadManifestErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{name: "unknown field", doc: "handlers:\n  a:\n    - kind: long\n      name: n\n      minimum: 1\n"},
		{name: "missing kind", doc: "handlers:\n  a:\n    - name: n\n"},
		{name: "malformed yaml", doc: "handlers: [\n"},
		{name: "wrong shape", doc: "handlers:\n  a: 42\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := rules.LoadManifest(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, rules.ErrFailedToParseManifest)
			assert.Nil(t, m)
		})
	}
}

func TestLoadManifestEmpty(t *testing.T) {
	t.Parallel()

	m, err := rules.LoadManifest(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, m.Names())
}

func TestLoadManifestFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(manifestYAML), 0o600))

	m, err := rules.LoadManifestFile(path)
	require.NoError(t, err)
	assert.Len(t, m.Handlers, 2)

	_, err = rules.LoadManifestFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, rules.ErrFailedToParseManifest)
}
