package xmlout_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramguard/pkg/xmlout"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriter(t *testing.T) {
	t.Parallel()

	t.Run("element with attributes", func(t *testing.T) {
		var buf bytes.Buffer
		w := xmlout.New(&buf)

		w.OpenElement("error")
		w.Attribute("type", "out-of-range")
		w.Attribute("parameter", "age")
		w.AttributeInt("min", 0)
		w.AttributeInt("max", 150)
		w.CloseElement()

		require.NoError(t, w.Flush())
		assert.Equal(t, `<error type="out-of-range" parameter="age" min="0" max="150"></error>`, buf.String())
	})

	t.Run("nested elements and escaping", func(t *testing.T) {
		var buf bytes.Buffer
		w := xmlout.New(&buf)

		w.OpenElement("user")
		w.Attribute("id", `"7"`)
		w.Element("name", "Tom & Jerry")
		w.EmptyElement("flag")
		w.CloseElement()

		require.NoError(t, w.Flush())
		assert.Equal(t, `<user id="&#34;7&#34;"><name>Tom &amp; Jerry</name><flag></flag></user>`, buf.String())
		assert.Equal(t, 0, w.Depth())
	})

	t.Run("attribute after content", func(t *testing.T) {
		w := xmlout.New(&bytes.Buffer{})
		w.OpenElement("a")
		w.Text("x")
		w.Attribute("late", "1")

		assert.ErrorIs(t, w.Err(), xmlout.ErrOutput)
		assert.ErrorIs(t, w.Err(), xmlout.ErrMisplacedAttribute)
	})

	t.Run("close without open", func(t *testing.T) {
		w := xmlout.New(&bytes.Buffer{})
		w.CloseElement()
		assert.ErrorIs(t, w.Flush(), xmlout.ErrUnbalanced)
	})

	t.Run("invalid element name", func(t *testing.T) {
		w := xmlout.New(&bytes.Buffer{})
		w.EmptyElement("")
		assert.ErrorIs(t, w.Err(), xmlout.ErrOutput)
	})

	t.Run("first failure is sticky", func(t *testing.T) {
		var buf bytes.Buffer
		w := xmlout.New(&buf)
		w.CloseElement()
		first := w.Err()

		w.Element("ignored", "x")
		w.Attribute("", "")
		require.Error(t, w.Flush())
		assert.Equal(t, first, w.Err())
		assert.Empty(t, buf.String())
	})

	t.Run("write failure surfaces on flush", func(t *testing.T) {
		w := xmlout.New(failingWriter{})
		w.Element("a", "b")
		err := w.Flush()
		assert.ErrorIs(t, err, xmlout.ErrOutput)
		assert.Contains(t, err.Error(), "disk full")
	})

	t.Run("close ends open elements", func(t *testing.T) {
		var buf bytes.Buffer
		w := xmlout.New(&buf)
		w.OpenElement("a")
		w.OpenElement("b")
		w.Attribute("k", "v")

		require.NoError(t, w.Close())
		assert.Equal(t, `<a><b k="v"></b></a>`, buf.String())
	})
}

func TestComponent(t *testing.T) {
	t.Parallel()

	c := xmlout.Component(func(w *xmlout.Writer) {
		w.OpenElement("error")
		w.Attribute("type", "missing-parameter")
		w.Attribute("parameter", "id")
	})

	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	assert.Equal(t, `<error type="missing-parameter" parameter="id"></error>`, buf.String())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, c.Render(ctx, &bytes.Buffer{}), xmlout.ErrOutput)
}
