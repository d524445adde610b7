// Package xmlout provides a scoped XML writer whose write operations report
// failures through a single sticky error instead of per-call returns.
package xmlout

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

var (
	// ErrOutput wraps every failure reported by a Writer.
	ErrOutput = errors.New("xml output failed")

	// ErrMisplacedAttribute is reported when an attribute is written after element content.
	ErrMisplacedAttribute = errors.New("attribute must follow its opening element")

	// ErrUnbalanced is reported when an element is closed without being opened.
	ErrUnbalanced = errors.New("no open element to close")
)

// Writer writes XML tokens to an underlying io.Writer.
// The first failure is kept and every later call becomes a no-op; check Err or
// the result of Flush/Close once the fragment is written.
type Writer struct {
	enc     *xml.Encoder
	pending *xml.StartElement
	stack   []xml.Name
	err     error
}

func New(w io.Writer) *Writer {
	return &Writer{enc: xml.NewEncoder(w)}
}

// Err returns the first failure, wrapped with ErrOutput.
func (w *Writer) Err() error {
	return w.err
}

// Depth returns the number of open elements.
func (w *Writer) Depth() int {
	return len(w.stack)
}

func (w *Writer) fail(err error) {
	if w.err == nil && err != nil {
		w.err = fmt.Errorf("%w: %w", ErrOutput, err)
	}
}

// emitPending writes the pending start element, if any.
func (w *Writer) emitPending() {
	if w.pending == nil {
		return
	}
	start := *w.pending
	w.pending = nil
	w.fail(w.enc.EncodeToken(start))
}

// OpenElement opens an element. Attributes may be added until content is written.
func (w *Writer) OpenElement(name string) {
	if w.err != nil {
		return
	}
	w.emitPending()
	n := xml.Name{Local: name}
	w.pending = &xml.StartElement{Name: n}
	w.stack = append(w.stack, n)
}

// Attribute adds an attribute to the element opened last.
func (w *Writer) Attribute(name, value string) {
	if w.err != nil {
		return
	}
	if w.pending == nil {
		w.fail(fmt.Errorf("%w: %s", ErrMisplacedAttribute, name))
		return
	}
	w.pending.Attr = append(w.pending.Attr, xml.Attr{Name: xml.Name{Local: name}, Value: value})
}

func (w *Writer) AttributeInt(name string, value int64) {
	w.Attribute(name, strconv.FormatInt(value, 10))
}

// Text writes escaped character data.
func (w *Writer) Text(text string) {
	if w.err != nil {
		return
	}
	w.emitPending()
	if w.err == nil {
		w.fail(w.enc.EncodeToken(xml.CharData(text)))
	}
}

// CloseElement closes the element opened last.
func (w *Writer) CloseElement() {
	if w.err != nil {
		return
	}
	if len(w.stack) == 0 {
		w.fail(ErrUnbalanced)
		return
	}
	w.emitPending()
	name := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	if w.err == nil {
		w.fail(w.enc.EncodeToken(xml.EndElement{Name: name}))
	}
}

// Element writes an element containing only text.
func (w *Writer) Element(name, text string) {
	w.OpenElement(name)
	w.Text(text)
	w.CloseElement()
}

func (w *Writer) EmptyElement(name string) {
	w.OpenElement(name)
	w.CloseElement()
}

// Flush writes buffered tokens to the underlying writer. An element whose
// attributes are still open is not flushed.
func (w *Writer) Flush() error {
	if w.err == nil {
		w.fail(w.enc.Flush())
	}
	return w.err
}

// Close closes every open element and flushes.
func (w *Writer) Close() error {
	for len(w.stack) > 0 && w.err == nil {
		w.CloseElement()
	}
	return w.Flush()
}

// Component adapts a fragment renderer to templ.Component. Elements left open
// by render are closed.
func Component(render func(w *Writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrOutput, err)
		}
		w := New(out)
		render(w)
		return w.Close()
	})
}
