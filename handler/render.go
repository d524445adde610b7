package handler

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/paramguard/pkg/validator"
	"github.com/dmitrymomot/paramguard/pkg/xmlout"
)

// errorElement renders a validation failure as a single element:
//
//	<error type="out-of-range" parameter="age" min="0" max="150"></error>
//
// A non-empty message is added as the last attribute.
func errorElement(verr *validator.ValidationError, message string) templ.Component {
	return xmlout.Component(func(w *xmlout.Writer) {
		w.OpenElement("error")
		w.Attribute("type", string(verr.Type))
		w.Attribute("parameter", verr.Parameter)
		for _, attr := range verr.Attrs {
			w.Attribute(attr.Name, attr.Value)
		}
		if message != "" {
			w.Attribute("message", message)
		}
		w.CloseElement()
	})
}
