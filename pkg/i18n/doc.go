// Package i18n localises messages, including validation failures, from a
// YAML catalog.
//
// Messages are nested per language and addressed by dot-separated keys;
// placeholders use the %{name} form:
//
//	tr, err := i18n.Load(strings.NewReader(`
//	en:
//	  validation:
//	    between: "%{parameter} must be between %{min} and %{max}"
//	`))
//
//	lang := tr.Match(r.Header.Get("Accept-Language"))
//	msg := tr.Message(lang, verr)
//
// Language negotiation uses golang.org/x/text/language and falls back to the
// default language when no supported language matches.
package i18n
