package i18n

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/paramguard/pkg/logger"
	"github.com/dmitrymomot/paramguard/pkg/validator"
)

// Translator resolves message keys per language. It is read-only after
// construction and safe for concurrent use.
type Translator struct {
	messages    map[string]map[string]any
	defaultLang string
	langs       []string
	matcher     language.Matcher
	log         *slog.Logger
}

type Option func(*Translator)

// WithDefaultLanguage sets the language used when negotiation finds no match.
// Defaults to "en", or the first language in the document if "en" is absent.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithLogger logs missing keys at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.log = l
		}
	}
}

// Load reads a YAML document mapping languages to nested message trees:
//
//	en:
//	  validation:
//	    required: "%{parameter} is required"
//	de:
//	  validation:
//	    required: "%{parameter} ist erforderlich"
func Load(r io.Reader, opts ...Option) (*Translator, error) {
	var doc map[string]any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoTranslations
		}
		return nil, fmt.Errorf("%w: %w", ErrFailedToParseYAML, err)
	}

	messages := make(map[string]map[string]any, len(doc))
	for lang, tree := range doc {
		m, ok := tree.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected map, got %T", ErrInvalidStructure, lang, tree)
		}
		if _, err := language.Parse(lang); err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidLanguage, lang, err)
		}
		messages[lang] = m
	}
	if len(messages) == 0 {
		return nil, ErrNoTranslations
	}

	t := &Translator{messages: messages, log: slog.Default()}
	for _, opt := range opts {
		opt(t)
	}

	t.langs = make([]string, 0, len(messages))
	for lang := range messages {
		t.langs = append(t.langs, lang)
	}
	slices.Sort(t.langs)

	if _, ok := messages[t.defaultLang]; !ok {
		if _, ok := messages["en"]; ok {
			t.defaultLang = "en"
		} else {
			t.defaultLang = t.langs[0]
		}
	}

	// The matcher falls back to its first tag.
	tags := []language.Tag{language.Make(t.defaultLang)}
	for _, lang := range t.langs {
		if lang != t.defaultLang {
			tags = append(tags, language.Make(lang))
		}
	}
	t.matcher = language.NewMatcher(tags)
	t.langs = slices.DeleteFunc(t.langs, func(l string) bool { return l == t.defaultLang })
	t.langs = append([]string{t.defaultLang}, t.langs...)

	return t, nil
}

// LoadFile is Load for a file on disk.
func LoadFile(path string, opts ...Option) (*Translator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToParseYAML, err)
	}
	return Load(bytes.NewReader(data), opts...)
}

// Languages returns the supported languages, default first.
func (t *Translator) Languages() []string {
	return slices.Clone(t.langs)
}

func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Match picks the supported language closest to an Accept-Language header.
func (t *Translator) Match(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return t.defaultLang
	}
	_, index, confidence := t.matcher.Match(tags...)
	if confidence == language.No {
		return t.defaultLang
	}
	return t.langs[index]
}

var placeholder = regexp.MustCompile(`%\{([^}]+)\}`)

// T resolves a dot-separated key and substitutes %{name} placeholders.
// Unknown languages fall back to the default language; unknown keys return
// the key itself.
func (t *Translator) T(lang, key string, params map[string]any) string {
	tmpl, ok := t.lookup(lang, key)
	if !ok {
		tmpl, ok = t.lookup(t.defaultLang, key)
	}
	if !ok {
		t.log.Debug("translation not found",
			logger.Component("i18n"),
			slog.String("lang", lang),
			slog.String("key", key),
		)
		return key
	}
	return substitute(tmpl, params)
}

// Has reports whether key is translated for lang.
func (t *Translator) Has(lang, key string) bool {
	_, ok := t.lookup(lang, key)
	return ok
}

// Message localises a validation failure, falling back to its own message
// when the translation key is unknown.
func (t *Translator) Message(lang string, verr *validator.ValidationError) string {
	if verr == nil {
		return ""
	}
	if verr.TranslationKey == "" || (!t.Has(lang, verr.TranslationKey) && !t.Has(t.defaultLang, verr.TranslationKey)) {
		return verr.Message
	}
	return t.T(lang, verr.TranslationKey, verr.TranslationValues)
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	node, ok := t.messages[lang]
	if !ok {
		return "", false
	}

	parts := strings.Split(key, ".")
	for i, part := range parts {
		val, ok := node[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, ok := val.(string)
			return s, ok
		}
		if node, ok = val.(map[string]any); !ok {
			return "", false
		}
	}
	return "", false
}

func substitute(tmpl string, params map[string]any) string {
	if len(params) == 0 {
		return tmpl
	}
	return placeholder.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return fmt.Sprint(val)
		}
		return match
	})
}
