package render

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrMissingTranslator is passed to the missing handler when no
	// Translator has been configured.
	ErrMissingTranslator = errors.New("render: translator is not configured")
	// ErrMissingTranslation is returned by Catalog when neither the requested
	// locale nor any fallback carries the key.
	ErrMissingTranslation = errors.New("render: translation not found")
)

// Translator resolves a symbolic message key for a locale. Arguments are
// substitution parameters; implementations should accept map[string]any and
// map[string]string values and replace `{name}` placeholders.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// TranslatorFunc adapts a plain function to the Translator interface.
type TranslatorFunc func(locale, key string, args ...any) (string, error)

// Translate calls f.
func (f TranslatorFunc) Translate(locale, key string, args ...any) (string, error) {
	return f(locale, key, args...)
}

// MissingTranslationHandler decides what string to use when a translation is
// unavailable. err is ErrMissingTranslator when no translator is set, or the
// translator's own error otherwise.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

// Translate resolves key through t, falling back to fallback (interpolated
// with args) when the translator is absent, fails, or returns a blank string.
// When onMissing is set it takes over the fallback decision.
func Translate(t Translator, locale, key, fallback string, onMissing MissingTranslationHandler, args ...any) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return Interpolate(fallback, args...)
	}

	if t == nil {
		if onMissing != nil {
			return onMissing(locale, key, withDefault(args, fallback), ErrMissingTranslator)
		}
		return fallbackOrKey(fallback, key, args)
	}

	result, err := t.Translate(locale, key, args...)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}
	if err == nil {
		err = fmt.Errorf("%w: %s", ErrMissingTranslation, key)
	}

	if onMissing != nil {
		return onMissing(locale, key, withDefault(args, fallback), err)
	}
	return fallbackOrKey(fallback, key, args)
}

// MissingTranslationDefault returns the interpolated "default" argument when
// present and the key otherwise.
func MissingTranslationDefault(_ string, key string, args []any, _ error) string {
	for _, arg := range args {
		params, ok := arg.(map[string]any)
		if !ok {
			continue
		}
		if fallback, ok := params["default"].(string); ok && strings.TrimSpace(fallback) != "" {
			return Interpolate(fallback, args...)
		}
	}
	return key
}

// Interpolate replaces `{name}` placeholders in msg with values found in the
// map arguments. Unknown placeholders are left untouched.
func Interpolate(msg string, args ...any) string {
	if msg == "" || !strings.Contains(msg, "{") {
		return msg
	}
	params := collectParams(args)
	if len(params) == 0 {
		return msg
	}

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, len(names)*2)
	for _, name := range names {
		pairs = append(pairs, "{"+name+"}", params[name])
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

func collectParams(args []any) map[string]string {
	params := make(map[string]string)
	for _, arg := range args {
		switch v := arg.(type) {
		case map[string]string:
			for name, value := range v {
				params[strings.TrimSpace(name)] = value
			}
		case map[string]any:
			for name, value := range v {
				if name == "default" {
					continue
				}
				params[strings.TrimSpace(name)] = anyToString(value)
			}
		}
	}
	delete(params, "")
	return params
}

func withDefault(args []any, fallback string) []any {
	out := make([]any, 0, len(args)+1)
	out = append(out, args...)
	return append(out, map[string]any{"default": fallback})
}

func fallbackOrKey(fallback, key string, args []any) string {
	if strings.TrimSpace(fallback) != "" {
		return Interpolate(fallback, args...)
	}
	return key
}

func anyToString(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case fmt.Stringer:
		return value.String()
	default:
		return fmt.Sprint(value)
	}
}
