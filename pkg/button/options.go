package button

import (
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-ghbutton/pkg/render"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithTranslator sets the translator used when RenderContext does not carry
// one.
func WithTranslator(t render.Translator) Option {
	return func(r *Renderer) {
		r.translator = t
	}
}

// WithLocale sets the locale used when RenderContext.Locale is empty.
func WithLocale(locale string) Option {
	return func(r *Renderer) {
		r.locale = strings.TrimSpace(locale)
	}
}

// WithMissingTranslationHandler customizes label resolution when the
// translator cannot resolve a key.
func WithMissingTranslationHandler(handler render.MissingTranslationHandler) Option {
	return func(r *Renderer) {
		r.onMissing = handler
	}
}

// WithThemeSelector resolves theme tokens (size, color scheme, style) into
// data attributes. They sit above computed defaults and below caller
// settings.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(r *Renderer) {
		if selector == nil {
			r.theme = nil
			return
		}
		r.theme = &themeConfig{
			selector: selector,
			name:     strings.TrimSpace(name),
			variant:  strings.TrimSpace(variant),
		}
	}
}

// WithSanitizer runs the rendered anchor through an HTML policy that keeps
// only the attributes buttons.js understands and drops unsafe URLs.
func WithSanitizer(enabled bool) Option {
	return func(r *Renderer) {
		r.sanitize = enabled
	}
}

// WithNoscript appends a translated <noscript> notice after the anchor.
func WithNoscript(enabled bool) Option {
	return func(r *Renderer) {
		r.noscript = enabled
	}
}

// WithLogger sets the logger for render diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Renderer) {
		r.logger = logger
	}
}
