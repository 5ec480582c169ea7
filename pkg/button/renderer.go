package button

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-ghbutton/pkg/render"
	"github.com/goliatone/go-ghbutton/pkg/resources"
)

const (
	// ScriptID is the resource id buttons.js is registered under.
	ScriptID = "github-bjs"
	// ScriptURL is the external script that turns anchors into buttons.
	ScriptURL = "https://buttons.github.io/buttons.js"
	// CSSClass marks anchors for buttons.js.
	CSSClass = "github-button"
	// InlineStyle is merged into every button's style attribute.
	InlineStyle = "padding:0 5px"

	noscriptKey = "github.noscript"
	noscriptMsg = "Please enable JavaScript on your browser to view the GitHub {button} button correctly on this site."
)

// Script is the resource every rendered button registers.
func Script() resources.Script {
	return resources.Script{
		ID:    ScriptID,
		Src:   ScriptURL,
		Async: true,
		Defer: true,
	}
}

// ScriptRegistrar receives script registrations. Implementations must be
// idempotent by script key; *resources.Registry is the stock one.
type ScriptRegistrar interface {
	RegisterScript(script resources.Script) (bool, error)
}

// RenderContext carries the host collaborators for one render call. Empty
// fields fall back to the Renderer's options.
type RenderContext struct {
	Locale     string
	Translator render.Translator
	Resources  ScriptRegistrar
}

// Resolved is the outcome of the merge stage: what Render turns into markup.
type Resolved struct {
	Type       Type
	Label      string
	Attributes map[string]string
}

// Renderer renders GitHub buttons. The zero value is not usable; call New.
type Renderer struct {
	translator render.Translator
	locale     string
	onMissing  render.MissingTranslationHandler
	theme      *themeConfig
	sanitize   bool
	noscript   bool
	logger     zerolog.Logger
}

// New constructs a Renderer applying options in order.
func New(options ...Option) *Renderer {
	r := &Renderer{logger: zerolog.Nop()}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

var defaultRenderer = New()

// Render renders req with a Renderer configured with no options.
func Render(ctx context.Context, rc RenderContext, req Request) (string, error) {
	return defaultRenderer.Render(ctx, rc, req)
}

// Resolve validates req and computes the final label and attributes.
// Precedence, lowest first: computed defaults, theme tokens, Settings,
// HTMLAttributes. The label key is always removed and the count attributes
// are removed when the count is hidden.
func (r *Renderer) Resolve(ctx context.Context, rc RenderContext, req Request) (Resolved, error) {
	if err := ctx.Err(); err != nil {
		return Resolved{}, err
	}
	valid, err := Validate(req)
	if err != nil {
		return Resolved{}, err
	}

	defaults := ComputeDefaults(valid.Type, valid.User, valid.Repo)

	label := valid.Label
	if strings.TrimSpace(label) == "" {
		label = r.translate(rc, defaults.LabelKey, defaults.Label, defaults.LabelParams)
	}

	attrs := defaults.Attributes()
	themed, err := r.theme.attributes()
	if err != nil {
		return Resolved{}, err
	}
	mergeInto(attrs, themed)
	mergeInto(attrs, valid.Settings)
	mergeInto(attrs, valid.HTMLAttributes)

	delete(attrs, AttrLabel)
	if !valid.CountVisible() {
		delete(attrs, AttrCountAPI)
		delete(attrs, AttrCountHref)
	}

	AddCSSClass(attrs, CSSClass)
	AddCSSStyle(attrs, InlineStyle)

	return Resolved{Type: valid.Type, Label: label, Attributes: attrs}, nil
}

// Render validates req, renders the anchor and registers the buttons.js
// script with rc.Resources. Configuration errors abort before any output or
// registration.
func (r *Renderer) Render(ctx context.Context, rc RenderContext, req Request) (string, error) {
	resolved, err := r.Resolve(ctx, rc, req)
	if err != nil {
		return "", err
	}

	markup := renderTag("a", resolved.Label, resolved.Attributes)
	if r.sanitize {
		markup = sanitizeAnchor(markup)
	}
	if r.noscript {
		notice := r.translate(rc, noscriptKey, noscriptMsg, map[string]any{"button": resolved.Type.String()})
		markup += "<noscript>" + html.EscapeString(notice) + "</noscript>"
	}

	if rc.Resources == nil {
		r.logger.Debug().Str("script", ScriptID).Msg("no resource registry in render context, script not registered")
		return markup, nil
	}
	if _, err := rc.Resources.RegisterScript(Script()); err != nil {
		return "", fmt.Errorf("button: register script: %w", err)
	}
	return markup, nil
}

func (r *Renderer) translate(rc RenderContext, key, fallback string, params map[string]any) string {
	t := rc.Translator
	if t == nil {
		t = r.translator
	}
	locale := rc.Locale
	if strings.TrimSpace(locale) == "" {
		locale = r.locale
	}

	onMissing := r.onMissing
	if onMissing == nil && t != nil {
		logger := r.logger
		onMissing = func(locale, key string, args []any, err error) string {
			logger.Debug().Err(err).Str("locale", locale).Str("key", key).Msg("missing translation")
			return render.MissingTranslationDefault(locale, key, args, err)
		}
	}
	return render.Translate(t, locale, key, fallback, onMissing, params)
}

func mergeInto(dst, src map[string]string) {
	for key, value := range src {
		if key = strings.TrimSpace(key); key != "" {
			dst[key] = value
		}
	}
}
