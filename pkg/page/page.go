// Package page composes rendered buttons into a standalone HTML document,
// emitting every script the buttons registered exactly once.
package page

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-ghbutton/pkg/button"
	"github.com/goliatone/go-ghbutton/pkg/render"
	rendertemplate "github.com/goliatone/go-ghbutton/pkg/render/template"
	"github.com/goliatone/go-ghbutton/pkg/render/template/gotemplate"
	"github.com/goliatone/go-ghbutton/pkg/resources"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

const (
	pageTemplate          = "templates/page"
	defaultContainerClass = "ghbutton-page"
)

// ErrNoButtons is returned when Render receives no requests.
var ErrNoButtons = errors.New("page: at least one button is required")

// TemplatesFS exposes the bundled page template.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// Option configures a Renderer.
type Option func(*config)

type config struct {
	templateFS     fs.FS
	templates      rendertemplate.TemplateRenderer
	buttons        *button.Renderer
	translator     render.Translator
	locale         string
	title          string
	containerClass string
	logger         zerolog.Logger
}

// WithTemplatesFS replaces the bundled templates. The bundle must provide
// templates/page.tpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplateRenderer injects a ready template renderer, bypassing the
// pongo2 engine construction.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templates = renderer
		}
	}
}

// WithButtonRenderer sets the renderer used for each button.
func WithButtonRenderer(r *button.Renderer) Option {
	return func(cfg *config) {
		if r != nil {
			cfg.buttons = r
		}
	}
}

// WithTranslator sets the translator shared by buttons and the page chrome.
// The bundled catalog is used when none is set.
func WithTranslator(t render.Translator) Option {
	return func(cfg *config) {
		cfg.translator = t
	}
}

// WithLocale sets the page locale.
func WithLocale(locale string) Option {
	return func(cfg *config) {
		cfg.locale = strings.TrimSpace(locale)
	}
}

// WithTitle overrides the translated page title.
func WithTitle(title string) Option {
	return func(cfg *config) {
		cfg.title = strings.TrimSpace(title)
	}
}

// WithContainerClass sets the class of the element wrapping the buttons.
func WithContainerClass(class string) Option {
	return func(cfg *config) {
		cfg.containerClass = strings.TrimSpace(class)
	}
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// Renderer renders pages of buttons.
type Renderer struct {
	cfg config
}

// New constructs a page Renderer.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS:     TemplatesFS(),
		containerClass: defaultContainerClass,
		logger:         zerolog.Nop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.translator == nil {
		catalog, err := render.DefaultCatalog()
		if err != nil {
			return nil, fmt.Errorf("page: load catalog: %w", err)
		}
		cfg.translator = catalog
	}
	if cfg.buttons == nil {
		cfg.buttons = button.New(button.WithLogger(cfg.logger))
	}

	if cfg.templates == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tpl"),
			gotemplate.WithTemplateFunc(render.TemplateI18nFuncs(cfg.translator, render.TemplateI18nConfig{})),
		)
		if err != nil {
			return nil, fmt.Errorf("page: configure template renderer: %w", err)
		}
		cfg.templates = engine
	}

	return &Renderer{cfg: cfg}, nil
}

// ContentType of the rendered document.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render renders every request and wraps them in the page template. The
// first failing button aborts the page.
func (r *Renderer) Render(ctx context.Context, requests []button.Request) ([]byte, error) {
	return r.RenderLocale(ctx, r.cfg.locale, requests)
}

// RenderLocale is Render with a per-call locale. An empty locale falls back to
// the configured one. A single Renderer is safe to share across goroutines.
func (r *Renderer) RenderLocale(ctx context.Context, locale string, requests []button.Request) ([]byte, error) {
	if len(requests) == 0 {
		return nil, ErrNoButtons
	}

	locale = strings.TrimSpace(locale)
	if locale == "" {
		locale = r.cfg.locale
	}
	if locale == "" {
		locale = render.DefaultLocale
	}

	registry := resources.NewRegistry(resources.WithLogger(r.cfg.logger))
	rc := button.RenderContext{
		Locale:     locale,
		Translator: r.cfg.translator,
		Resources:  registry,
	}

	buttons := make([]string, 0, len(requests))
	for i, req := range requests {
		markup, err := r.cfg.buttons.Render(ctx, rc, req)
		if err != nil {
			return nil, fmt.Errorf("page: render button %d: %w", i, err)
		}
		buttons = append(buttons, markup)
	}

	r.cfg.logger.Debug().Int("buttons", len(buttons)).Int("scripts", registry.Len()).Msg("rendering page")

	result, err := r.cfg.templates.RenderTemplate(pageTemplate, map[string]any{
		"locale":          locale,
		"title":           r.cfg.title,
		"params":          map[string]any{"user": strings.TrimSpace(requests[0].User)},
		"container_class": r.cfg.containerClass,
		"buttons":         buttons,
		"head_scripts":    registry.Tags(resources.PositionHead),
		"end_scripts":     registry.Tags(resources.PositionEnd),
	})
	if err != nil {
		return nil, fmt.Errorf("page: render template: %w", err)
	}
	return []byte(result), nil
}
