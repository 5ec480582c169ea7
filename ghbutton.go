// Package ghbutton renders GitHub social buttons (watch, star, fork, issue,
// download, follow) as anchors enhanced by buttons.js.
//
// Most callers only need RenderButton or RenderPage:
//
//	reg := resources.NewRegistry()
//	html, err := ghbutton.RenderButton(ctx, ghbutton.Request{
//		Type: ghbutton.TypeStar,
//		User: "octo",
//		Repo: "demo",
//	}, ghbutton.WithResources(reg))
package ghbutton

import (
	"context"

	"github.com/goliatone/go-ghbutton/pkg/button"
	"github.com/goliatone/go-ghbutton/pkg/page"
	"github.com/goliatone/go-ghbutton/pkg/render"
)

// Request aliases button.Request.
type Request = button.Request

// Type aliases button.Type.
type Type = button.Type

// ConfigError aliases button.ConfigError.
type ConfigError = button.ConfigError

// Button types.
const (
	TypeWatch    = button.TypeWatch
	TypeStar     = button.TypeStar
	TypeFork     = button.TypeFork
	TypeIssue    = button.TypeIssue
	TypeDownload = button.TypeDownload
	TypeFollow   = button.TypeFollow
)

// Configuration error sentinels, matched with errors.Is.
var (
	ErrMissingUser = button.ErrMissingUser
	ErrMissingRepo = button.ErrMissingRepo
	ErrMissingType = button.ErrMissingType
	ErrInvalidType = button.ErrInvalidType
)

// Bool returns a pointer to v for Request.ShowCount literals.
func Bool(v bool) *bool {
	return button.Bool(v)
}

// RenderOption tunes a one-call render.
type RenderOption func(*renderConfig)

type renderConfig struct {
	rc      button.RenderContext
	options []button.Option
}

// WithLocale selects the label locale.
func WithLocale(locale string) RenderOption {
	return func(cfg *renderConfig) {
		cfg.rc.Locale = locale
	}
}

// WithTranslator overrides the bundled catalog.
func WithTranslator(t render.Translator) RenderOption {
	return func(cfg *renderConfig) {
		cfg.rc.Translator = t
	}
}

// WithResources sets where the buttons.js script is registered.
func WithResources(registrar button.ScriptRegistrar) RenderOption {
	return func(cfg *renderConfig) {
		cfg.rc.Resources = registrar
	}
}

// WithButtonOptions forwards options to the underlying button.Renderer.
func WithButtonOptions(options ...button.Option) RenderOption {
	return func(cfg *renderConfig) {
		cfg.options = append(cfg.options, options...)
	}
}

// NewRenderer exposes the button renderer constructor from the module root.
func NewRenderer(options ...button.Option) *button.Renderer {
	return button.New(options...)
}

// RenderButton validates req and returns the anchor markup. Labels are
// translated with the bundled catalog unless WithTranslator is given.
func RenderButton(ctx context.Context, req Request, options ...RenderOption) (string, error) {
	cfg := renderConfig{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.rc.Translator == nil {
		catalog, err := render.DefaultCatalog()
		if err != nil {
			return "", err
		}
		cfg.rc.Translator = catalog
	}
	return button.New(cfg.options...).Render(ctx, cfg.rc, req)
}

// RenderPage renders a standalone HTML page holding every request.
func RenderPage(ctx context.Context, requests []Request, options ...page.Option) ([]byte, error) {
	renderer, err := page.New(options...)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, requests)
}
