package ghbutton

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/goliatone/go-ghbutton/pkg/resources"
)

func TestRenderButton(t *testing.T) {
	reg := resources.NewRegistry()
	html, err := RenderButton(context.Background(), Request{
		Type: TypeStar,
		User: "octo",
		Repo: "demo",
	}, WithLocale("es"), WithResources(reg))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasSuffix(html, ">Destacar</a>") {
		t.Fatalf("expected spanish label, got %s", html)
	}
	if !reg.Has("github-bjs") {
		t.Fatalf("expected buttons.js registration")
	}
}

func TestRenderButton_ConfigError(t *testing.T) {
	_, err := RenderButton(context.Background(), Request{Type: TypeFork, User: "octo"})
	if !errors.Is(err, ErrMissingRepo) {
		t.Fatalf("expected ErrMissingRepo, got %v", err)
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %T", err)
	}
}

func TestRenderPage(t *testing.T) {
	out, err := RenderPage(context.Background(), []Request{
		{Type: TypeWatch, User: "octo", Repo: "demo"},
		{Type: TypeFollow, User: "octo"},
	})
	if err != nil {
		t.Fatalf("render page: %v", err)
	}
	if got := strings.Count(string(out), "buttons.github.io/buttons.js"); got != 1 {
		t.Fatalf("expected one script include, got %d", got)
	}
}

func TestEmbeddedAssets(t *testing.T) {
	if _, err := fs.ReadFile(EmbeddedTemplates(), "templates/page.tpl"); err != nil {
		t.Fatalf("expected page template to be readable: %v", err)
	}
	data, err := fs.ReadFile(EmbeddedLocales(), "en.yaml")
	if err != nil {
		t.Fatalf("expected english catalog to be readable: %v", err)
	}
	if !strings.Contains(string(data), "Follow @{user}") {
		t.Fatalf("expected follow label in english catalog")
	}
}
