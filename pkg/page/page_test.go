package page_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-ghbutton/pkg/button"
	"github.com/goliatone/go-ghbutton/pkg/page"
	"github.com/goliatone/go-ghbutton/pkg/render"
)

func sampleRequests() []button.Request {
	return []button.Request{
		{Type: button.TypeWatch, User: "octo", Repo: "demo"},
		{Type: button.TypeStar, User: "octo", Repo: "demo"},
		{Type: button.TypeFollow, User: "octo", ShowCount: button.Bool(false)},
	}
}

func TestRender_EmitsScriptOnce(t *testing.T) {
	renderer, err := page.New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := renderer.Render(context.Background(), sampleRequests())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)

	if got := strings.Count(html, `id="github-bjs"`); got != 1 {
		t.Fatalf("expected exactly one script tag, got %d\n%s", got, html)
	}
	if got := strings.Count(html, `class="github-button"`); got != 3 {
		t.Fatalf("expected three buttons, got %d\n%s", got, html)
	}
	if !strings.Contains(html, "<title>GitHub buttons for octo</title>") {
		t.Fatalf("expected translated title, got:\n%s", html)
	}
	if !strings.Contains(html, `<html lang="en">`) {
		t.Fatalf("expected default locale, got:\n%s", html)
	}
	if strings.Index(html, `id="github-bjs"`) < strings.Index(html, "</main>") {
		t.Fatalf("expected script after the buttons")
	}
	if strings.Contains(html, "&lt;a ") {
		t.Fatalf("expected button markup to stay unescaped")
	}
}

func TestRender_LocaleAndTitle(t *testing.T) {
	renderer, err := page.New(page.WithLocale("es"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	out, err := renderer.Render(context.Background(), sampleRequests()[:1])
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, "<title>Botones de GitHub para octo</title>") {
		t.Fatalf("expected spanish title, got:\n%s", html)
	}

	titled, err := page.New(page.WithTitle("My <projects>"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	out, err = titled.Render(context.Background(), sampleRequests()[:1])
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "<title>My &lt;projects&gt;</title>") {
		t.Fatalf("expected escaped custom title, got:\n%s", out)
	}
}

func TestRender_CustomTemplates(t *testing.T) {
	files := fstest.MapFS{
		"templates/page.tpl": &fstest.MapFile{Data: []byte(
			`{% for b in buttons %}[{{ b|safe }}]{% endfor %}{% for s in end_scripts %}{{ s|safe }}{% endfor %}`,
		)},
	}
	translator := render.TranslatorFunc(func(locale, key string, args ...any) (string, error) {
		return "", render.ErrMissingTranslation
	})

	renderer, err := page.New(page.WithTemplatesFS(files), page.WithTranslator(translator))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	out, err := renderer.Render(context.Background(), sampleRequests()[:2])
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)
	if !strings.HasPrefix(html, `[<a class="github-button"`) {
		t.Fatalf("unexpected output:\n%s", html)
	}
	if !strings.HasSuffix(html, `<script id="github-bjs" src="https://buttons.github.io/buttons.js" async defer></script>`) {
		t.Fatalf("expected trailing script tag, got:\n%s", html)
	}
	if !strings.Contains(html, ">Watch</a>]") {
		t.Fatalf("expected fallback label, got:\n%s", html)
	}
}

func TestRender_Errors(t *testing.T) {
	renderer, err := page.New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if _, err := renderer.Render(context.Background(), nil); !errors.Is(err, page.ErrNoButtons) {
		t.Fatalf("expected ErrNoButtons, got %v", err)
	}

	reqs := append(sampleRequests(), button.Request{Type: button.TypeStar, User: "octo"})
	_, err = renderer.Render(context.Background(), reqs)
	if !errors.Is(err, button.ErrMissingRepo) {
		t.Fatalf("expected ErrMissingRepo, got %v", err)
	}
	if !strings.Contains(err.Error(), "button 3") {
		t.Fatalf("expected failing index in error, got %v", err)
	}
}

func TestRenderLocale_SharedRenderer(t *testing.T) {
	renderer, err := page.New(page.WithLocale("fr"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	titles := map[string]string{
		"":   "<title>Boutons GitHub pour octo</title>",
		"es": "<title>Botones de GitHub para octo</title>",
		"de": "<title>GitHub-Buttons für octo</title>",
		"en": "<title>GitHub buttons for octo</title>",
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		for locale, want := range titles {
			wg.Add(1)
			go func(locale, want string) {
				defer wg.Done()
				out, err := renderer.RenderLocale(context.Background(), locale, sampleRequests())
				if err != nil {
					t.Errorf("render %q: %v", locale, err)
					return
				}
				if !strings.Contains(string(out), want) {
					t.Errorf("locale %q: expected %s, got:\n%s", locale, want, out)
				}
				if got := strings.Count(string(out), `id="github-bjs"`); got != 1 {
					t.Errorf("locale %q: expected one script tag, got %d", locale, got)
				}
			}(locale, want)
		}
	}
	wg.Wait()
}
