package gotemplate_test

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-ghbutton/pkg/render/template/gotemplate"
)

func newEngine(t *testing.T, options ...gotemplate.Option) *gotemplate.Engine {
	t.Helper()

	files := fstest.MapFS{
		"hello.tpl":      {Data: []byte("Hello {{ name }}!")},
		"use-global.tpl": {Data: []byte("env={{ settings.env }}")},
		"escape.tpl":     {Data: []byte("{{ markup }}|{{ markup|safe }}")},
		"use-func.tpl":   {Data: []byte(`{{ shout(name) }}`)},
		"trimmed.tpl":    {Data: []byte(`[{{ padded|trim }}]`)},
	}
	engine, err := gotemplate.New(append([]gotemplate.Option{gotemplate.WithFS(files)}, options...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngine_RenderTemplateWritesOutput(t *testing.T) {
	engine := newEngine(t)

	var buf strings.Builder
	got, err := engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, &buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hello Ada!" {
		t.Fatalf("expected rendered template, got %q", got)
	}
	if buf.String() != got {
		t.Fatalf("expected writer to receive output, got %q", buf.String())
	}
}

func TestEngine_RenderDetectsInlineContent(t *testing.T) {
	engine := newEngine(t)

	got, err := engine.Render("{{ a }}-{{ b }}", map[string]any{"a": "one", "b": "two"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "one-two" {
		t.Fatalf("expected inline render, got %q", got)
	}

	got, err = engine.Render("hello.tpl", map[string]any{"name": "Grace"})
	if err != nil {
		t.Fatalf("render named: %v", err)
	}
	if got != "Hello Grace!" {
		t.Fatalf("expected named render, got %q", got)
	}
}

func TestEngine_GlobalContextAndStructData(t *testing.T) {
	engine := newEngine(t, gotemplate.WithGlobalData(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}))

	got, err := engine.RenderTemplate("use-global", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "env=staging" {
		t.Fatalf("expected global data, got %q", got)
	}

	type payload struct {
		Name string `json:"name"`
	}
	got, err = engine.RenderTemplate("hello", payload{Name: "Linus"})
	if err != nil {
		t.Fatalf("render struct: %v", err)
	}
	if got != "Hello Linus!" {
		t.Fatalf("expected struct data to be converted, got %q", got)
	}
}

func TestEngine_AutoescapesUnlessSafe(t *testing.T) {
	engine := newEngine(t)
	got, err := engine.RenderTemplate("escape", map[string]any{"markup": `<a class="x">`})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(got, "&lt;a") || !strings.HasSuffix(got, `|<a class="x">`) {
		t.Fatalf("expected escaped then raw markup, got %q", got)
	}
}

func TestEngine_TemplateFuncsAndFilters(t *testing.T) {
	engine := newEngine(t, gotemplate.WithTemplateFunc(map[string]any{
		"shout": func(in string) string { return strings.ToUpper(in) + "!" },
	}))

	got, err := engine.RenderTemplate("use-func", map[string]any{"name": "ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "ADA!" {
		t.Fatalf("expected template func output, got %q", got)
	}

	got, err = engine.RenderTemplate("trimmed", map[string]any{"padded": "  x  "})
	if err != nil {
		t.Fatalf("render trimmed: %v", err)
	}
	if got != "[x]" {
		t.Fatalf("expected trim filter, got %q", got)
	}

	if err := engine.RegisterFilter("ghbutton_test_suffix", func(input any, param any) (any, error) {
		return fmt.Sprintf("%v%v", input, param), nil
	}); err != nil {
		t.Fatalf("register filter: %v", err)
	}
	got, err = engine.RenderString(`{{ name|ghbutton_test_suffix:"?" }}`, map[string]any{"name": "who"})
	if err != nil {
		t.Fatalf("render filter: %v", err)
	}
	if got != "who?" {
		t.Fatalf("expected custom filter output, got %q", got)
	}
	if err := engine.RegisterFilter("ghbutton_test_suffix", func(input any, _ any) (any, error) { return input, nil }); err == nil {
		t.Fatalf("expected duplicate filter registration to fail")
	}
}

func TestEngine_ConcurrentSetup(t *testing.T) {
	engines := make([]*gotemplate.Engine, 8)

	var wg sync.WaitGroup
	for i := range engines {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			engine, err := gotemplate.New(gotemplate.WithFS(fstest.MapFS{
				"trimmed.tpl": {Data: []byte(`[{{ padded|trim }}]`)},
			}))
			if err != nil {
				t.Errorf("new engine: %v", err)
				return
			}
			if got, err := engine.RenderTemplate("trimmed", map[string]any{"padded": " y "}); err != nil || got != "[y]" {
				t.Errorf("render trimmed: %q, %v", got, err)
			}
			engines[i] = engine
		}(i)
	}
	wg.Wait()
	if t.Failed() {
		return
	}

	var registered atomic.Int32
	for _, engine := range engines {
		wg.Add(1)
		go func(engine *gotemplate.Engine) {
			defer wg.Done()
			err := engine.RegisterFilter("ghbutton_test_once", func(input any, _ any) (any, error) { return input, nil })
			if err == nil {
				registered.Add(1)
			}
		}(engine)
	}
	wg.Wait()

	if got := registered.Load(); got != 1 {
		t.Fatalf("expected exactly one successful registration, got %d", got)
	}
}

func TestNew_RequiresTemplateSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without base dir or fs")
	}
}
