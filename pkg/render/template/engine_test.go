package template_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-blazonry/pkg/render/template"
)

func newEngine(t *testing.T, options ...template.Option) *template.Engine {
	t.Helper()

	files := fstest.MapFS{
		"hello.tmpl": &fstest.MapFile{
			Data: []byte("Hello {{ name }}"),
		},
		"document.svg.tmpl": &fstest.MapFile{
			Data: []byte(`<svg viewBox="{{ view_box }}">{{ artwork|safe }}</svg>`),
		},
		"env.tmpl": &fstest.MapFile{
			Data: []byte("env={{ env }}"),
		},
	}

	opts := append([]template.Option{template.WithFS(files)}, options...)
	engine, err := template.New(opts...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngine_Render(t *testing.T) {
	engine := newEngine(t)

	got, err := engine.Render("hello", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hello Ada" {
		t.Fatalf("render = %q", got)
	}
}

func TestEngine_RenderAppendsExtension(t *testing.T) {
	engine := newEngine(t)

	got, err := engine.Render("document.svg", map[string]any{
		"view_box": "0 0 220 260",
		"artwork":  `<path d="M 0 0"/>`,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(got, `viewBox="0 0 220 260"`) {
		t.Fatalf("view box missing from %q", got)
	}
	if !strings.Contains(got, `<path d="M 0 0"/>`) {
		t.Fatalf("safe artwork was escaped: %q", got)
	}
}

func TestEngine_RenderUnknownTemplateFails(t *testing.T) {
	engine := newEngine(t)
	if _, err := engine.Render("nope", nil); err == nil {
		t.Fatal("expected missing template error")
	}
}

func TestEngine_RenderString(t *testing.T) {
	engine := newEngine(t)

	got, err := engine.RenderString("{{ a }}-{{ b }}", map[string]any{"a": "x", "b": "y"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "x-y" {
		t.Fatalf("render string = %q", got)
	}
}

func TestEngine_GlobalData(t *testing.T) {
	engine := newEngine(t, template.WithGlobalData(map[string]any{"env": "staging"}))

	got, err := engine.Render("env", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "env=staging" {
		t.Fatalf("render = %q", got)
	}

	// per-call data wins over globals
	got, err = engine.Render("env", map[string]any{"env": "prod"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "env=prod" {
		t.Fatalf("render = %q", got)
	}
}

func TestEngine_WritesToWriter(t *testing.T) {
	engine := newEngine(t)

	var buf strings.Builder
	got, err := engine.Render("hello", map[string]any{"name": "Ada"}, &buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if buf.String() != got {
		t.Fatalf("writer got %q, return value %q", buf.String(), got)
	}
}

func TestEngine_RequiresTemplateSource(t *testing.T) {
	if _, err := template.New(); err == nil {
		t.Fatal("expected configuration error without a template source")
	}
}
