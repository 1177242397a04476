package sidebar

import (
	"reflect"
	"strings"
	"testing"

	"github.com/options-pricing-and-greeks/dashboard/internal/platform/branding"
)

type recordedCall struct {
	method    string
	text      string
	allowHTML bool
}

type recordingSurface struct {
	calls []recordedCall
}

func (s *recordingSurface) Title(text string) {
	s.calls = append(s.calls, recordedCall{method: "title", text: text})
}

func (s *recordingSurface) Markdown(body string, allowHTML bool) {
	s.calls = append(s.calls, recordedCall{method: "markdown", text: body, allowHTML: allowHTML})
}

func TestRenderHeaderWritesTitleAttributionAndSeparator(t *testing.T) {
	t.Parallel()

	surface := &recordingSurface{}
	RenderHeader(surface)

	want := []recordedCall{
		{method: "title", text: "Options Pricing & Greeks Analysis"},
		{method: "markdown", text: Attribution, allowHTML: true},
		{method: "markdown", text: "---"},
	}
	if !reflect.DeepEqual(surface.calls, want) {
		t.Fatalf("calls = %#v, want %#v", surface.calls, want)
	}
}

func TestRenderHeaderIsIdempotent(t *testing.T) {
	t.Parallel()

	const runs = 4
	surface := &recordingSurface{}
	for range runs {
		RenderHeader(surface)
	}
	if len(surface.calls) != runs*3 {
		t.Fatalf("calls = %d, want %d", len(surface.calls), runs*3)
	}
	first := surface.calls[:3]
	for i := 1; i < runs; i++ {
		got := surface.calls[i*3 : i*3+3]
		if !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d calls = %#v, want %#v", i, got, first)
		}
	}
}

func TestRenderHeaderIgnoresNilSurface(t *testing.T) {
	t.Parallel()

	RenderHeader(nil)
}

func TestAttributionLinksAuthorProfile(t *testing.T) {
	t.Parallel()

	for _, marker := range []string{
		"Created by ",
		"href='" + branding.AuthorProfileURL + "'",
		"target='_blank'",
		">" + branding.AuthorName + "</a>",
		"color: #666; font-size: 0.8em;",
		"color: #1f77b4;",
	} {
		if !strings.Contains(Attribution, marker) {
			t.Fatalf("attribution missing %q: %q", marker, Attribution)
		}
	}
}

func TestRenderHeaderIgnoresTypedNilPanel(t *testing.T) {
	t.Parallel()

	var p *Panel
	RenderHeader(p)
	if got := p.Elements(); got != nil {
		t.Fatalf("elements = %#v, want nil", got)
	}
}
