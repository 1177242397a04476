package sidebar

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Surface is the sidebar region of the host page.
type Surface interface {
	// Title writes a plain-text heading.
	Title(text string)
	// Markdown writes a formatted block. Inline HTML is emitted only when
	// allowHTML is set; otherwise it is escaped.
	Markdown(body string, allowHTML bool)
}

// ElementKind identifies what a sidebar element renders as.
type ElementKind int

const (
	// ElementTitle is a sidebar heading.
	ElementTitle ElementKind = iota + 1
	// ElementMarkdown is a formatted text block.
	ElementMarkdown
)

// Element is one write made against a Panel.
type Element struct {
	Kind      ElementKind
	Text      string
	AllowHTML bool
}

// Panel records sidebar writes in call order and renders them as a templ
// component. A Panel is built per request and is not safe for concurrent use.
type Panel struct {
	elements []Element
}

// NewPanel returns an empty sidebar panel.
func NewPanel() *Panel {
	return &Panel{}
}

// Title implements Surface.
func (p *Panel) Title(text string) {
	if p == nil {
		return
	}
	p.elements = append(p.elements, Element{Kind: ElementTitle, Text: text})
}

// Markdown implements Surface.
func (p *Panel) Markdown(body string, allowHTML bool) {
	if p == nil {
		return
	}
	p.elements = append(p.elements, Element{Kind: ElementMarkdown, Text: body, AllowHTML: allowHTML})
}

// Elements returns a copy of the recorded writes.
func (p *Panel) Elements() []Element {
	if p == nil || len(p.elements) == 0 {
		return nil
	}
	out := make([]Element, len(p.elements))
	copy(out, p.elements)
	return out
}

// Component renders the panel as an aside element. Writes made after the call
// do not affect the returned component.
func (p *Panel) Component() templ.Component {
	elements := p.Elements()
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<aside class="sidebar" data-sidebar="true">`); err != nil {
			return err
		}
		for _, element := range elements {
			if err := renderElement(w, element); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</aside>`)
		return err
	})
}

func renderElement(w io.Writer, element Element) error {
	switch element.Kind {
	case ElementTitle:
		_, err := io.WriteString(w, `<h1 class="sidebar-title">`+templ.EscapeString(element.Text)+`</h1>`)
		return err
	case ElementMarkdown:
		if element.AllowHTML {
			_, err := io.WriteString(w, `<div class="sidebar-block">`+element.Text+`</div>`)
			return err
		}
		_, err := io.WriteString(w, `<div class="sidebar-block">`+renderMarkdown(element.Text)+`</div>`)
		return err
	default:
		return fmt.Errorf("unknown sidebar element kind %d", element.Kind)
	}
}
