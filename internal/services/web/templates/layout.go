// Package templates renders the dashboard page chrome.
package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/options-pricing-and-greeks/dashboard/internal/platform/branding"
	"github.com/options-pricing-and-greeks/dashboard/internal/services/web/routepath"
)

// DashboardPageOptions configures a full dashboard document.
type DashboardPageOptions struct {
	// Title is the page title before the brand suffix is applied.
	Title string
	// Lang is the BCP 47 tag written to the html element.
	Lang string
	// Sidebar renders the left panel.
	Sidebar templ.Component
	// Main renders inside the main element.
	Main templ.Component
}

// ComposePageTitle appends the brand suffix to title exactly once.
func ComposePageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return branding.AppName
	}
	if title == branding.AppName || strings.HasSuffix(title, " | "+branding.AppName) {
		return title
	}
	if base, ok := strings.CutSuffix(title, " - "+branding.AppName); ok {
		title = strings.TrimSpace(base)
	}
	return title + " | " + branding.AppName
}

// pageHeadingFromTitle strips a trailing brand suffix from title.
func pageHeadingFromTitle(title, appName string) string {
	title = strings.TrimSpace(title)
	for _, sep := range []string{" | ", " - "} {
		if base, ok := strings.CutSuffix(title, sep+appName); ok {
			return strings.TrimSpace(base)
		}
	}
	return title
}

// DashboardPage renders the full HTML document with the sidebar on the left
// and the main content on the right.
func DashboardPage(opts DashboardPageOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := strings.TrimSpace(opts.Lang)
		if lang == "" {
			lang = "en-US"
		}
		title := ComposePageTitle(opts.Title)
		if _, err := io.WriteString(w, `<!doctype html><html lang="`+templ.EscapeString(lang)+`"><head>`+
			`<meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`+
			`<title>`+templ.EscapeString(title)+`</title>`+
			`<link rel="stylesheet" href="`+routepath.Stylesheet+`">`+
			`</head><body><div class="dashboard">`); err != nil {
			return err
		}
		if opts.Sidebar != nil {
			if err := opts.Sidebar.Render(ctx, w); err != nil {
				return err
			}
		}
		if err := MainContent(pageHeadingFromTitle(title, branding.AppName), opts.Main).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div></body></html>`)
		return err
	})
}

// MainContent renders the main element on its own, for HTMX swaps.
func MainContent(heading string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<main class="dashboard-main" id="main">`); err != nil {
			return err
		}
		if heading = strings.TrimSpace(heading); heading != "" {
			if _, err := io.WriteString(w, `<h2 class="dashboard-heading">`+templ.EscapeString(heading)+`</h2>`); err != nil {
				return err
			}
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main>`)
		return err
	})
}

// EmptyState renders a heading and short explanation in place of results.
func EmptyState(heading, body string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section class="empty-state"><h3>`+templ.EscapeString(heading)+
			`</h3><p>`+templ.EscapeString(body)+`</p></section>`)
		return err
	})
}

// ErrorState renders a user-safe error message.
func ErrorState(message string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section class="error-state" role="alert"><p>`+templ.EscapeString(message)+`</p></section>`)
		return err
	})
}
