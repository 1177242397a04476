package web

import (
	"bytes"
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/options-pricing-and-greeks/dashboard/internal/services/web/i18n"
	"github.com/options-pricing-and-greeks/dashboard/internal/services/web/platform/httpx"
	"github.com/options-pricing-and-greeks/dashboard/internal/services/web/routepath"
	"github.com/options-pricing-and-greeks/dashboard/internal/services/web/sidebar"
	webstatic "github.com/options-pricing-and-greeks/dashboard/internal/services/web/static"
	"github.com/options-pricing-and-greeks/dashboard/internal/services/web/templates"
)

type handlers struct {
	logger *log.Logger
}

func newRouter(logger *log.Logger) http.Handler {
	h := handlers{logger: logger}
	getOnly := httpx.RequireMethod(http.MethodGet)

	mux := http.NewServeMux()
	mux.Handle(routepath.Root+"{$}", getOnly(http.HandlerFunc(h.dashboard)))
	mux.Handle(routepath.SidebarHeader, getOnly(http.HandlerFunc(h.sidebarHeader)))
	mux.Handle(routepath.Health, getOnly(http.HandlerFunc(h.health)))
	mux.Handle(routepath.StaticPrefix, getOnly(http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(webstatic.FS)))))
	return mux
}

// headerPanel builds a fresh sidebar holding the dashboard header.
func headerPanel() *sidebar.Panel {
	panel := sidebar.NewPanel()
	sidebar.RenderHeader(panel)
	return panel
}

func (h handlers) dashboard(w http.ResponseWriter, r *http.Request) {
	tag, persist := i18n.ResolveTag(r)
	if persist {
		i18n.SetLanguageCookie(w, tag)
	}
	printer := i18n.Printer(tag)
	title := printer.Sprintf("page.dashboard")
	content := templates.EmptyState(
		printer.Sprintf("dashboard.empty.heading"),
		printer.Sprintf("dashboard.empty.body"),
	)

	// Full page and main-only bodies share a URL.
	w.Header().Add("Vary", "HX-Request")
	if httpx.IsHTMXRequest(r) {
		h.render(w, r, templates.MainContent(title, content))
		return
	}
	h.render(w, r, templates.DashboardPage(templates.DashboardPageOptions{
		Title:   title,
		Lang:    tag.String(),
		Sidebar: headerPanel().Component(),
		Main:    content,
	}))
}

func (h handlers) sidebarHeader(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, headerPanel().Component())
}

func (h handlers) health(w http.ResponseWriter, _ *http.Request) {
	if err := httpx.WriteText(w, http.StatusOK, "ok"); err != nil {
		h.logger.Printf("write health response: %v", err)
	}
}

// render buffers the component. When rendering fails it logs the error and
// answers 500 with a localized error block in place of the partial output.
func (h handlers) render(w http.ResponseWriter, r *http.Request, component templ.Component) {
	templ.Handler(component, templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			h.logger.Printf("render failed path=%s request_id=%s err=%v", r.URL.Path, r.Header.Get(httpx.RequestIDHeader), err)
			h.renderError(w, r)
		})
	})).ServeHTTP(w, r)
}

func (h handlers) renderError(w http.ResponseWriter, r *http.Request) {
	tag, _ := i18n.ResolveTag(r)
	var body bytes.Buffer
	if err := templates.ErrorState(i18n.Printer(tag).Sprintf("error.internal")).Render(r.Context(), &body); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	if _, err := body.WriteTo(w); err != nil {
		h.logger.Printf("write error response: %v", err)
	}
}
