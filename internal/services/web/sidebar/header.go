// Package sidebar renders the dashboard's persistent left panel.
package sidebar

import "github.com/options-pricing-and-greeks/dashboard/internal/platform/branding"

// Separator is the markdown thematic break placed under the header.
const Separator = "---"

// Attribution is the credit block written below the sidebar title. It carries
// inline markup and must be written with HTML allowed.
const Attribution = "<div style='text-align: left;'>" +
	"<p style='color: #666; font-size: 0.8em;'>" +
	"Created by " +
	"<a href='" + branding.AuthorProfileURL + "' " +
	"target='_blank' style='color: #1f77b4;'>" + branding.AuthorName + "</a>" +
	"</p>" +
	"</div>"

// RenderHeader writes the sidebar header: the product title, the author
// credit and a separator. It holds no state, so repeated calls write the
// same three elements each time.
func RenderHeader(s Surface) {
	if s == nil {
		return
	}
	s.Title(branding.AppName)
	s.Markdown(Attribution, true)
	s.Markdown(Separator, false)
}
