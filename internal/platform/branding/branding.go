// Package branding holds the product identity shown across web surfaces.
package branding

// AppName is the product title rendered in the sidebar and page titles.
const AppName = "Options Pricing & Greeks Analysis"

// Author credit rendered in the sidebar attribution block.
const (
	AuthorName       = "Saimanish Prabhakar"
	AuthorProfileURL = "https://www.linkedin.com/in/saimanish-prabhakar-3074351a0/"
)
