// Package routepath stores canonical HTTP paths for the dashboard.
package routepath

const (
	Root          = "/"
	Health        = "/up"
	SidebarHeader = "/sidebar/header"
	StaticPrefix  = "/static/"
	Stylesheet    = StaticPrefix + "dashboard.css"
)
