// Package navbar builds and renders the blog's fixed navigation bar: a column
// of icon buttons on desktop and a horizontal strip on mobile.
package navbar

import (
	"vallista-blog/pkg/navigation"
)

// Breakpoint is the viewport width, in CSS pixels, at or below which the bar
// switches to the mobile layout and tooltips are dropped.
const Breakpoint = 1024

// Button is one rendered navigation entry.
type Button struct {
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Link     string `json:"link"`
	Active   bool   `json:"active"`
	External bool   `json:"external"`
}

// Target is the anchor target: external buttons open a new browsing context.
func (b Button) Target() string {
	if b.External {
		return "_blank"
	}
	return ""
}

func (b Button) Rel() string {
	if b.External {
		return "noopener noreferrer"
	}
	return ""
}

// View is everything the templates need to draw the bar for one request.
type View struct {
	Categories   []Button `json:"categories"`
	Footer       []Button `json:"footer"`
	ShowTooltips bool     `json:"show_tooltips"`
}

// ActiveLink returns the link of the active category, or "" when the current
// path matches none. Two views with the same ActiveLink and tooltip state
// render identically.
func (v View) ActiveLink() string {
	for _, button := range v.Categories {
		if button.Active {
			return button.Link
		}
	}
	return ""
}

// IsActive reports whether link is the page currently shown.
func IsActive(currentPath, link string) bool {
	return currentPath == link
}

// Build maps the configured entries onto buttons for currentPath. Categories
// navigate in place and carry the active marker; footer entries open a new
// tab and are skipped when their link is empty.
func Build(cfg navigation.Config, currentPath string, viewport Viewport) View {
	view := View{
		Categories:   make([]Button, 0, len(cfg.Categories)),
		Footer:       make([]Button, 0, len(cfg.Footer)),
		ShowTooltips: viewport.TooltipsVisible(),
	}

	for _, item := range cfg.Categories {
		view.Categories = append(view.Categories, Button{
			Name:   item.Name,
			Icon:   item.Icon,
			Link:   item.Link,
			Active: IsActive(currentPath, item.Link),
		})
	}

	for _, item := range cfg.Footer {
		if item.Link == "" {
			continue
		}
		view.Footer = append(view.Footer, Button{
			Name:     item.Name,
			Icon:     item.Icon,
			Link:     item.Link,
			External: true,
		})
	}

	return view
}
