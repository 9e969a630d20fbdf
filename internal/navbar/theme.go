package navbar

import (
	"fmt"
	"html/template"
	"regexp"
	"strings"
)

var colorPattern = regexp.MustCompile(`^(#[0-9a-fA-F]{3,8}|[a-zA-Z]+|(rgb|rgba|hsl|hsla)\([0-9.,%\s]+\))$`)

// Theme carries the colors and stacking layer the bar is drawn with.
type Theme struct {
	Accent2     string
	Accent3     string
	Foreground  string
	Background  string
	Highlight   string
	AboveLayer  int
	ScrollThumb string
	ScrollTrack string
}

func DefaultTheme() Theme {
	return Theme{
		Accent2:     "#333333",
		Accent3:     "#444444",
		Foreground:  "#eaeaea",
		Background:  "#111111",
		Highlight:   "#ff0080",
		AboveLayer:  11,
		ScrollThumb: "#666666",
		ScrollTrack: "#222222",
	}
}

func (t Theme) Validate() error {
	colors := map[string]string{
		"accent2":      t.Accent2,
		"accent3":      t.Accent3,
		"foreground":   t.Foreground,
		"background":   t.Background,
		"highlight":    t.Highlight,
		"scroll thumb": t.ScrollThumb,
		"scroll track": t.ScrollTrack,
	}
	for name, value := range colors {
		if !colorPattern.MatchString(strings.TrimSpace(value)) {
			return fmt.Errorf("invalid %s color %q", name, value)
		}
	}
	return nil
}

// Style renders the theme as custom properties for the aside element.
func (t Theme) Style() template.CSS {
	var b strings.Builder
	fmt.Fprintf(&b, "--nav-accent-2: %s; ", t.Accent2)
	fmt.Fprintf(&b, "--nav-accent-3: %s; ", t.Accent3)
	fmt.Fprintf(&b, "--nav-foreground: %s; ", t.Foreground)
	fmt.Fprintf(&b, "--nav-background: %s; ", t.Background)
	fmt.Fprintf(&b, "--nav-highlight: %s; ", t.Highlight)
	fmt.Fprintf(&b, "--scrollbar-thumb: %s; ", t.ScrollThumb)
	fmt.Fprintf(&b, "--scrollbar-background: %s; ", t.ScrollTrack)
	fmt.Fprintf(&b, "z-index: %d;", t.AboveLayer+1)
	return template.CSS(b.String())
}
