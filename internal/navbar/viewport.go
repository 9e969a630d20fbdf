package navbar

import (
	"math"
	"net/http"
	"strconv"
	"strings"
)

const (
	ViewportCookie = "nav_vw"
	ViewportQuery  = "vw"
)

// viewportHeaders are the client hints checked in order.
var viewportHeaders = []string{"Sec-CH-Viewport-Width", "Viewport-Width"}

// Viewport is the browser window size as far as the server knows it. A nil
// Width means the client has not reported one.
type Viewport struct {
	Width *int
}

func WithWidth(width int) Viewport {
	return Viewport{Width: &width}
}

// TooltipsVisible is true only for widths above Breakpoint. An unknown width
// counts as zero.
func (v Viewport) TooltipsVisible() bool {
	width := 0
	if v.Width != nil {
		width = *v.Width
	}
	return width > Breakpoint
}

// ViewportFromRequest reads the width hint from the query string, client hint
// headers or the cookie written by navbar.js, in that order.
func ViewportFromRequest(r *http.Request) Viewport {
	if r == nil {
		return Viewport{}
	}

	if r.URL != nil {
		if width, ok := parseWidth(r.URL.Query().Get(ViewportQuery)); ok {
			return WithWidth(width)
		}
	}

	for _, header := range viewportHeaders {
		if width, ok := parseWidth(r.Header.Get(header)); ok {
			return WithWidth(width)
		}
	}

	if cookie, err := r.Cookie(ViewportCookie); err == nil {
		if width, ok := parseWidth(cookie.Value); ok {
			return WithWidth(width)
		}
	}

	return Viewport{}
}

// parseWidth accepts fractional client hints and rounds them up, so 1024.5
// still counts as wider than the breakpoint.
func parseWidth(value string) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	width, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(width) || math.IsInf(width, 0) || width <= 0 || width > math.MaxInt32 {
		return 0, false
	}
	return int(math.Ceil(width)), true
}
