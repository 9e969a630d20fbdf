package navbar

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"vallista-blog/pkg/navigation"
)

func testConfig() navigation.Config {
	return navigation.Config{
		Categories: []navigation.Item{
			{Name: "Home", Icon: "<svg></svg>", Link: "/"},
			{Name: "Posts", Icon: "<svg></svg>", Link: "/posts"},
			{Name: "About", Icon: "<svg></svg>", Link: "/about"},
		},
		Footer: []navigation.Item{
			{Name: "GitHub", Icon: "<svg></svg>", Link: "https://github.com/example"},
			{Name: "Email", Icon: "<svg></svg>", Link: ""},
			{Name: "RSS", Icon: "<svg></svg>", Link: "/rss.xml"},
		},
	}
}

func names(buttons []Button) []string {
	result := make([]string, 0, len(buttons))
	for _, b := range buttons {
		result = append(result, b.Name)
	}
	return result
}

func TestBuildMarksOnlyExactMatchActive(t *testing.T) {
	t.Parallel()

	cases := []struct {
		path   string
		active string
	}{
		{path: "/", active: "Home"},
		{path: "/posts", active: "Posts"},
		{path: "/posts/", active: ""},
		{path: "/posts/hello", active: ""},
		{path: "/unknown", active: ""},
	}

	for _, tc := range cases {
		view := Build(testConfig(), tc.path, Viewport{})
		for _, button := range view.Categories {
			require.Equal(t, button.Name == tc.active, button.Active, "path %s button %s", tc.path, button.Name)
		}
		for _, button := range view.Footer {
			require.False(t, button.Active, "footer buttons are never active")
		}
	}
}

func TestBuildPreservesOrderAndSkipsEmptyFooterLinks(t *testing.T) {
	t.Parallel()

	view := Build(testConfig(), "/", Viewport{})

	require.Equal(t, []string{"Home", "Posts", "About"}, names(view.Categories))
	require.Equal(t, []string{"GitHub", "RSS"}, names(view.Footer))
}

func TestBuildTargets(t *testing.T) {
	t.Parallel()

	view := Build(testConfig(), "/", Viewport{})

	for _, button := range view.Categories {
		require.False(t, button.External)
		require.Empty(t, button.Target())
		require.Empty(t, button.Rel())
	}
	for _, button := range view.Footer {
		require.True(t, button.External)
		require.Equal(t, "_blank", button.Target())
		require.Equal(t, "noopener noreferrer", button.Rel())
	}
}

func TestActiveLink(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/about", Build(testConfig(), "/about", Viewport{}).ActiveLink())
	require.Empty(t, Build(testConfig(), "/nowhere", Viewport{}).ActiveLink())
}

func TestTooltipsVisible(t *testing.T) {
	t.Parallel()

	require.False(t, Viewport{}.TooltipsVisible(), "unknown width counts as zero")
	require.False(t, WithWidth(800).TooltipsVisible())
	require.False(t, WithWidth(Breakpoint).TooltipsVisible())
	require.True(t, WithWidth(Breakpoint+1).TooltipsVisible())
	require.True(t, WithWidth(1920).TooltipsVisible())
}

func TestViewportFromRequest(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		url     string
		headers map[string]string
		cookie  string
		want    *int
	}{
		{name: "nothing", url: "/"},
		{name: "query", url: "/?vw=1280", want: intPtr(1280)},
		{name: "query wins over header", url: "/?vw=600", headers: map[string]string{"Viewport-Width": "1500"}, want: intPtr(600)},
		{name: "client hint", url: "/", headers: map[string]string{"Sec-CH-Viewport-Width": "1440.5"}, want: intPtr(1441)},
		{name: "fractional width just above breakpoint", url: "/?vw=1024.5", want: intPtr(1025)},
		{name: "not a number", url: "/?vw=NaN"},
		{name: "legacy hint", url: "/", headers: map[string]string{"Viewport-Width": "900"}, want: intPtr(900)},
		{name: "cookie", url: "/", cookie: "1100", want: intPtr(1100)},
		{name: "invalid query falls through", url: "/?vw=wide", cookie: "700", want: intPtr(700)},
		{name: "negative ignored", url: "/?vw=-5"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: ViewportCookie, Value: tc.cookie})
			}

			got := ViewportFromRequest(req)
			if tc.want == nil {
				require.Nil(t, got.Width)
				return
			}
			require.NotNil(t, got.Width)
			require.Equal(t, *tc.want, *got.Width)
		})
	}
}

func TestFractionalWidthAboveBreakpointShowsTooltips(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Sec-CH-Viewport-Width", "1024.5")
	require.True(t, ViewportFromRequest(req).TooltipsVisible())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Sec-CH-Viewport-Width", "1024")
	require.False(t, ViewportFromRequest(req).TooltipsVisible())
}

func intPtr(v int) *int {
	return &v
}
