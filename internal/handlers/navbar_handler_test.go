package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"vallista-blog/internal/navbar"
	"vallista-blog/internal/service"
	"vallista-blog/pkg/cache"
	"vallista-blog/pkg/navigation"
	"vallista-blog/pkg/validator"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	return newTestRouterWithConfig(t, navigation.Default())
}

func newTestRouterWithConfig(t *testing.T, cfg navigation.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validator.Init()

	renderer, err := navbar.NewRenderer(navbar.DefaultTheme())
	require.NoError(t, err)
	disabled, err := cache.NewCache("", false)
	require.NoError(t, err)

	handler := NewNavbarHandler(service.NewNavbarService(cfg, renderer, disabled, time.Minute), "Vallista", "https://vallista.kr/")

	router := gin.New()
	router.GET("/navbar", handler.Fragment)
	router.GET("/api/v1/navigation", handler.Navigation)
	router.NoRoute(handler.Page)
	return router
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestFragmentUsesQueryPathAndWidth(t *testing.T) {
	router := newTestRouter(t)

	recorder := serve(router, httptest.NewRequest(http.MethodGet, "/navbar?path=/series&vw=1300", nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, recorder.Header().Get("Vary"), "Viewport-Width")

	doc, err := goquery.NewDocumentFromReader(recorder.Body)
	require.NoError(t, err)
	require.Equal(t, "Series", doc.Find("a.navbar__category--checked").AttrOr("data-name", ""))
	require.Equal(t, 8, doc.Find(".navbar__tooltip").Length())
}

func TestFragmentReadsViewportCookie(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/navbar", nil)
	req.AddCookie(&http.Cookie{Name: navbar.ViewportCookie, Value: "800"})
	recorder := serve(router, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	doc, err := goquery.NewDocumentFromReader(recorder.Body)
	require.NoError(t, err)
	require.Zero(t, doc.Find(".navbar__tooltip").Length())
	require.Equal(t, "Home", doc.Find("a.navbar__category--checked").AttrOr("data-name", ""))
}

func TestFragmentRejectsRelativePath(t *testing.T) {
	router := newTestRouter(t)

	recorder := serve(router, httptest.NewRequest(http.MethodGet, "/navbar?path=posts", nil))
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestNavigationJSON(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/navigation?path=/about", nil)
	req.Header.Set("Sec-CH-Viewport-Width", "1920")
	recorder := serve(router, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	var payload struct {
		Breakpoint int         `json:"breakpoint"`
		Navigation navbar.View `json:"navigation"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))

	require.Equal(t, 1024, payload.Breakpoint)
	require.True(t, payload.Navigation.ShowTooltips)
	require.Equal(t, "/about", payload.Navigation.ActiveLink())
	require.Len(t, payload.Navigation.Footer, 3)
	for _, button := range payload.Navigation.Footer {
		require.True(t, button.External)
	}
}

func TestPageStatus(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		path      string
		status    int
		title     string
		canonical string
	}{
		{path: "/", status: http.StatusOK, title: "Home - Vallista", canonical: "https://vallista.kr/"},
		{path: "/tags", status: http.StatusOK, title: "Tags - Vallista", canonical: "https://vallista.kr/tags"},
		{path: "/missing", status: http.StatusNotFound, title: "404 - Vallista"},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			recorder := serve(router, httptest.NewRequest(http.MethodGet, tc.path, nil))
			require.Equal(t, tc.status, recorder.Code)

			doc, err := goquery.NewDocumentFromReader(recorder.Body)
			require.NoError(t, err)
			require.Equal(t, tc.title, doc.Find("title").Text())
			require.Equal(t, tc.canonical, doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))
			require.Equal(t, 1, doc.Find("aside.navbar").Length(), "bar renders on every page")
		})
	}
}

func TestEncodedPathMarksSameEntryAsPage(t *testing.T) {
	cfg := navigation.Config{
		Categories: []navigation.Item{
			{Name: "Home", Link: "/"},
			{Name: "Tags", Link: "/태그"},
		},
	}
	router := newTestRouterWithConfig(t, cfg)
	encoded := "/%ED%83%9C%EA%B7%B8"

	page := serve(router, httptest.NewRequest(http.MethodGet, encoded+"?vw=1300", nil))
	require.Equal(t, http.StatusOK, page.Code)
	pageDoc, err := goquery.NewDocumentFromReader(page.Body)
	require.NoError(t, err)
	require.Equal(t, "Tags", pageDoc.Find("a.navbar__category--checked").AttrOr("data-name", ""))
	require.Equal(t, "https://vallista.kr"+encoded, pageDoc.Find(`link[rel="canonical"]`).AttrOr("href", ""))

	// navbar.js sends encodeURIComponent(location.pathname), which is already percent-encoded.
	fragment := serve(router, httptest.NewRequest(http.MethodGet, "/navbar?vw=1300&path="+url.QueryEscape(encoded), nil))
	require.Equal(t, http.StatusOK, fragment.Code)
	fragmentDoc, err := goquery.NewDocumentFromReader(fragment.Body)
	require.NoError(t, err)
	require.Equal(t, "Tags", fragmentDoc.Find("a.navbar__category--checked").AttrOr("data-name", ""))

	api := serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/navigation?path="+url.QueryEscape(encoded), nil))
	require.Equal(t, http.StatusOK, api.Code)
	var payload struct {
		Navigation navbar.View `json:"navigation"`
	}
	require.NoError(t, json.Unmarshal(api.Body.Bytes(), &payload))
	require.Equal(t, "/태그", payload.Navigation.ActiveLink())

	decoded := serve(router, httptest.NewRequest(http.MethodGet, "/navbar?path="+url.QueryEscape("/태그"), nil))
	decodedDoc, err := goquery.NewDocumentFromReader(decoded.Body)
	require.NoError(t, err)
	require.Equal(t, "Tags", decodedDoc.Find("a.navbar__category--checked").AttrOr("data-name", ""))
}

func TestPagePath(t *testing.T) {
	cases := map[string]string{
		"":                    "/",
		"/posts":              "/posts",
		"/%ED%83%9C%EA%B7%B8": "/태그",
		"/bad%zz":             "/bad%zz",
	}
	for input, expected := range cases {
		require.Equal(t, expected, pagePath(input), input)
	}
}
