package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"vallista-blog/internal/navbar"
	"vallista-blog/internal/service"
	"vallista-blog/pkg/logger"

	"github.com/gin-gonic/gin"
)

// varyOnViewport lists the request inputs the navbar output depends on.
const varyOnViewport = "Sec-CH-Viewport-Width, Viewport-Width, Cookie"

type NavbarHandler struct {
	service  *service.NavbarService
	siteName string
	siteURL  string
}

type navbarQuery struct {
	Path string `form:"path" binding:"omitempty,sitepath,max=2048"`
}

func NewNavbarHandler(service *service.NavbarService, siteName, siteURL string) *NavbarHandler {
	return &NavbarHandler{
		service:  service,
		siteName: siteName,
		siteURL:  strings.TrimRight(siteURL, "/"),
	}
}

// pagePath turns the path query into the decoded form gin reports for page
// requests. navbar.js sends location.pathname, which stays percent-encoded.
func pagePath(raw string) string {
	if raw == "" {
		return "/"
	}
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}

// Fragment serves the bare aside element; navbar.js swaps it in when the
// viewport crosses the breakpoint.
func (h *NavbarHandler) Fragment(c *gin.Context) {
	var query navbarQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	query.Path = pagePath(query.Path)

	html, err := h.service.Fragment(c.Request.Context(), query.Path, navbar.ViewportFromRequest(c.Request))
	if err != nil {
		logger.Error(err, "Failed to render navbar", map[string]interface{}{"path": query.Path})
		c.String(http.StatusInternalServerError, "Failed to render navbar")
		return
	}

	c.Header("Vary", varyOnViewport)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// Navigation returns the built view as JSON for clients that draw the bar
// themselves.
func (h *NavbarHandler) Navigation(c *gin.Context) {
	var query navbarQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	query.Path = pagePath(query.Path)

	view := h.service.View(query.Path, navbar.ViewportFromRequest(c.Request))

	c.Header("Vary", varyOnViewport)
	c.JSON(http.StatusOK, gin.H{
		"breakpoint": navbar.Breakpoint,
		"navigation": view,
	})
}

// Page renders the document shell with the bar for the requested path. Paths
// that match a category answer 200, anything else 404 with the same bar.
func (h *NavbarHandler) Page(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	currentPath := c.Request.URL.Path
	viewport := navbar.ViewportFromRequest(c.Request)

	html, err := h.service.Fragment(c.Request.Context(), currentPath, viewport)
	if err != nil {
		logger.Error(err, "Failed to render navbar", map[string]interface{}{"path": currentPath})
		c.String(http.StatusInternalServerError, "Failed to render page")
		return
	}

	page := navbar.Page{Title: fmt.Sprintf("404 - %s", h.siteName), Path: currentPath}
	status := http.StatusNotFound
	for _, button := range h.service.View(currentPath, viewport).Categories {
		if button.Active {
			status = http.StatusOK
			page.Title = fmt.Sprintf("%s - %s", button.Name, h.siteName)
			if h.siteURL != "" {
				page.Canonical = h.siteURL + (&url.URL{Path: currentPath}).EscapedPath()
			}
			break
		}
	}

	var buf bytes.Buffer
	if err := h.service.Renderer().RenderPage(&buf, page, html); err != nil {
		logger.Error(err, "Failed to render page", map[string]interface{}{"path": currentPath})
		c.String(http.StatusInternalServerError, "Failed to render page")
		return
	}

	c.Header("Vary", varyOnViewport)
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}
