package navbar

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/microcosm-cc/bluemonday"

	"vallista-blog/pkg/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Renderer turns a View into HTML. It is safe for concurrent use.
type Renderer struct {
	templates *template.Template
	theme     Theme
	sanitizer *bluemonday.Policy
	versions  map[string]string

	mu    sync.RWMutex
	icons map[string]template.HTML
}

// Page is the data for a full document wrapped around the bar.
// Language defaults to "ko"; Canonical is omitted when empty.
type Page struct {
	Title     string
	Language  string
	Path      string
	Canonical string
}

type navbarData struct {
	View       View
	Breakpoint int
	Style      template.CSS
}

type pageData struct {
	Page
	Navbar template.HTML
}

func NewRenderer(theme Theme) (*Renderer, error) {
	if err := theme.Validate(); err != nil {
		return nil, fmt.Errorf("invalid navbar theme: %w", err)
	}

	versions, err := assetVersions()
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		theme:     theme,
		sanitizer: iconPolicy(),
		versions:  versions,
		icons:     make(map[string]template.HTML),
	}

	tmpl, err := utils.LoadTemplates(templateFS, "templates", r.assetVersion, template.FuncMap{
		"icon": r.icon,
	})
	if err != nil {
		return nil, err
	}
	r.templates = tmpl

	return r, nil
}

// Static exposes the embedded stylesheet and script, rooted at "static".
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Render writes the aside element for view.
func (r *Renderer) Render(w io.Writer, view View) error {
	data := navbarData{
		View:       view,
		Breakpoint: Breakpoint,
		Style:      r.theme.Style(),
	}
	if err := r.templates.ExecuteTemplate(w, "navbar", data); err != nil {
		return fmt.Errorf("failed to render navbar: %w", err)
	}
	return nil
}

func (r *Renderer) RenderString(view View) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderPage writes a full HTML document with the bar. navbarHTML is the
// output of Render, possibly served from a cache.
func (r *Renderer) RenderPage(w io.Writer, page Page, navbarHTML string) error {
	data := pageData{
		Page:   page,
		Navbar: template.HTML(navbarHTML),
	}
	if err := r.templates.ExecuteTemplate(w, "base.html", data); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

func (r *Renderer) icon(markup string) template.HTML {
	r.mu.RLock()
	cached, ok := r.icons[markup]
	r.mu.RUnlock()
	if ok {
		return cached
	}

	sanitized := template.HTML(r.sanitizer.Sanitize(markup))

	r.mu.Lock()
	r.icons[markup] = sanitized
	r.mu.Unlock()

	return sanitized
}

func (r *Renderer) assetVersion(assetPath string) string {
	return r.versions[assetPath]
}

func assetVersions() (map[string]string, error) {
	versions := make(map[string]string)
	err := fs.WalkDir(staticFS, "static", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := staticFS.ReadFile(name)
		if err != nil {
			return err
		}
		versions["/"+name] = strconv.FormatUint(xxhash.Sum64(data), 36)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fingerprint navbar assets: %w", err)
	}
	return versions, nil
}

// iconPolicy allows inline SVG icons and profile images, nothing scriptable.
func iconPolicy() *bluemonday.Policy {
	policy := bluemonday.NewPolicy()
	policy.AllowElements("svg", "g", "path", "circle", "rect", "line", "polyline", "polygon", "ellipse", "title", "figure", "div", "span")
	policy.AllowAttrs(
		"viewBox", "fill", "stroke", "stroke-width", "stroke-linecap", "stroke-linejoin",
		"d", "cx", "cy", "r", "rx", "ry", "x", "y", "x1", "y1", "x2", "y2",
		"points", "transform", "width", "height", "xmlns",
	).OnElements("svg", "g", "path", "circle", "rect", "line", "polyline", "polygon", "ellipse")
	policy.AllowNoAttrs().OnElements("svg", "g", "figure", "div", "span", "title")
	policy.AllowAttrs("class").Globally()
	policy.AllowImages()
	policy.AllowStandardURLs()
	policy.AllowAttrs("src", "alt", "width", "height").OnElements("img")
	return policy
}
