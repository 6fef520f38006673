// Package views renders the html pages of the app from the embedded templates.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/fitlog/internal/auth"
	"github.com/2beens/fitlog/pkg"

	log "github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTitles = map[string]string{
	"home":      "Home",
	"signup":    "Sign up",
	"login":     "Login",
	"dashboard": "Dashboard",
	"workouts":  "Workouts",
}

type flashPopper interface {
	PopFlashes(w http.ResponseWriter, r *http.Request) []auth.Flash
}

// Page is what every template is executed with.
type Page struct {
	Title    string
	Identity *auth.Identity
	Flashes  []auth.Flash
	Version  string
	Data     any
}

type Renderer struct {
	pages       map[string]*template.Template
	flashes     flashPopper
	versionInfo string
}

func NewRenderer(flashes flashPopper, versionInfo string) (*Renderer, error) {
	funcs := template.FuncMap{
		"date":     formatDate,
		"number":   formatNumber,
		"calories": formatCalories,
	}

	pages := make(map[string]*template.Template, len(pageTitles))
	for page := range pageTitles {
		tmpl, err := template.New(page).Funcs(funcs).ParseFS(
			templatesFS,
			"templates/base.html",
			"templates/"+page+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		pages[page] = tmpl
	}

	return &Renderer{
		pages:       pages,
		flashes:     flashes,
		versionInfo: versionInfo,
	}, nil
}

// Render writes the page with status 200. Pending flashes are consumed.
func (r *Renderer) Render(w http.ResponseWriter, req *http.Request, page string, data any) {
	tmpl, ok := r.pages[page]
	if !ok {
		log.Errorf("render: unknown page [%s]", page)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	identity, _ := auth.IdentityFromContext(req.Context())
	p := Page{
		Title:    pageTitles[page],
		Identity: identity,
		Flashes:  r.flashes.PopFlashes(w, req),
		Version:  r.versionInfo,
		Data:     data,
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", p); err != nil {
		log.Errorf("render page [%s]: %s", page, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.HTML, buf.Bytes())
}

func formatDate(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatCalories(v *float64) string {
	if v == nil {
		return "-"
	}
	return formatNumber(*v)
}
