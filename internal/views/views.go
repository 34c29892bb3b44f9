// Package views renderiza las páginas server-side desde templates embebidos.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"pet-wellness-web/internal/domain/users"
	"pet-wellness-web/internal/platform/logger"
)

//go:embed templates/*.html
var files embed.FS

// Nombres de página (= template templates/<name>.html).
const (
	PageLogin        = "login"
	PageSignup       = "signup"
	PagePersonalInfo = "personal-info"
	PageAddPet       = "add-pet"
	PageDashboard    = "dashboard"
)

var pages = []string{PageLogin, PageSignup, PagePersonalInfo, PageAddPet, PageDashboard}

// Page es lo que recibe cada template.
type Page struct {
	Title  string
	Active string // path del menú lateral
	User   *users.User
	Error  string
	Fields map[string]string // errores por campo
	Data   any
}

type Renderer struct {
	pages map[string]*template.Template
	log   logger.Logger
}

func New(log logger.Logger) (*Renderer, error) {
	if log == nil {
		log = logger.Nop()
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(pages)), log: log}
	for _, name := range pages {
		t, err := template.New(name).Funcs(funcs).ParseFS(files, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("views: parse %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render ejecuta en buffer para no dejar respuestas a medias si el template falla.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, p Page) {
	t, ok := r.pages[name]
	if !ok {
		r.log.Error("unknown page", map[string]any{"page": name})
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", p); err != nil {
		r.log.Error("render failed", map[string]any{"page": name, "err": err})
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

var funcs = template.FuncMap{
	// safeURL deja pasar data URIs de imágenes (html/template las filtra por defecto).
	"safeURL": func(s string) template.URL {
		if strings.HasPrefix(s, "data:image/") || strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "http://") {
			return template.URL(s)
		}
		return ""
	},
	"initials": func(u *users.User) string {
		if u == nil {
			return ""
		}
		var b strings.Builder
		for _, s := range []string{u.FirstName, u.LastName} {
			if s = strings.TrimSpace(s); s != "" {
				r, _ := utf8.DecodeRuneInString(s)
				b.WriteRune(unicode.ToUpper(r))
			}
		}
		return b.String()
	},
	"is": func(a, b any) bool { return fmt.Sprint(a) == fmt.Sprint(b) },
	"fieldErr": func(fields map[string]string, name string) string {
		return fields[name]
	},
}
