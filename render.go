package localize

import (
	"html/template"
	"io"
	"io/fs"
	"net/http"
)

// Renderer renders a named view with the request's locale applied.
// It replaces response-level render interception: translation helpers are
// injected into the template explicitly, never by patching the response.
type Renderer interface {
	Render(w io.Writer, r *http.Request, view string, data any) error
}

// HTMLRenderer renders html/template views with the translation helpers
// bound to the locale resolved for each request.
type HTMLRenderer struct {
	templates *template.Template
}

// NewHTMLRenderer parses templates matching the glob pattern from fsys.
// The templates may call the helpers T, Tn and their legacy aliases
// __ and _n:
//
//	<h1>{{T "Welcome"}}</h1>
//	<p>{{Tn "%d item" "%d items" .Count .Count}}</p>
func NewHTMLRenderer(fsys fs.FS, pattern string) (*HTMLRenderer, error) {
	tmpl, err := template.New("").Funcs(HelperFuncs(nil)).ParseFS(fsys, pattern)
	if err != nil {
		return nil, err
	}
	return &HTMLRenderer{templates: tmpl}, nil
}

// Render executes the named view, rebinding the translation helpers to the
// locale carried by the request context.
func (h *HTMLRenderer) Render(w io.Writer, r *http.Request, view string, data any) error {
	tmpl, err := h.templates.Clone()
	if err != nil {
		return err
	}
	return tmpl.Funcs(HelperFuncs(LocaleFromContext(r.Context()))).ExecuteTemplate(w, view, data)
}

// HelperFuncs returns the translation helper FuncMap for a locale, for use
// in custom template pipelines. The nil locale echoes message IDs.
func HelperFuncs(loc *Locale) template.FuncMap {
	return template.FuncMap{
		"T":  loc.T,
		"Tn": loc.Tn,
		"__": loc.T,
		"_n": loc.Tn,
	}
}
