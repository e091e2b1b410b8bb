// Package localize loads gettext PO message catalogs and resolves a locale
// per HTTP request.
//
// The package wraps the gotext runtime with an instance-scoped service:
// languages are registered at construction, catalogs are loaded once, and
// the resulting locales are immutable and safe for concurrent use. Plural
// selection, PO parsing, and Accept-Language negotiation are delegated to
// github.com/leonelquinteros/gotext and golang.org/x/text/language.
//
// # Basic Usage
//
// Register languages, load catalogs, and translate:
//
//	svc, err := localize.New(
//		localize.WithDefaultLocale("en"),
//		localize.WithLanguage("en", "English", "nplurals=2; plural=(n != 1);"),
//		localize.WithLanguage("uk", "Ukrainian", "nplurals=3; plural=(n%10==1 && n%100!=11 ? 0 : n%10>=2 && n%10<=4 && (n%100<12 || n%100>14) ? 1 : 2);"),
//		localize.WithCatalogDir("./i18n"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := svc.Load(ctx); err != nil {
//		// Partial failures are joined here; loaded languages still work.
//		slog.Warn("some catalogs failed to load", "error", err)
//	}
//
//	loc := svc.Locale("uk")
//	loc.T("Hello")                      // "Привіт"
//	loc.Tn("%d item", "%d items", 5, 5) // "5 предметів"
//
// Catalogs follow the gettext layout <dir>/<code>/LC_MESSAGES/<domain>.po
// with the domain defaulting to "messages".
//
// # Catalog Loading
//
// Load fetches every registered catalog concurrently. A language that fails
// to load (missing plural rule, missing file) is skipped and reported
// through the joined error; its siblings still load. A configured default
// locale that fails to load is a hard error.
//
// # HTTP Middleware
//
// The middleware resolves each request's locale from the query parameter,
// cookie, and Accept-Language header, and stores it in the request context:
//
//	r := chi.NewRouter()
//	r.Use(localize.Middleware(svc))
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//		fmt.Fprint(w, localize.T(r.Context(), "Hello"))
//	})
//
// # Rendering
//
// HTMLRenderer executes html/template views with T and Tn (plus the legacy
// aliases __ and _n) bound to the request's locale:
//
//	renderer, _ := localize.NewHTMLRenderer(viewsFS, "views/*.html")
//	renderer.Render(w, r, "hello.html", map[string]any{"Count": 3})
//
// # Configuration
//
// Besides functional options, language registries can be loaded from a YAML
// file (WithRegistryFile) and base settings from the environment
// (LoadConfig), with catalogs served from any fs.FS including embed.FS.
package localize
