package localize

import (
	"net/http"

	"golang.org/x/text/language"
)

// Source extracts a candidate locale code from the request.
// Returns the code and true if found, or ("", false) if not present.
type Source func(*http.Request) (string, bool)

// MiddlewareOption configures the middleware.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	queryParam string
	cookieName string
	sources    []Source
	sourcesSet bool
}

// WithQueryParam sets the query parameter checked for a locale override.
// Defaults to "lang".
func WithQueryParam(name string) MiddlewareOption {
	return func(cfg *middlewareConfig) {
		cfg.queryParam = name
	}
}

// WithCookieName sets the cookie checked for a locale preference.
// Defaults to "lang".
func WithCookieName(name string) MiddlewareOption {
	return func(cfg *middlewareConfig) {
		cfg.cookieName = name
	}
}

// WithSources replaces the default extraction chain
// (query -> cookie -> Accept-Language) with a custom one.
func WithSources(sources ...Source) MiddlewareOption {
	return func(cfg *middlewareConfig) {
		cfg.sources = sources
		cfg.sourcesSet = true
	}
}

// FromQuery returns a Source reading a query parameter.
func FromQuery(name string) Source {
	return func(r *http.Request) (string, bool) {
		v := r.URL.Query().Get(name)
		return v, v != ""
	}
}

// FromCookie returns a Source reading a plain cookie.
func FromCookie(name string) Source {
	return func(r *http.Request) (string, bool) {
		c, err := r.Cookie(name)
		if err != nil || c.Value == "" {
			return "", false
		}
		return c.Value, true
	}
}

// FromAcceptLanguage returns a Source that negotiates the Accept-Language
// header against the available locale codes with a language matcher.
func FromAcceptLanguage(matcher language.Matcher, codes []string) Source {
	return func(r *http.Request) (string, bool) {
		header := r.Header.Get("Accept-Language")
		if header == "" {
			return "", false
		}
		tags, _, err := language.ParseAcceptLanguage(header)
		if err != nil || len(tags) == 0 {
			return "", false
		}
		_, idx, conf := matcher.Match(tags...)
		if conf == language.No {
			return "", false
		}
		return codes[idx], true
	}
}

// Middleware resolves the request's locale and stores it in the request
// context. The extraction chain tries the query parameter, then the cookie,
// then Accept-Language negotiation over the loaded languages; a miss falls
// back to the default locale. The negotiation matcher is built once here,
// so call Middleware after Load.
func Middleware(svc *Service, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{
		queryParam: "lang",
		cookieName: "lang",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if !cfg.sourcesSet {
		cfg.sources = []Source{
			FromQuery(cfg.queryParam),
			FromCookie(cfg.cookieName),
		}
		if codes := svc.Languages(); len(codes) > 0 {
			tags := make([]language.Tag, len(codes))
			for i, code := range codes {
				tags[i] = language.Make(code)
			}
			cfg.sources = append(cfg.sources, FromAcceptLanguage(language.NewMatcher(tags), codes))
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var code string
			for _, src := range cfg.sources {
				if v, ok := src(r); ok && v != "" {
					code = v
					break
				}
			}

			loc := svc.Locale(code)
			next.ServeHTTP(w, r.WithContext(WithLocale(r.Context(), loc)))
		})
	}
}
