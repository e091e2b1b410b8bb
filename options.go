package localize

import (
	"io/fs"
	"log/slog"
)

// Option configures the Service during construction.
type Option func(*Service) error

// WithDefaultLocale sets the locale used when resolution finds no match.
// A locale configured here must load successfully or Load fails.
func WithDefaultLocale(code string) Option {
	return func(s *Service) error {
		if code == "" {
			return ErrEmptyLocale
		}
		s.defaultCode = code
		s.defaultSet = true
		return nil
	}
}

// WithLanguage registers a single language. The plural-forms expression is
// the gettext Plural-Forms rule for the language, e.g. "nplurals=2;
// plural=(n != 1);". It is required: a catalog cannot select plural forms
// without it.
func WithLanguage(code, name, pluralForms string) Option {
	return func(s *Service) error {
		if code == "" {
			return ErrEmptyLocale
		}
		s.registry[code] = Language{Code: code, Name: name, PluralForms: pluralForms}
		return nil
	}
}

// WithLanguages registers multiple languages at once.
func WithLanguages(langs ...Language) Option {
	return func(s *Service) error {
		for _, lang := range langs {
			if lang.Code == "" {
				return ErrEmptyLocale
			}
			s.registry[lang.Code] = lang
		}
		return nil
	}
}

// WithCatalogDir sets the directory holding catalogs, laid out as
// <dir>/<code>/LC_MESSAGES/<domain>.po. Defaults to "i18n" relative to the
// working directory.
func WithCatalogDir(path string) Option {
	return func(s *Service) error {
		if path == "" {
			return ErrEmptyPath
		}
		s.catalogDir = path
		s.catalogFS = nil
		return nil
	}
}

// WithCatalogFS loads catalogs from an fs.FS instead of the OS filesystem.
// The fs.FS root must contain the language directories directly, using the
// same <code>/LC_MESSAGES/<domain>.po layout. Useful with embed.FS.
func WithCatalogFS(fsys fs.FS) Option {
	return func(s *Service) error {
		s.catalogFS = fsys
		return nil
	}
}

// WithDomain sets the gettext domain (the catalog file base name).
// Defaults to "messages".
func WithDomain(domain string) Option {
	return func(s *Service) error {
		if domain == "" {
			return ErrEmptyDomain
		}
		s.domain = domain
		return nil
	}
}

// WithLogger sets the logger used for load diagnostics and fallback traces.
// Defaults to a no-op logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) error {
		if log != nil {
			s.logger = log
		}
		return nil
	}
}
