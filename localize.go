package localize

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultLocaleCode is the locale used when no default is configured.
const DefaultLocaleCode = "en"

// DefaultDomain is the gettext domain used when none is configured.
// Catalogs are expected at <dir>/<code>/LC_MESSAGES/<domain>.po.
const DefaultDomain = "messages"

// Service loads gettext catalogs for a set of registered languages and
// resolves locale codes to loaded catalogs. Configuration happens at
// construction; catalogs are loaded once via Load. After Load returns the
// Service is immutable and safe for concurrent use.
type Service struct {
	registry      map[string]Language
	locales       map[string]*Locale
	languages     []string
	logger        *slog.Logger
	catalogFS     fs.FS
	catalogDir    string
	domain        string
	defaultCode   string
	defaultSet    bool
	defaultLocale *Locale
}

// New creates a Service with the given options. It validates configuration
// only; catalogs are loaded separately via Load.
func New(opts ...Option) (*Service, error) {
	s := &Service{
		registry:    make(map[string]Language),
		locales:     make(map[string]*Locale),
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		catalogDir:  "i18n",
		domain:      DefaultDomain,
		defaultCode: DefaultLocaleCode,
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if len(s.registry) == 0 {
		s.logger.Warn("localize: no languages registered")
	}

	return s, nil
}

// Load reads and parses the catalog of every registered language.
// Languages are loaded concurrently; a failed language is skipped while its
// siblings still load. The returned error joins every per-language failure,
// so errors.Is can match the individual sentinel errors.
//
// Load must complete before the Service is used to serve requests; it is the
// only operation that writes the loaded-locale map.
func (s *Service) Load(ctx context.Context) error {
	var (
		mu   sync.Mutex
		errs []error
	)

	g, ctx := errgroup.WithContext(ctx)
	for _, lang := range s.registry {
		lang := lang
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			loc, err := s.loadCatalog(lang)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				s.logger.Error("localize: catalog load failed", "locale", lang.Code, "error", err)
				errs = append(errs, err)
				return nil
			}
			s.locales[lang.Code] = loc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		errs = append(errs, err)
	}

	if len(s.registry) > 0 && len(s.locales) == 0 {
		errs = append(errs, ErrNoLocalesLoaded)
	}

	if err := s.resolveDefault(); err != nil {
		errs = append(errs, err)
	}

	s.languages = s.buildLanguagesList()

	return errors.Join(errs...)
}

// resolveDefault pins the default locale after loading. An explicitly
// configured default that failed to load is a hard error; otherwise the
// first loaded locale in code order takes over. With nothing loaded the
// default degrades to a catalog-less locale that echoes message IDs.
func (s *Service) resolveDefault() error {
	if loc, ok := s.locales[s.defaultCode]; ok {
		s.defaultLocale = loc
		return nil
	}

	if s.defaultSet {
		s.defaultLocale = s.fallbackLocale(s.defaultCode)
		return fmt.Errorf("%w: %s", ErrDefaultNotLoaded, s.defaultCode)
	}

	codes := make([]string, 0, len(s.locales))
	for code := range s.locales {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	if len(codes) > 0 {
		s.defaultCode = codes[0]
		s.defaultLocale = s.locales[codes[0]]
		s.logger.Info("localize: default locale promoted", "locale", s.defaultCode)
		return nil
	}

	s.defaultLocale = s.fallbackLocale(s.defaultCode)
	return nil
}

func (s *Service) fallbackLocale(code string) *Locale {
	return &Locale{code: code, logger: s.logger}
}

// Locale resolves a locale code to a loaded catalog. It tries the exact
// code, then the base language (en-US -> en), then falls back to the
// default locale.
func (s *Service) Locale(code string) *Locale {
	if loc, ok := s.locales[code]; ok {
		return loc
	}

	if base := baseCode(code); base != code {
		if loc, ok := s.locales[base]; ok {
			s.logger.Debug("localize: using base locale", "requested", code, "locale", base)
			return loc
		}
	}

	s.logger.Debug("localize: locale not loaded, falling back to default", "requested", code, "default", s.defaultCode)
	if s.defaultLocale != nil {
		return s.defaultLocale
	}
	return s.fallbackLocale(s.defaultCode)
}

// DefaultLocale returns the locale used when resolution falls through.
// It is non-nil after Load.
func (s *Service) DefaultLocale() *Locale {
	if s.defaultLocale != nil {
		return s.defaultLocale
	}
	return s.fallbackLocale(s.defaultCode)
}

// Languages returns the loaded locale codes with the default locale first
// and the rest sorted alphabetically. It is empty before Load.
func (s *Service) Languages() []string {
	return s.languages
}

// Domain returns the configured gettext domain.
func (s *Service) Domain() string {
	return s.domain
}

func (s *Service) buildLanguagesList() []string {
	if len(s.locales) == 0 {
		return nil
	}

	others := make([]string, 0, len(s.locales))
	for code := range s.locales {
		if code != s.defaultCode {
			others = append(others, code)
		}
	}
	sort.Strings(others)

	languages := make([]string, 0, len(s.locales))
	if _, ok := s.locales[s.defaultCode]; ok {
		languages = append(languages, s.defaultCode)
	}
	return append(languages, others...)
}

// baseCode strips the region from a locale code (e.g., "en-US" -> "en").
// Returns the input unchanged if there is no region.
func baseCode(code string) string {
	for i := 0; i < len(code); i++ {
		if code[i] == '-' || code[i] == '_' {
			if i == 0 {
				return code
			}
			return code[:i]
		}
	}
	return code
}
