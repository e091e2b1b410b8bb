package localize

import "errors"

var (
	ErrEmptyLocale         = errors.New("localize: locale code cannot be empty")
	ErrEmptyPath           = errors.New("localize: catalog path cannot be empty")
	ErrEmptyDomain         = errors.New("localize: domain cannot be empty")
	ErrNoPluralForms       = errors.New("localize: language has no plural information")
	ErrCatalogNotFound     = errors.New("localize: could not locate catalog file")
	ErrCatalogRead         = errors.New("localize: could not read catalog file")
	ErrCatalogParse        = errors.New("localize: could not parse catalog file")
	ErrDefaultNotLoaded    = errors.New("localize: default locale did not load")
	ErrNoLocalesLoaded     = errors.New("localize: no locales loaded")
	ErrInvalidRegistryFile = errors.New("localize: invalid registry file")
)
