package localize

import (
	"errors"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carries environment-driven settings for the Service.
type Config struct {
	DefaultLocale string `env:"LOCALIZE_DEFAULT_LOCALE" envDefault:"en"`
	CatalogDir    string `env:"LOCALIZE_CATALOG_DIR" envDefault:"i18n"`
	Domain        string `env:"LOCALIZE_DOMAIN" envDefault:"messages"`
	RegistryFile  string `env:"LOCALIZE_REGISTRY_FILE"`
}

// ErrParsingConfig is returned when environment variables cannot be parsed
// into the Config struct.
var ErrParsingConfig = errors.New("localize: failed to parse environment config")

// LoadConfig reads Config from the environment. A .env file in the working
// directory is loaded first when present.
func LoadConfig() (Config, error) {
	// The .env file might not exist and that's ok.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// Options maps the Config to Service options.
func (c Config) Options() []Option {
	opts := []Option{
		WithDefaultLocale(c.DefaultLocale),
		WithCatalogDir(c.CatalogDir),
		WithDomain(c.Domain),
	}
	if c.RegistryFile != "" {
		opts = append(opts, WithRegistryFile(c.RegistryFile))
	}
	return opts
}
