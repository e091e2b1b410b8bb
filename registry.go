package localize

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Language describes one registered language: its locale code, a display
// name, and the gettext Plural-Forms expression used to select plural
// translations.
type Language struct {
	Code        string `yaml:"-"`
	Name        string `yaml:"name"`
	PluralForms string `yaml:"plural_forms"`
}

// WithRegistryFile registers languages from a YAML file mapping locale
// codes to language entries:
//
//	en:
//	  name: English
//	  plural_forms: "nplurals=2; plural=(n != 1);"
//	uk:
//	  name: Ukrainian
//	  plural_forms: "nplurals=3; plural=(n%10==1 && n%100!=11 ? 0 : n%10>=2 && n%10<=4 && (n%100<12 || n%100>14) ? 1 : 2);"
func WithRegistryFile(path string) Option {
	return func(s *Service) error {
		if path == "" {
			return ErrEmptyPath
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidRegistryFile, path, err)
		}

		var raw map[string]Language
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidRegistryFile, path, err)
		}

		for code, lang := range raw {
			if code == "" {
				return ErrEmptyLocale
			}
			lang.Code = code
			s.registry[code] = lang
		}

		return nil
	}
}
