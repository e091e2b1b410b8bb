package localize_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize"
)

const registryYAML = `en:
  name: English
  plural_forms: "nplurals=2; plural=(n != 1);"
uk:
  name: Ukrainian
  plural_forms: "nplurals=3; plural=(n%10==1 && n%100!=11 ? 0 : n%10>=2 && n%10<=4 && (n%100<12 || n%100>14) ? 1 : 2);"
`

func writeRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "languages.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestWithRegistryFile(t *testing.T) {
	t.Parallel()

	t.Run("registers languages from yaml", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeCatalog(t, dir, "en", localize.DefaultDomain, enCatalog)
		writeCatalog(t, dir, "uk", localize.DefaultDomain, ukCatalog)

		svc, err := localize.New(
			localize.WithRegistryFile(writeRegistry(t, registryYAML)),
			localize.WithCatalogDir(dir),
		)
		require.NoError(t, err)
		require.NoError(t, svc.Load(context.Background()))

		require.Equal(t, []string{"en", "uk"}, svc.Languages())
		require.Equal(t, "Ukrainian", svc.Locale("uk").Name())
	})

	t.Run("fails on missing file", func(t *testing.T) {
		t.Parallel()
		_, err := localize.New(
			localize.WithRegistryFile(filepath.Join(t.TempDir(), "nope.yaml")),
		)
		require.Error(t, err)
		require.ErrorIs(t, err, localize.ErrInvalidRegistryFile)
	})

	t.Run("fails on malformed yaml", func(t *testing.T) {
		t.Parallel()
		_, err := localize.New(
			localize.WithRegistryFile(writeRegistry(t, "en: [not a mapping")),
		)
		require.Error(t, err)
		require.ErrorIs(t, err, localize.ErrInvalidRegistryFile)
	})

	t.Run("fails on empty path", func(t *testing.T) {
		t.Parallel()
		_, err := localize.New(localize.WithRegistryFile(""))
		require.Error(t, err)
		require.ErrorIs(t, err, localize.ErrEmptyPath)
	})
}
