package localize_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize"
)

const (
	enPluralForms = "nplurals=2; plural=(n != 1);"
	dePluralForms = "nplurals=2; plural=(n != 1);"
	ukPluralForms = "nplurals=3; plural=(n%10==1 && n%100!=11 ? 0 : n%10>=2 && n%10<=4 && (n%100<12 || n%100>14) ? 1 : 2);"
)

const enCatalog = `msgid ""
msgstr ""
"Language: en\n"
"Content-Type: text/plain; charset=UTF-8\n"
"Plural-Forms: nplurals=2; plural=(n != 1);\n"

msgid "Hello"
msgstr "Hello"

msgid "%d item"
msgid_plural "%d items"
msgstr[0] "%d item"
msgstr[1] "%d items"
`

const ukCatalog = `msgid ""
msgstr ""
"Language: uk\n"
"Content-Type: text/plain; charset=UTF-8\n"
"Plural-Forms: nplurals=3; plural=(n%10==1 && n%100!=11 ? 0 : n%10>=2 && n%10<=4 && (n%100<12 || n%100>14) ? 1 : 2);\n"

msgid "Hello"
msgstr "Привіт"

msgid "%d item"
msgid_plural "%d items"
msgstr[0] "%d предмет"
msgstr[1] "%d предмети"
msgstr[2] "%d предметів"
`

// deCatalog has no header on purpose: the loader must inject the registry's
// plural rule before parsing.
const deCatalog = `msgid "Hello"
msgstr "Hallo"

msgid "%d item"
msgid_plural "%d items"
msgstr[0] "%d Artikel"
msgstr[1] "%d Artikel"
`

// writeCatalog places a PO file at <dir>/<code>/LC_MESSAGES/<domain>.po.
func writeCatalog(t *testing.T, dir, code, domain, content string) {
	t.Helper()
	msgDir := filepath.Join(dir, code, "LC_MESSAGES")
	require.NoError(t, os.MkdirAll(msgDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(msgDir, domain+".po"), []byte(content), 0o644))
}

// newLoadedService builds a service over a temp catalog dir with en and uk
// catalogs and loads it.
func newLoadedService(t *testing.T, opts ...localize.Option) *localize.Service {
	t.Helper()

	dir := t.TempDir()
	writeCatalog(t, dir, "en", localize.DefaultDomain, enCatalog)
	writeCatalog(t, dir, "uk", localize.DefaultDomain, ukCatalog)

	opts = append([]localize.Option{
		localize.WithDefaultLocale("en"),
		localize.WithLanguage("en", "English", enPluralForms),
		localize.WithLanguage("uk", "Ukrainian", ukPluralForms),
		localize.WithCatalogDir(dir),
	}, opts...)

	svc, err := localize.New(opts...)
	require.NoError(t, err)
	require.NoError(t, svc.Load(context.Background()))
	return svc
}
