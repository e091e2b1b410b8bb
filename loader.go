package localize

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/leonelquinteros/gotext"
)

// loadCatalog locates, reads, and parses the PO catalog for one language.
func (s *Service) loadCatalog(lang Language) (*Locale, error) {
	if lang.Name == "" || lang.PluralForms == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoPluralForms, lang.Code)
	}

	fsys := s.catalogFS
	if fsys == nil {
		fsys = os.DirFS(s.catalogDir)
	}

	name := path.Join(lang.Code, "LC_MESSAGES", s.domain+".po")
	if _, err := fs.Stat(fsys, name); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrCatalogNotFound, lang.Code, name)
	}

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCatalogRead, lang.Code, err)
	}

	// gotext's parser is tolerant: arbitrary bytes produce an empty catalog
	// rather than an error, which would register a garbage file as loaded.
	if !looksLikePo(data) {
		return nil, fmt.Errorf("%w: %s: no msgid entries in %s", ErrCatalogParse, lang.Code, name)
	}

	po := gotext.NewPo()
	po.Parse(withPluralHeader(data, lang))

	s.logger.Debug("localize: catalog loaded", "locale", lang.Code, "file", name)

	return &Locale{
		code:   lang.Code,
		name:   lang.Name,
		po:     po,
		logger: s.logger,
	}, nil
}

// withPluralHeader makes sure the catalog carries a Plural-Forms header,
// injecting one built from the registry entry when the file declares none.
// The gettext runtime needs it to select plural forms; a rule declared in
// the file's header wins over the registry rule.
func withPluralHeader(data []byte, lang Language) []byte {
	header := fmt.Sprintf("\"Language: %s\\n\"\n\"Plural-Forms: %s\\n\"\n", lang.Code, lang.PluralForms)

	// A PO header is the entry with the empty msgid. Extend it in place when
	// the file has one, otherwise prepend a synthetic header entry.
	marker := []byte("msgstr \"\"\n")
	if idx := bytes.Index(data, marker); idx >= 0 && bytes.Contains(data[:idx], []byte(`msgid ""`)) {
		cut := idx + len(marker)
		if headerHasPluralForms(data[cut:]) {
			return data
		}
		out := make([]byte, 0, len(data)+len(header))
		out = append(out, data[:cut]...)
		out = append(out, header...)
		out = append(out, data[cut:]...)
		return out
	}

	out := make([]byte, 0, len(data)+len(header)+32)
	out = append(out, "msgid \"\"\nmsgstr \"\"\n"...)
	out = append(out, header...)
	out = append(out, '\n')
	return append(out, data...)
}

// headerHasPluralForms reports whether the header entry's continuation
// lines (the quoted strings after its msgstr "") declare a Plural-Forms
// rule. Only the header is inspected: a translation that merely mentions
// "Plural-Forms:" must not suppress injection.
func headerHasPluralForms(rest []byte) bool {
	for len(rest) > 0 {
		line := rest
		if i := bytes.IndexByte(rest, '\n'); i >= 0 {
			line, rest = rest[:i], rest[i+1:]
		} else {
			rest = nil
		}
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] != '"' {
			return false
		}
		if bytes.Contains(line, []byte("Plural-Forms:")) {
			return true
		}
	}
	return false
}

// looksLikePo reports whether the data contains at least one msgid
// directive.
func looksLikePo(data []byte) bool {
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimSpace(line), []byte("msgid")) {
			return true
		}
	}
	return false
}
