package localize

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// Locale is one loaded catalog with its translation functions. A Locale
// without a catalog (the degraded fallback) echoes message IDs, formatted
// with the given arguments. The zero/nil Locale behaves the same way, so
// translation calls are always safe.
type Locale struct {
	code   string
	name   string
	po     *gotext.Po
	logger *slog.Logger
}

// Code returns the locale code, e.g. "uk".
func (l *Locale) Code() string {
	if l == nil {
		return ""
	}
	return l.code
}

// Name returns the language display name from the registry.
func (l *Locale) Name() string {
	if l == nil {
		return ""
	}
	return l.name
}

// T translates a message ID and formats it with the given arguments.
// Unknown message IDs fall back to formatting the ID itself.
func (l *Locale) T(msgid string, args ...any) string {
	if l == nil || l.po == nil {
		return l.formatFallback(msgid, args...)
	}
	return l.po.Get(msgid, args...)
}

// Tn translates a message with plural support, selecting the plural form
// for n via the catalog's plural rule, and formats it with the given
// arguments. Without a catalog it picks singular iff n == 1.
func (l *Locale) Tn(singular, plural string, n int, args ...any) string {
	if l == nil || l.po == nil {
		if n == 1 {
			return l.formatFallback(singular, args...)
		}
		return l.formatFallback(plural, args...)
	}
	return l.po.GetN(singular, plural, n, args...)
}

// formatFallback formats an untranslated message ID as a template. A
// formatting mismatch degrades to the verbatim text rather than leaking
// fmt error markers to the caller.
func (l *Locale) formatFallback(text string, args ...any) string {
	if len(args) == 0 {
		return text
	}

	out := fmt.Sprintf(text, args...)
	if strings.Contains(out, "%!") {
		if l != nil && l.logger != nil {
			l.logger.Error("localize: message formatting failed", "locale", l.code, "msgid", text)
		}
		return text
	}
	return out
}
