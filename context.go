package localize

import "context"

// localeKey is the context key used to store the resolved Locale.
type localeKey struct{}

// WithLocale stores the resolved locale in the context.
func WithLocale(ctx context.Context, loc *Locale) context.Context {
	return context.WithValue(ctx, localeKey{}, loc)
}

// LocaleFromContext extracts the resolved Locale from the context.
// Returns nil when the middleware is not in the chain; the nil Locale is
// safe to call and echoes message IDs.
func LocaleFromContext(ctx context.Context) *Locale {
	loc, _ := ctx.Value(localeKey{}).(*Locale)
	return loc
}

// T translates a message ID using the locale resolved for the request.
func T(ctx context.Context, msgid string, args ...any) string {
	return LocaleFromContext(ctx).T(msgid, args...)
}

// Tn translates a message with plural support using the locale resolved
// for the request.
func Tn(ctx context.Context, singular, plural string, n int, args ...any) string {
	return LocaleFromContext(ctx).Tn(singular, plural, n, args...)
}
