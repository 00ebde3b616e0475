package polyglot

import (
	"context"
	"net/http"
)

type translatorCtxKey struct{}

// MiddlewareConfig configures Middleware.
type MiddlewareConfig struct {
	// Header is the request header carrying the locale preference.
	// Defaults to "Accept-Language".
	Header string

	// Preference, when set, is consulted before the header and wins when it
	// reports true. Use it for cookie or query-parameter language overrides.
	Preference func(r *http.Request) (Preference, bool)
}

// MiddlewareOption configures MiddlewareConfig.
type MiddlewareOption func(*MiddlewareConfig)

// WithPreferenceHeader overrides the header the middleware reads.
func WithPreferenceHeader(name string) MiddlewareOption {
	return func(cfg *MiddlewareConfig) {
		if name != "" {
			cfg.Header = name
		}
	}
}

// WithPreferenceFunc sets a preference source tried before the header.
func WithPreferenceFunc(fn func(r *http.Request) (Preference, bool)) MiddlewareOption {
	return func(cfg *MiddlewareConfig) {
		cfg.Preference = fn
	}
}

// Middleware returns standard net/http middleware that negotiates the
// client's locale preference and stores a request-scoped Translator in the
// context. Handlers retrieve it with TranslatorFromContext.
func Middleware(store *Store, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	if store == nil {
		panic("polyglot: store is not provided")
	}

	cfg := &MiddlewareConfig{Header: "Accept-Language"}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var prefs Preference
			var ok bool

			if cfg.Preference != nil {
				prefs, ok = cfg.Preference(r)
			}
			if !ok {
				prefs = ParseAcceptLanguage(r.Header.Get(cfg.Header))
			}

			tr := NewTranslator(store, prefs)
			ctx := context.WithValue(r.Context(), translatorCtxKey{}, tr)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TranslatorFromContext extracts the Translator stored by Middleware.
// Returns nil if the middleware is not used.
func TranslatorFromContext(ctx context.Context) *Translator {
	if tr, ok := ctx.Value(translatorCtxKey{}).(*Translator); ok {
		return tr
	}
	return nil
}
