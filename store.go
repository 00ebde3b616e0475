package polyglot

import (
	"errors"
	"log/slog"
	"sync/atomic"
)

// Store publishes the active CatalogSet to concurrent readers. Lookups are
// lock-free: each resolution acquires one snapshot reference and uses it for
// the full fallback walk, while Load swaps in a freshly built set atomically.
// Neither side ever blocks the other.
type Store struct {
	current    atomic.Pointer[CatalogSet]
	missingKey func(key string, prefs Preference)
	logger     *slog.Logger
}

// StoreOption configures the Store during construction.
type StoreOption func(*Store)

// WithMissingKeyHandler sets a handler invoked when a key is not found in the
// full fallback walk, before the error is returned. Useful for detecting
// untranslated keys during development or monitoring gaps in catalogs.
func WithMissingKeyHandler(handler func(key string, prefs Preference)) StoreOption {
	return func(s *Store) {
		s.missingKey = handler
	}
}

// WithLogger sets the logger used for reload events. Logging is discarded by default.
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore creates a store serving the given catalog set.
func NewStore(set *CatalogSet, opts ...StoreOption) (*Store, error) {
	if set == nil || set.fallback == nil {
		return nil, ErrNoDefaultCatalog
	}

	s := &Store{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(s)
	}
	s.current.Store(set)

	return s, nil
}

// Load atomically replaces the active catalog set. In-flight resolutions
// keep the snapshot they started with; new resolutions observe the fresh set
// immediately and never a partially updated one. A set without a default
// catalog is rejected before the swap and the store keeps serving the
// previous version.
func (s *Store) Load(set *CatalogSet) error {
	if set == nil || set.fallback == nil {
		s.logger.Error("catalog reload rejected", slog.Any("error", ErrNoDefaultCatalog))
		return ErrNoDefaultCatalog
	}

	s.current.Store(set)
	s.logger.Info("catalog set loaded", slog.Int("locales", len(set.locales)))

	return nil
}

// Snapshot returns the active catalog set. The returned set is immutable and
// remains valid after subsequent reloads.
func (s *Store) Snapshot() *CatalogSet {
	return s.current.Load()
}

// LookupExact returns the active catalog stored for exactly this locale.
func (s *Store) LookupExact(locale Locale) (*Catalog, bool) {
	return s.Snapshot().LookupExact(locale)
}

// LookupLanguage returns an active catalog matching language regardless of region.
func (s *Store) LookupLanguage(language string) (*Catalog, bool) {
	return s.Snapshot().LookupLanguage(language)
}

// DefaultCatalog returns the active default catalog.
func (s *Store) DefaultCatalog() *Catalog {
	return s.Snapshot().DefaultCatalog()
}

// Resolve walks the fallback chain for key against the active catalog set.
func (s *Store) Resolve(key string, prefs Preference) (Message, error) {
	msg, err := s.Snapshot().Resolve(key, prefs)
	if err != nil {
		s.notifyMissing(err, prefs)
	}
	return msg, err
}

// Translate resolves key against the active catalog set and formats the
// resulting template with args. A formatting failure is reported as a
// *TemplateError carrying the key and the locale that served the template.
func (s *Store) Translate(prefs Preference, key string, args ...any) (Message, error) {
	return s.translate(s.Snapshot(), prefs, key, args...)
}

// translate runs resolution and formatting against one pinned set so façades
// like Translator can reuse the exact same semantics on their own snapshot.
func (s *Store) translate(set *CatalogSet, prefs Preference, key string, args ...any) (Message, error) {
	msg, err := set.Resolve(key, prefs)
	if err != nil {
		s.notifyMissing(err, prefs)
		return Message{}, err
	}

	text, err := Format(msg.Text, args...)
	if err != nil {
		var te *TemplateError
		if errors.As(err, &te) {
			te.Key = key
			te.Locale = msg.Locale
		}
		return Message{}, err
	}

	msg.Text = text
	return msg, nil
}

func (s *Store) notifyMissing(err error, prefs Preference) {
	if s.missingKey == nil {
		return
	}
	var mk *MissingKeyError
	if errors.As(err, &mk) {
		s.missingKey(mk.Key, prefs)
	}
}
