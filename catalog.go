package polyglot

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Catalog is an immutable key-to-template mapping bound to exactly one
// locale. The messages map is cloned at construction, so the caller may
// reuse or mutate its copy freely afterwards.
type Catalog struct {
	locale   Locale
	messages map[string]string
}

// NewCatalog creates a catalog for the given locale.
func NewCatalog(locale Locale, messages map[string]string) *Catalog {
	return &Catalog{locale: locale, messages: maps.Clone(messages)}
}

// NewDefaultCatalog creates the locale-independent catalog used as the final
// fallback floor. An empty or nil messages map is allowed.
func NewDefaultCatalog(messages map[string]string) *Catalog {
	return &Catalog{messages: maps.Clone(messages)}
}

// Lookup returns the template for key and whether the catalog defines it.
func (c *Catalog) Lookup(key string) (string, bool) {
	tmpl, ok := c.messages[key]
	return tmpl, ok
}

// Locale returns the locale the catalog is bound to; zero for the default catalog.
func (c *Catalog) Locale() Locale {
	return c.locale
}

// Len returns the number of keys the catalog defines.
func (c *Catalog) Len() int {
	return len(c.messages)
}

// CatalogSet is an immutable mapping from locale to catalog plus a
// distinguished default catalog. It is never mutated after construction;
// a reload builds a fresh set and publishes it through Store.Load.
type CatalogSet struct {
	fallback   *Catalog
	byLocale   map[Locale]*Catalog
	byLanguage map[string]*Catalog
	locales    []Locale
}

// NewCatalogSet builds a catalog set from a default catalog and zero or more
// locale catalogs. The default catalog is mandatory and must be
// locale-independent; every other catalog must carry a distinct locale.
// The language-only index prefers a region-less catalog for each language
// and otherwise keeps the first one passed in. Nil entries are ignored.
func NewCatalogSet(defaultCatalog *Catalog, catalogs ...*Catalog) (*CatalogSet, error) {
	if defaultCatalog == nil {
		return nil, ErrNoDefaultCatalog
	}
	if !defaultCatalog.locale.IsZero() {
		return nil, fmt.Errorf("%w: default catalog is bound to %q", ErrNoDefaultCatalog, defaultCatalog.locale)
	}

	set := &CatalogSet{
		fallback:   defaultCatalog,
		byLocale:   make(map[Locale]*Catalog, len(catalogs)),
		byLanguage: make(map[string]*Catalog, len(catalogs)),
	}

	for _, c := range catalogs {
		if c == nil {
			continue
		}
		if c.locale.IsZero() {
			return nil, ErrMissingLocale
		}
		if _, exists := set.byLocale[c.locale]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLocale, c.locale)
		}

		set.byLocale[c.locale] = c
		set.locales = append(set.locales, c.locale)

		lang := c.locale.Language
		if cur, ok := set.byLanguage[lang]; !ok || (cur.locale.Region != "" && c.locale.Region == "") {
			set.byLanguage[lang] = c
		}
	}

	slices.SortFunc(set.locales, func(a, b Locale) int {
		return strings.Compare(a.String(), b.String())
	})

	return set, nil
}

// LookupExact returns the catalog stored for exactly this locale.
func (s *CatalogSet) LookupExact(locale Locale) (*Catalog, bool) {
	c, ok := s.byLocale[locale]
	return c, ok
}

// LookupLanguage returns a catalog whose locale matches language regardless
// of region. When several region variants exist, the region-less one is
// preferred, otherwise the first one registered.
func (s *CatalogSet) LookupLanguage(language string) (*Catalog, bool) {
	c, ok := s.byLanguage[strings.ToLower(language)]
	return c, ok
}

// DefaultCatalog returns the locale-independent fallback catalog. Always present.
func (s *CatalogSet) DefaultCatalog() *Catalog {
	return s.fallback
}

// Locales returns the locales in the set, sorted by canonical form.
// The default catalog is not listed.
func (s *CatalogSet) Locales() []Locale {
	return slices.Clone(s.locales)
}
