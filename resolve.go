package polyglot

// Message is the outcome of a successful resolution: the template (or, after
// formatting, the final text) and the locale of the catalog that served it.
// A zero Locale means the default catalog supplied the text, which callers
// can use for diagnostics such as a Content-Language response header.
type Message struct {
	Text   string
	Locale Locale
}

// Resolve walks the fallback chain for key across this catalog set.
//
// For each candidate, in preference order, an exact-locale catalog is
// consulted first and a language-only match second, so a lower-quality exact
// match is never skipped in favor of an earlier candidate's language-only
// match. Only after every candidate is exhausted does the default catalog
// act as the floor. The whole walk happens inside this one immutable set, so
// a resolution never mixes catalogs from two loaded versions.
//
// Returns a *MissingKeyError when no catalog in the walk defines key.
func (s *CatalogSet) Resolve(key string, prefs Preference) (Message, error) {
	for _, cand := range prefs {
		if c, ok := s.LookupExact(cand.Locale); ok {
			if tmpl, ok := c.Lookup(key); ok {
				return Message{Text: tmpl, Locale: c.locale}, nil
			}
		}
		if c, ok := s.LookupLanguage(cand.Locale.Language); ok {
			if tmpl, ok := c.Lookup(key); ok {
				return Message{Text: tmpl, Locale: c.locale}, nil
			}
		}
	}

	if tmpl, ok := s.fallback.Lookup(key); ok {
		return Message{Text: tmpl}, nil
	}

	return Message{}, &MissingKeyError{Key: key}
}
