package polyglot

import "slices"

// Translator binds a store and a client preference for the duration of one
// request, so handlers translate by key alone. It pins the catalog set that
// was active at construction: every lookup through one Translator sees the
// same loaded version even if a reload happens mid-request.
type Translator struct {
	store *Store
	set   *CatalogSet
	prefs Preference
}

// NewTranslator creates a Translator for the given preference.
func NewTranslator(store *Store, prefs Preference) *Translator {
	if store == nil {
		panic("polyglot: store is not provided")
	}
	return &Translator{
		store: store,
		set:   store.Snapshot(),
		prefs: prefs,
	}
}

// Translate resolves key with the translator's preference and formats the
// template with args.
func (t *Translator) Translate(key string, args ...any) (Message, error) {
	return t.store.translate(t.set, t.prefs, key, args...)
}

// Resolve resolves key with the translator's preference without formatting.
func (t *Translator) Resolve(key string) (Message, error) {
	msg, err := t.set.Resolve(key, t.prefs)
	if err != nil {
		t.store.notifyMissing(err, t.prefs)
	}
	return msg, err
}

// Preference returns a copy of the translator's preference list.
func (t *Translator) Preference() Preference {
	return slices.Clone(t.prefs)
}
