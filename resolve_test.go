package polyglot_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/polyglot"
)

func buildSet(t *testing.T, defaults map[string]string, catalogs map[string]map[string]string) *polyglot.CatalogSet {
	t.Helper()

	all := make([]*polyglot.Catalog, 0, len(catalogs))
	// Deterministic registration order matters for language-only tie-breaks,
	// so tests that depend on it build their set inline instead.
	for tag, messages := range catalogs {
		all = append(all, polyglot.NewCatalog(loc(t, tag), messages))
	}

	set, err := polyglot.NewCatalogSet(polyglot.NewDefaultCatalog(defaults), all...)
	require.NoError(t, err)
	return set
}

func TestCatalogSetResolve(t *testing.T) {
	t.Parallel()

	t.Run("empty preference resolves from default catalog", func(t *testing.T) {
		t.Parallel()

		set := buildSet(t,
			map[string]string{"greeting": "Hello"},
			map[string]map[string]string{"fr": {"greeting": "Bonjour"}},
		)

		msg, err := set.Resolve("greeting", nil)
		require.NoError(t, err)
		require.Equal(t, "Hello", msg.Text)
		require.True(t, msg.Locale.IsZero())
	})

	t.Run("default catalog is the floor for keys no locale defines", func(t *testing.T) {
		t.Parallel()

		set := buildSet(t,
			map[string]string{"only.default": "floor"},
			map[string]map[string]string{
				"fr": {"greeting": "Bonjour"},
				"es": {"greeting": "Hola"},
			},
		)

		msg, err := set.Resolve("only.default", polyglot.ParseAcceptLanguage("fr,es;q=0.8"))
		require.NoError(t, err)
		require.Equal(t, "floor", msg.Text)
		require.True(t, msg.Locale.IsZero())
	})

	t.Run("locale absent from the set is not an error", func(t *testing.T) {
		t.Parallel()

		set := buildSet(t,
			map[string]string{"greeting": "Hello"},
			map[string]map[string]string{"fr": {"greeting": "Bonjour"}},
		)

		msg, err := set.Resolve("greeting", polyglot.ParseAcceptLanguage("ja-JP"))
		require.NoError(t, err)
		require.Equal(t, "Hello", msg.Text)
		require.True(t, msg.Locale.IsZero())
	})

	t.Run("exact match beats language-only match for the same candidate", func(t *testing.T) {
		t.Parallel()

		set := buildSet(t,
			map[string]string{"greeting": "Hello"},
			map[string]map[string]string{
				"en":    {"greeting": "Hello there"},
				"en-US": {"greeting": "Howdy"},
			},
		)

		msg, err := set.Resolve("greeting", polyglot.ParseAcceptLanguage("en-US"))
		require.NoError(t, err)
		require.Equal(t, "Howdy", msg.Text)
		require.Equal(t, loc(t, "en-US"), msg.Locale)
	})

	t.Run("language-only match reports the locale that actually served", func(t *testing.T) {
		t.Parallel()

		set := buildSet(t,
			map[string]string{},
			map[string]map[string]string{"en": {"greeting": "Hello there"}},
		)

		msg, err := set.Resolve("greeting", polyglot.ParseAcceptLanguage("en-GB"))
		require.NoError(t, err)
		require.Equal(t, "Hello there", msg.Text)
		require.Equal(t, loc(t, "en"), msg.Locale)
	})

	t.Run("candidate order respected across languages", func(t *testing.T) {
		t.Parallel()

		set := buildSet(t,
			map[string]string{"greeting": "Hello"},
			map[string]map[string]string{
				"fr": {"greeting": "Bonjour"},
				"es": {"greeting": "Hola"},
			},
		)

		msg, err := set.Resolve("greeting", polyglot.ParseAcceptLanguage("es;q=0.9,fr;q=0.5"))
		require.NoError(t, err)
		require.Equal(t, "Hola", msg.Text)
		require.Equal(t, loc(t, "es"), msg.Locale)
	})

	t.Run("candidate missing the key falls through to the next candidate", func(t *testing.T) {
		t.Parallel()

		set := buildSet(t,
			map[string]string{},
			map[string]map[string]string{
				"es": {"other.key": "algo"},
				"fr": {"greeting": "Bonjour"},
			},
		)

		msg, err := set.Resolve("greeting", polyglot.ParseAcceptLanguage("es,fr;q=0.5"))
		require.NoError(t, err)
		require.Equal(t, "Bonjour", msg.Text)
		require.Equal(t, loc(t, "fr"), msg.Locale)
	})

	t.Run("missing key fails after the full walk", func(t *testing.T) {
		t.Parallel()

		set := buildSet(t,
			map[string]string{"greeting": "Hello"},
			map[string]map[string]string{"fr": {"greeting": "Bonjour"}},
		)

		_, err := set.Resolve("no.such.key", polyglot.ParseAcceptLanguage("fr"))
		require.Error(t, err)
		require.ErrorIs(t, err, polyglot.ErrMissingKey)

		var mk *polyglot.MissingKeyError
		require.ErrorAs(t, err, &mk)
		require.Equal(t, "no.such.key", mk.Key)
	})

	t.Run("raw key is never substituted for a missing key", func(t *testing.T) {
		t.Parallel()

		set := buildSet(t, map[string]string{}, nil)

		msg, err := set.Resolve("no.such.key", nil)
		require.Error(t, err)
		require.Empty(t, msg.Text)
	})

	t.Run("empty preference equals entirely malformed header", func(t *testing.T) {
		t.Parallel()

		set := buildSet(t,
			map[string]string{"greeting": "Hello"},
			map[string]map[string]string{"fr": {"greeting": "Bonjour"}},
		)

		fromEmpty, err := set.Resolve("greeting", polyglot.Preference{})
		require.NoError(t, err)

		fromGarbage, err := set.Resolve("greeting", polyglot.ParseAcceptLanguage("not a tag,???"))
		require.NoError(t, err)

		require.Equal(t, fromEmpty, fromGarbage)
	})
}
