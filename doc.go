// Package polyglot resolves symbolic message keys into formatted,
// human-readable strings using client locale negotiation with deterministic
// fallback.
//
// A Store publishes an immutable CatalogSet (per-locale key-to-template
// catalogs plus a default catalog) behind an atomic reference, so many
// request goroutines resolve concurrently while administrative reloads swap
// in fresh sets without blocking anyone. Resolution walks the client's
// preference list in quality order, trying an exact locale match and then a
// language-only match per candidate, before falling back to the default
// catalog as the floor.
//
// # Basic Usage
//
//	set, err := polyglot.NewCatalogSet(
//		polyglot.NewDefaultCatalog(map[string]string{
//			"greeting": "Hello, {0}!",
//		}),
//		polyglot.NewCatalog(polyglot.Locale{Language: "fr"}, map[string]string{
//			"greeting": "Bonjour, {0}!",
//		}),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	store, err := polyglot.NewStore(set)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	prefs := polyglot.ParseAcceptLanguage("fr-CA,fr;q=0.9,en;q=0.8")
//	msg, err := store.Translate(prefs, "greeting", "Marie")
//	// msg.Text: "Bonjour, Marie!", msg.Locale: fr
//
// # Locale Negotiation
//
// ParseAcceptLanguage turns an Accept-Language header into an ordered
// Preference. Malformed tags are dropped and out-of-range quality values are
// clamped rather than failing the request, because client headers are
// untrusted input. An empty Preference is valid and resolves from the
// default catalog only.
//
// # Templates
//
// Templates substitute positional arguments with {0}, {1}, ... placeholders;
// literal braces are escaped by doubling ("{{" and "}}"). Formatting is
// strict: a placeholder without a matching argument fails with a
// *TemplateError instead of leaking braces into user-facing text. A key
// absent from the whole fallback walk fails with *MissingKeyError; the raw
// key is never substituted silently, since that would mask catalog-authoring
// defects.
//
// # File-Based Catalogs
//
// LoadFS builds a CatalogSet from an fs.FS containing JSON, YAML, or
// properties files named by locale:
//
//	messages.properties       (default catalog)
//	messages_en.properties
//	messages_pt-BR.yaml
//
// # Hot Reload
//
//	fresh, err := polyglot.LoadFS(os.DirFS("./messages"))
//	if err == nil {
//		err = store.Load(fresh)
//	}
//
// In-flight resolutions keep the snapshot they started with; a resolution
// never mixes catalogs from two loaded versions. A set without a default
// catalog is rejected before the swap and the previous version keeps serving.
//
// # HTTP Middleware
//
// Middleware negotiates the request's Accept-Language header and stores a
// request-scoped Translator in the context:
//
//	r := chi.NewRouter()
//	r.Use(polyglot.Middleware(store))
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//		tr := polyglot.TranslatorFromContext(r.Context())
//		msg, _ := tr.Translate("greeting", "visitor")
//		w.Header().Set("Content-Language", msg.Locale.String())
//		fmt.Fprint(w, msg.Text)
//	})
//
// # Thread Safety
//
// Catalog, CatalogSet, and Message are immutable after construction. Store
// reads are lock-free; Load publishes a new set with a single atomic pointer
// swap. No locks are held across a resolution and no operation blocks
// indefinitely.
package polyglot
