package polyglot

import "strings"

// Locale identifies a language with an optional region, e.g. "en" or "pt-BR".
// It is comparable and usable as a map key; two locales are equal iff both
// components match. The zero value is the locale-independent marker reported
// by Message when the default catalog served a key.
type Locale struct {
	Language string
	Region   string
}

// ParseLocale parses a single locale tag of the shape "language" or
// "language-region" ("language_region" is accepted as well). The language is
// two or three ASCII letters, the region two ASCII letters or three digits.
// Components are normalized to the canonical lowercase-language,
// uppercase-region form. Returns false for anything else, including "*".
func ParseLocale(tag string) (Locale, bool) {
	tag = strings.TrimSpace(tag)

	lang := tag
	region := ""
	if i := strings.IndexAny(tag, "-_"); i >= 0 {
		lang, region = tag[:i], tag[i+1:]
		if region == "" || strings.ContainsAny(region, "-_") {
			return Locale{}, false
		}
	}

	if !validLanguage(lang) {
		return Locale{}, false
	}
	if region != "" && !validRegion(region) {
		return Locale{}, false
	}

	return Locale{
		Language: strings.ToLower(lang),
		Region:   strings.ToUpper(region),
	}, true
}

// String returns the canonical textual form: "language" or "language-region".
// The zero locale renders as an empty string.
func (l Locale) String() string {
	if l.Region == "" {
		return l.Language
	}
	return l.Language + "-" + l.Region
}

// IsZero reports whether the locale is the locale-independent default marker.
func (l Locale) IsZero() bool {
	return l == Locale{}
}

func validLanguage(s string) bool {
	if len(s) < 2 || len(s) > 3 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) {
			return false
		}
	}
	return true
}

// validRegion accepts ISO 3166-1 alpha-2 regions and UN M.49 numeric areas.
func validRegion(s string) bool {
	switch len(s) {
	case 2:
		return isLetter(s[0]) && isLetter(s[1])
	case 3:
		return isDigit(s[0]) && isDigit(s[1]) && isDigit(s[2])
	default:
		return false
	}
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
