package polyglot

import (
	"cmp"
	"math"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength prevents DoS attacks through oversized Accept-Language headers.
const maxAcceptLanguageLength = 4096

// Candidate is a single client locale preference with its quality weight.
type Candidate struct {
	Locale  Locale
	Quality float64
}

// Preference is an ordered list of locale candidates, sorted descending by
// quality with ties keeping their original header order. An empty Preference
// is valid and means "serve from the default catalog only".
type Preference []Candidate

// ParseAcceptLanguage parses an Accept-Language header into a Preference.
// Tags that do not match the "language" or "language-region" shape (including
// the "*" wildcard) are dropped silently, a missing or unparseable quality
// defaults to 1.0, and a numeric quality outside [0,1] is clamped. Client
// headers are untrusted input, so parsing never fails: an empty or entirely
// malformed header yields an empty Preference.
//
// Example header: "en-US,en;q=0.9,pl;q=0.8"
func ParseAcceptLanguage(header string) Preference {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var prefs Preference

	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		quality := 1.0
		tagPart, qPart, hasQuality := strings.Cut(part, ";")

		if hasQuality {
			qPart = strings.TrimSpace(qPart)

			if strings.HasPrefix(qPart, "q=") {
				if q, err := strconv.ParseFloat(qPart[2:], 64); err == nil && !math.IsNaN(q) {
					quality = min(max(q, 0), 1)
				}
			}
		}

		if locale, ok := ParseLocale(tagPart); ok {
			prefs = append(prefs, Candidate{Locale: locale, Quality: quality})
		}
	}

	slices.SortStableFunc(prefs, func(a, b Candidate) int {
		return cmp.Compare(b.Quality, a.Quality)
	})

	return prefs
}
