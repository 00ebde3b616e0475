package polyglot

import (
	"errors"
	"fmt"
)

var (
	ErrMissingKey        = errors.New("polyglot: message key not found")
	ErrMalformedTemplate = errors.New("polyglot: malformed template")
	ErrNoDefaultCatalog  = errors.New("polyglot: catalog set has no default catalog")
	ErrDuplicateLocale   = errors.New("polyglot: duplicate locale in catalog set")
	ErrMissingLocale     = errors.New("polyglot: catalog has no locale")
	ErrInvalidFile       = errors.New("polyglot: invalid catalog file")
)

// MissingKeyError reports a key that no catalog in the fallback walk defines,
// including the default catalog. It matches ErrMissingKey via errors.Is.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("polyglot: no catalog defines key %q", e.Key)
}

func (e *MissingKeyError) Is(target error) bool {
	return target == ErrMissingKey
}

// TemplateError reports a positional placeholder that references an argument
// beyond the supplied argument count. Key and Locale identify the offending
// template when the error surfaces from Translate; both are empty when Format
// is called directly. It matches ErrMalformedTemplate via errors.Is.
type TemplateError struct {
	Key      string
	Locale   Locale
	Index    int
	ArgCount int
}

func (e *TemplateError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("polyglot: template for key %q (%s) references {%d} but only %d argument(s) supplied",
			e.Key, localeLabel(e.Locale), e.Index, e.ArgCount)
	}
	return fmt.Sprintf("polyglot: template references {%d} but only %d argument(s) supplied", e.Index, e.ArgCount)
}

func (e *TemplateError) Is(target error) bool {
	return target == ErrMalformedTemplate
}

func localeLabel(l Locale) string {
	if l.IsZero() {
		return "default"
	}
	return l.String()
}
