package polyglot

import (
	"fmt"
	"strconv"
	"strings"
)

// Format substitutes positional placeholders of the form {N} in template with
// the canonical text representation of args[N]. A literal brace is escaped by
// doubling: "{{" yields "{" and "}}" yields "}". The template is scanned left
// to right without overlap, and an escape is consumed before placeholder
// matching is attempted at that position. Braces that form neither an escape
// nor a {N} placeholder pass through as literal text.
//
// Formatting is strict: a placeholder referencing an index with no
// corresponding argument fails with a *TemplateError rather than being left
// in place, so authoring defects surface instead of leaking braces to users.
func Format(template string, args ...any) (string, error) {
	if !strings.ContainsAny(template, "{}") {
		return template, nil
	}

	var b strings.Builder
	b.Grow(len(template))

	for i := 0; i < len(template); {
		switch {
		case template[i] == '{' && i+1 < len(template) && template[i+1] == '{':
			b.WriteByte('{')
			i += 2

		case template[i] == '}' && i+1 < len(template) && template[i+1] == '}':
			b.WriteByte('}')
			i += 2

		case template[i] == '{':
			j := i + 1
			for j < len(template) && isDigit(template[j]) {
				j++
			}
			if j == i+1 || j == len(template) || template[j] != '}' {
				b.WriteByte('{')
				i++
				continue
			}

			n, err := strconv.Atoi(template[i+1 : j])
			if err != nil {
				n = -1
			}
			if n < 0 || n >= len(args) {
				return "", &TemplateError{Index: n, ArgCount: len(args)}
			}

			b.WriteString(fmt.Sprint(args[n]))
			i = j + 1

		default:
			b.WriteByte(template[i])
			i++
		}
	}

	return b.String(), nil
}
