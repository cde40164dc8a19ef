package settings

import (
	"strings"
	"unicode"
)

// Snake canonicalizes an identifier of arbitrary casing to lower snake case.
//
// The identifier is split into tokens at runs of space, underscore, and
// hyphen, at a lower-or-digit to upper transition, and before the final
// upper of an uppercase run that is followed by a lowercase letter (so an
// acronym keeps its trailing word separate: "myHTTPServer" splits into
// "my", "HTTP", "Server"). Tokens are lowercased and joined with a single
// underscore. The result contains no uppercase, so Snake is idempotent.
func Snake(identifier string) string {
	runes := []rune(identifier)

	var tokens []string
	var current []rune

	flush := func() {
		if len(current) > 0 {
			tokens = append(tokens, strings.ToLower(string(current)))
			current = current[:0]
		}
	}

	for i, r := range runes {
		switch {
		case r == ' ' || r == '_' || r == '-':
			flush()
		case unicode.IsUpper(r):
			var prev, next rune
			if i > 0 {
				prev = runes[i-1]
			}
			if i+1 < len(runes) {
				next = runes[i+1]
			}
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				flush()
			} else if unicode.IsUpper(prev) && unicode.IsLower(next) {
				flush()
			}
			current = append(current, r)
		default:
			current = append(current, r)
		}
	}
	flush()

	return strings.Join(tokens, "_")
}
