package text

import "strings"

// Normalize lower-cases the input, replaces every character outside
// [a-z0-9 ] with a space, collapses whitespace runs, and trims the ends.
// Every downstream matcher runs on this form so punctuation and casing
// never affect classification.
func Normalize(s string) string {
	lowered := strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
