package markup

import "strings"

// attrEscaper replaces the characters that can break out of an HTML
// attribute value or element context. The ampersand must be listed first
// conceptually, but strings.Replacer applies all pairs in a single pass, so
// already-escaped entities are never double-escaped.
var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#39;",
	"<", "&lt;",
	">", "&gt;",
)

// EscapeAttr escapes a string for safe embedding in an HTML attribute value.
// It handles &, ", ', <, and > to prevent markup injection.
func EscapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
