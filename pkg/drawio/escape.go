package drawio

import "strings"

// escaper rewrites the five XML-reserved characters. strings.Replacer
// substitutes in a single pass, so an ampersand introduced by one
// replacement is never escaped again.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Escape makes text safe for use as XML attribute or element content.
// It is pure and total; escaping already-escaped text is a caller error.
func Escape(text string) string {
	return escaper.Replace(text)
}
