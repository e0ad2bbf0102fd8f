// Package slug derives the URL identifiers used in ?item= links. The rules
// must stay in step with createSlug in the site's client-side SEO code.
package slug

import (
	"regexp"
	"strings"
)

// jsSpace is the set JavaScript's \s matches: ECMAScript white space and
// line terminators. RE2's \s covers only the ASCII part.
const jsSpace = `\t\n\v\f\r \x{a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}`

var (
	disallowed = regexp.MustCompile(`[^a-z0-9` + jsSpace + `-]`)
	whitespace = regexp.MustCompile(`[` + jsSpace + `]+`)
	hyphens    = regexp.MustCompile(`-+`)
)

// Slugify lowercases name, drops everything but ASCII letters, digits, spaces
// and hyphens, turns whitespace runs into single hyphens and trims hyphens
// from both ends. Degenerate names yield "".
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = disallowed.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = hyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
