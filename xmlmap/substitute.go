package xmlmap

import (
	"regexp"
	"strings"
)

// substitutions is the character rewrite table applied by the substituted
// mapping. Applied in a single pass, so rewritten output is never re-scanned.
var substitutions = map[rune]rune{
	'_': ':',
	'$': '@',
}

// Substitute rewrites characters per the substitution table.
func Substitute(s string) string {
	return strings.Map(func(r rune) rune {
		if out, ok := substitutions[r]; ok {
			return out
		}
		return r
	}, s)
}

var invalidNameChars = regexp.MustCompile(`[^A-Za-z0-9:@._-]`)

// SanitizeName coerces a key into a usable XML element name: disallowed
// characters become underscores, digit-leading names get an item_ prefix,
// and an empty key becomes "item".
func SanitizeName(key string) string {
	name := invalidNameChars.ReplaceAllString(key, "_")
	if name == "" {
		return "item"
	}
	if name[0] >= '0' && name[0] <= '9' {
		name = "item_" + name
	}
	return name
}
