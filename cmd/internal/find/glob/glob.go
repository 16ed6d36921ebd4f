// Package glob translates shell-style wildcard patterns into anchored
// regular expressions. It implements just enough of fnmatch for the name
// and path primaries; a general-purpose glob engine is deliberately out of
// scope.
package glob

import (
	"regexp"
	"strings"
)

// Glob is a compiled pattern.
type Glob struct {
	pattern string
	re      *regexp.Regexp
}

// New compiles pattern. Translation rules, applied left to right:
//   - `*` matches any sequence of characters, including the empty one
//   - `?` matches exactly one character
//   - `[...]` is copied verbatim as a character class, up to and including
//     the first `]` found by forward scan. An embedded `]` cannot be
//     escaped inside a class. This is a documented limitation that is kept
//     for compatibility with the other just-bash utilities.
//   - every other regexp metacharacter matches itself literally
//
// The translated pattern is anchored at both ends, so a Glob always matches
// whole strings. Case sensitivity is a matcher-level flag, not a pattern
// rewrite.
func New(pattern string, ignoreCase bool) (*Glob, error) {
	translated := Translate(pattern)
	if ignoreCase {
		translated = "(?i)" + translated
	}
	re, err := regexp.Compile(translated)
	if err != nil {
		return nil, err
	}
	return &Glob{pattern: pattern, re: re}, nil
}

// Match reports whether name matches the compiled pattern.
func (g *Glob) Match(name string) bool {
	return g.re.MatchString(name)
}

// Pattern returns the original, untranslated pattern.
func (g *Glob) Pattern() string {
	return g.pattern
}

// Match reports whether name matches pattern. An unparseable pattern never
// matches.
func Match(name, pattern string, ignoreCase bool) bool {
	g, err := New(pattern, ignoreCase)
	if err != nil {
		return false
	}
	return g.Match(name)
}

// Translate converts a shell pattern into an anchored regexp source string.
func Translate(pattern string) string {
	var b strings.Builder
	b.WriteString("^")
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch c {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		case '[':
			end := strings.IndexByte(pattern[i+1:], ']')
			if end < 0 {
				// No closing bracket, so `[` matches itself.
				b.WriteString(regexp.QuoteMeta(string(c)))
				break
			}
			b.WriteString(pattern[i : i+end+2])
			i += end + 1
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	b.WriteString("$")
	return b.String()
}
