// Package tokenize normalizes free text into deduplicated keyword sets for
// coverage scoring.
package tokenize

import (
	"sort"
	"strings"
)

// splitChars is the fixed punctuation and whitespace class resume and job
// text is split on.
const splitChars = " \r\n\t,.;:/\\|()-_[]{}'\"+*&^%$#@!~`?"

// Set is an unordered, deduplicated collection of normalized tokens.
type Set map[string]struct{}

// NewSet builds a Set from already-normalized tokens.
func NewSet(tokens ...string) Set {
	s := make(Set, len(tokens))
	for _, tok := range tokens {
		s[tok] = struct{}{}
	}
	return s
}

// Contains reports whether tok is a member of the set.
func (s Set) Contains(tok string) bool {
	_, ok := s[tok]
	return ok
}

// Add inserts tok into the set.
func (s Set) Add(tok string) {
	s[tok] = struct{}{}
}

// Union returns a new set with the members of both sets.
func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	for tok := range s {
		out[tok] = struct{}{}
	}
	for tok := range other {
		out[tok] = struct{}{}
	}
	return out
}

// Len returns the number of members.
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the members in lexicographic order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for tok := range s {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}

// Tokenize splits text into a case-folded, punctuation-stripped token set
// with stop words removed, aliases canonicalized and suffixes stemmed.
// Empty input yields an empty set, never nil.
func Tokenize(text string) Set {
	set := make(Set)
	if strings.TrimSpace(text) == "" {
		return set
	}

	raw := strings.ToLower(text)
	// "c#" and ".net" would be destroyed by punctuation splitting; collapse
	// them to plain alphanumeric tokens before the split.
	raw = strings.ReplaceAll(raw, "c#", "csharp")
	raw = strings.ReplaceAll(raw, ".net", "dotnet")

	for _, piece := range strings.FieldsFunc(raw, isSplitChar) {
		tok := stripDisallowed(piece)
		if tok == "" {
			continue
		}
		tok = normalize(tok)
		if _, stop := stopWords[tok]; stop {
			continue
		}
		set[tok] = struct{}{}
	}
	return set
}

// WordCount counts the word-like pieces of text using the same split class as
// Tokenize, before any filtering or deduplication.
func WordCount(text string) int {
	return len(strings.FieldsFunc(text, isSplitChar))
}

// normalize canonicalizes a token through the synonym table, then stems it.
func normalize(tok string) string {
	if canon, ok := synonyms[tok]; ok {
		tok = canon
	}
	return stem(tok)
}

func isSplitChar(r rune) bool {
	return strings.ContainsRune(splitChars, r)
}

// stripDisallowed drops every character outside [a-z0-9.+#] from a piece.
func stripDisallowed(piece string) string {
	var b strings.Builder
	for _, r := range piece {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '+', r == '#':
			b.WriteRune(r)
		}
	}
	return b.String()
}
