package tokenize

import "strings"

// stem strips common suffixes from tokens of length four or more. Shorter
// tokens are left alone to avoid truncating short real words. The stemmer is
// deliberately crude: false merges are acceptable because consumers only need
// coarse keyword overlap, and the scoring weights were tuned against exactly
// this behavior.
func stem(tok string) string {
	if len(tok) < 4 {
		return tok
	}
	switch {
	case strings.HasSuffix(tok, "ing") && len(tok) > 5:
		return tok[:len(tok)-3]
	case strings.HasSuffix(tok, "ies") && len(tok) > 5:
		return tok[:len(tok)-3] + "y"
	case strings.HasSuffix(tok, "es") && len(tok) > 4:
		return tok[:len(tok)-2]
	case strings.HasSuffix(tok, "s") && len(tok) > 4:
		return tok[:len(tok)-1]
	}
	return tok
}
