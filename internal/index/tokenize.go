package index

import (
	"strings"
	"unicode"
)

// minTokenLength is the shortest token the index keeps. Tokens of one
// or two characters carry almost no lexical signal and inflate the
// document-frequency map.
const minTokenLength = 3

// Words lowercases s, strips non-alphanumerics and splits on the
// resulting boundaries. No length filter is applied; callers decide
// their own minimum.
func Words(s string) []string {
	if s == "" {
		return nil
	}
	out := make([]string, 0, 24)
	var b strings.Builder
	for _, r := range s {
		r = unicode.ToLower(r)
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			continue
		}
		if b.Len() > 0 {
			out = append(out, b.String())
			b.Reset()
		}
	}
	if b.Len() > 0 {
		out = append(out, b.String())
	}
	return out
}

// Tokenize returns the normalized token sequence for indexing and
// querying: lowercased, non-alphanumerics stripped, tokens shorter
// than minTokenLength dropped.
func Tokenize(s string) []string {
	words := Words(s)
	tokens := words[:0:0]
	for _, w := range words {
		if len(w) >= minTokenLength {
			tokens = append(tokens, w)
		}
	}
	return tokens
}

// TokenSet returns the unique set of tokens for O(1) membership tests
func TokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}
