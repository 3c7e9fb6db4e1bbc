package segment

import (
	"strings"
	"unicode"

	"github.com/nkurtev/attestor/internal/model"
)

// Segment splits raw text into ordered sentences with stable 1-based
// ordinals. The boundary heuristic is deliberately simple: a sentence
// ends at terminal punctuation (. ? !) followed by whitespace and an
// uppercase letter or digit. CRLF is normalized first. Empty or
// whitespace-only input yields an empty slice, never an error.
func Segment(text string) []model.Sentence {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if strings.TrimSpace(text) == "" {
		return nil
	}

	runes := []rune(text)
	var sentences []model.Sentence
	start := 0

	appendSentence := func(raw string) {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			return
		}
		sentences = append(sentences, model.Sentence{
			Ordinal: len(sentences) + 1,
			Text:    trimmed,
		})
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '?' && r != '!' {
			continue
		}

		// Consume the whitespace run after the terminator
		j := i + 1
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		if j == i+1 || j >= len(runes) {
			continue // No whitespace, or punctuation at end of text
		}
		next := runes[j]
		if !unicode.IsUpper(next) && !unicode.IsDigit(next) {
			continue
		}

		appendSentence(string(runes[start : i+1]))
		start = j
		i = j - 1
	}

	if start < len(runes) {
		appendSentence(string(runes[start:]))
	}

	return sentences
}
