package canonical

import "strings"

// TrimBoilerplate strips repeated question-prompt boilerplate from the
// start of an answer block. Extraction from form documents often
// carries the prompt text ahead of the provider's actual answer, and
// the prompt may repeat; the answer is whatever follows the LAST
// occurrence of any known phrase. Matching is case-insensitive. If no
// phrase occurs, the block is returned unchanged.
func TrimBoilerplate(block string, phrases []string) string {
	if block == "" || len(phrases) == 0 {
		return block
	}

	lower := strings.ToLower(block)
	cut := -1
	for _, phrase := range phrases {
		phrase = strings.ToLower(strings.TrimSpace(phrase))
		if phrase == "" {
			continue
		}
		if idx := strings.LastIndex(lower, phrase); idx >= 0 {
			if end := idx + len(phrase); end > cut {
				cut = end
			}
		}
	}
	if cut < 0 {
		return block
	}
	return block[cut:]
}
