package index

import (
	"math"
	"sort"

	"github.com/nkurtev/attestor/internal/model"
	"github.com/nkurtev/attestor/internal/segment"
)

// Entry is the atomic unit stored by the index: one sentence of one
// reference document together with its token data.
type Entry struct {
	DocID    string
	DocName  string
	DocURL   string
	Sentence model.Sentence
	Tokens   []string
	TokenSet map[string]struct{}
}

// Index is an immutable in-memory inverted index over a reference
// corpus. It is rebuilt from scratch for every assessment run; there
// is no incremental update and no state shared between runs.
type Index struct {
	entries   []Entry
	docFreq   map[string]int // token -> number of indexed sentences containing it
	totalDocs int            // reference-document count, for IDF normalization
	minChars  int
}

// Build segments and tokenizes every reference document into a fresh
// index. Sentences shorter than cfg.MinIndexSentenceChars are dropped
// as noise; this filter applies to the reference corpus only, never to
// the submission's own direct scan.
func Build(corpus []model.SourceDocument, cfg model.ScoringConfig) *Index {
	ix := &Index{
		docFreq:   make(map[string]int),
		totalDocs: len(corpus),
		minChars:  cfg.MinIndexSentenceChars,
	}

	for _, doc := range corpus {
		for _, sentence := range segment.Segment(doc.Text) {
			if len(sentence.Text) < ix.minChars {
				continue
			}
			tokens := Tokenize(sentence.Text)
			if len(tokens) == 0 {
				continue
			}
			set := TokenSet(tokens)
			for token := range set {
				ix.docFreq[token]++
			}
			ix.entries = append(ix.entries, Entry{
				DocID:    doc.ID,
				DocName:  doc.Name,
				DocURL:   doc.URL,
				Sentence: sentence,
				Tokens:   tokens,
				TokenSet: set,
			})
		}
	}

	return ix
}

// Len returns the number of indexed sentences
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Documents returns the number of reference documents indexed
func (ix *Index) Documents() int {
	return ix.totalDocs
}

// Search scores every indexed sentence against the query and returns
// the top N as evidence, most relevant first. The score is a
// length-normalized token overlap weighted by smoothed IDF:
//
//	score = (common / max(1, sentenceTokens)) * Σ ln(1 + totalDocs/max(1, df))
//
// The IDF sum can push the raw product past 1, so scores are clamped
// to [0,1] before emission. Ties keep insertion order (stable sort).
// Scores are rounded to four decimals for reproducibility. An empty
// index or empty query returns an empty result immediately.
func (ix *Index) Search(query string, topN int) []model.Evidence {
	if len(ix.entries) == 0 || topN <= 0 {
		return nil
	}
	queryTokens := Tokenize(query)
	if len(queryTokens) == 0 {
		return nil
	}

	type scored struct {
		entry *Entry
		score float64
	}
	var hits []scored

	for i := range ix.entries {
		entry := &ix.entries[i]
		common := 0
		idfSum := 0.0
		for _, token := range queryTokens {
			if _, ok := entry.TokenSet[token]; !ok {
				continue
			}
			common++
			df := ix.docFreq[token]
			if df < 1 {
				df = 1
			}
			idfSum += math.Log(1 + float64(ix.totalDocs)/float64(df))
		}
		if common == 0 {
			continue
		}

		denom := len(entry.Tokens)
		if denom < 1 {
			denom = 1
		}
		score := (float64(common) / float64(denom)) * idfSum
		if score > 1 {
			score = 1
		}
		hits = append(hits, scored{entry: entry, score: round4(score)})
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })
	if len(hits) > topN {
		hits = hits[:topN]
	}

	results := make([]model.Evidence, 0, len(hits))
	for _, h := range hits {
		results = append(results, model.Evidence{
			SourceName: h.entry.DocName,
			SourceURL:  h.entry.DocURL,
			Excerpt:    h.entry.Sentence.Text,
			Location:   h.entry.Sentence.Location(),
			Relevance:  h.score,
		})
	}
	return results
}

func round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}
