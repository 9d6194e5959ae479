package language

import (
	"math"
	"sort"

	"github.com/ieee0824/ngramlm/internal/mathutil"
)

// NGramModel is a backoff n-gram language model with natural-log values.
type NGramModel struct {
	Order    int // highest order with at least one entry
	Unigrams map[string]Entry
	Bigrams  map[[2]string]Entry
	Trigrams map[[3]string]Entry
}

// Entry is one n-gram row of the model.
type Entry struct {
	LogProb    float64
	LogBackoff float64
	HasBackoff bool // false: the n-gram is never used as a context
}

// NewNGramModel creates an empty n-gram model.
func NewNGramModel(order int) *NGramModel {
	return &NGramModel{
		Order:    order,
		Unigrams: make(map[string]Entry),
		Bigrams:  make(map[[2]string]Entry),
		Trigrams: make(map[[3]string]Entry),
	}
}

func (e Entry) backoff() float64 {
	if !e.HasBackoff {
		return 0
	}
	return e.LogBackoff
}

// LogProb returns the log probability of a word given its history.
// Uses backoff when the exact n-gram is not found.
func (m *NGramModel) LogProb(history []string, word string) float64 {
	if m.Order >= 3 && len(history) >= 2 {
		h1, h2 := history[len(history)-2], history[len(history)-1]
		if e, ok := m.Trigrams[[3]string{h1, h2, word}]; ok {
			return e.LogProb
		}
		if e, ok := m.Bigrams[[2]string{h1, h2}]; ok {
			return floor(e.backoff() + m.logProbBigram(h2, word))
		}
	}

	if m.Order >= 2 && len(history) >= 1 {
		return m.logProbBigram(history[len(history)-1], word)
	}

	return m.logProbUnigram(word)
}

func (m *NGramModel) logProbBigram(prev, word string) float64 {
	if e, ok := m.Bigrams[[2]string{prev, word}]; ok {
		return e.LogProb
	}
	if e, ok := m.Unigrams[prev]; ok {
		return floor(e.backoff() + m.logProbUnigram(word))
	}
	return m.logProbUnigram(word)
}

func (m *NGramModel) logProbUnigram(word string) float64 {
	if e, ok := m.Unigrams[word]; ok {
		return e.LogProb
	}
	return mathutil.LogZero
}

func floor(lp float64) float64 {
	if mathutil.IsLogZero(lp) {
		return mathutil.LogZero
	}
	return lp
}

// SentenceLogProb returns the total log probability of a word sequence.
// No sentence boundary markers are added.
func (m *NGramModel) SentenceLogProb(words []string) float64 {
	total := 0.0
	for i, w := range words {
		total += m.LogProb(words[:i], w)
	}
	return total
}

// Score summarizes how well a model predicts a set of sentences.
type Score struct {
	LogProb    float64 // natural log, in-vocabulary words only
	Words      int     // scored words
	OOV        int     // words missing from the vocabulary, not scored
	ZeroProb   int     // in-vocabulary words the model gives zero probability, not scored
	Perplexity float64
}

// Perplexity scores sentences against the model. Out-of-vocabulary words
// are skipped and counted in Score.OOV. Words reached only through a
// log-zero backoff weight are skipped and counted in Score.ZeroProb, which
// keeps the perplexity of an unsmoothed model finite.
func (m *NGramModel) Perplexity(sentences [][]string) (Score, error) {
	var s Score
	for _, words := range sentences {
		for i, w := range words {
			if _, ok := m.Unigrams[w]; !ok {
				s.OOV++
				continue
			}
			lp := m.LogProb(words[:i], w)
			if mathutil.IsLogZero(lp) {
				s.ZeroProb++
				continue
			}
			s.LogProb += lp
			s.Words++
		}
	}
	if s.Words == 0 {
		return s, ErrEmptyCorpus
	}
	s.Perplexity = math.Exp(-s.LogProb / float64(s.Words))
	return s, nil
}

// Vocab returns all words in the unigram vocabulary, sorted.
func (m *NGramModel) Vocab() []string {
	words := make([]string, 0, len(m.Unigrams))
	for w := range m.Unigrams {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
