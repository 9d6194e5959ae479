package language

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptyCorpus is returned when no tokens survive sentence filtering.
	ErrEmptyCorpus = errors.New("empty corpus: no tokens to estimate from")
	// ErrInvariant marks count tables that cannot come from a single corpus,
	// such as an n-gram whose prefix was never counted.
	ErrInvariant = errors.New("count invariant violated")
)

// MLE returns numerator/denominator as a probability.
func MLE(numerator, denominator int) (float64, error) {
	if denominator <= 0 {
		return 0, fmt.Errorf("%w: denominator %d for count %d", ErrInvariant, denominator, numerator)
	}
	if numerator <= 0 || numerator > denominator {
		return 0, fmt.Errorf("%w: count %d outside (0, %d]", ErrInvariant, numerator, denominator)
	}
	return float64(numerator) / float64(denominator), nil
}

// UnigramLogProbs returns ln(count(w)/N) for every word, N being the total
// number of token occurrences.
func UnigramLogProbs(c *Counts) (map[string]float64, error) {
	n := c.Total()
	if n == 0 {
		return nil, ErrEmptyCorpus
	}
	out := make(map[string]float64, len(c.Unigrams))
	for w, count := range c.Unigrams {
		p, err := MLE(count, n)
		if err != nil {
			return nil, fmt.Errorf("unigram %q: %w", w, err)
		}
		out[w] = math.Log(p)
	}
	return out, nil
}

// BigramMLE returns ln(count(a,b)/count(a)) for every observed bigram.
func BigramMLE(c *Counts) (map[[2]string]float64, error) {
	out := make(map[[2]string]float64, len(c.Bigrams))
	for key, count := range c.Bigrams {
		p, err := MLE(count, c.Unigrams[key[0]])
		if err != nil {
			return nil, fmt.Errorf("bigram %q %q: %w", key[0], key[1], err)
		}
		out[key] = math.Log(p)
	}
	return out, nil
}

// TrigramMLE returns ln(count(a,b,c)/count(a,b)) for every observed trigram.
func TrigramMLE(c *Counts) (map[[3]string]float64, error) {
	out := make(map[[3]string]float64, len(c.Trigrams))
	for key, count := range c.Trigrams {
		p, err := MLE(count, c.Bigrams[[2]string{key[0], key[1]}])
		if err != nil {
			return nil, fmt.Errorf("trigram %q %q %q: %w", key[0], key[1], key[2], err)
		}
		out[key] = math.Log(p)
	}
	return out, nil
}
