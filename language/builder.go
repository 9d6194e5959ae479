package language

import (
	"errors"
	"fmt"
)

// Smoothing names a smoothing flavor.
type Smoothing string

const (
	SmoothingNone    Smoothing = "none"
	SmoothingLaplace Smoothing = "laplace"
	SmoothingTuring  Smoothing = "turing"
)

// ErrUnsupportedSmoothing is returned for a smoothing flavor outside
// none|laplace|turing.
var ErrUnsupportedSmoothing = errors.New("unsupported smoothing")

// ParseSmoothing validates a smoothing flavor name.
func ParseSmoothing(s string) (Smoothing, error) {
	switch sm := Smoothing(s); sm {
	case SmoothingNone, SmoothingLaplace, SmoothingTuring:
		return sm, nil
	}
	return "", fmt.Errorf("%w: %q (want none, laplace or turing)", ErrUnsupportedSmoothing, s)
}

// BuildOptions configures a Builder.
type BuildOptions struct {
	Smoothing Smoothing // empty means SmoothingNone
	Workers   int       // shards used for counting; <= 1 counts serially
	Reporter  Reporter  // nil means NopReporter
}

// Builder accumulates sentences and builds a trigram language model.
type Builder struct {
	opts   BuildOptions
	counts *Counts
}

// NewBuilder creates a new N-gram builder.
func NewBuilder(opts BuildOptions) *Builder {
	if opts.Smoothing == "" {
		opts.Smoothing = SmoothingNone
	}
	if opts.Reporter == nil {
		opts.Reporter = NopReporter
	}
	return &Builder{opts: opts, counts: NewCounts()}
}

// AddSentence counts one tokenized sentence.
func (b *Builder) AddSentence(words []string) {
	b.counts.AddSentence(words)
}

// AddSentences counts sentences, sharded across the configured workers.
func (b *Builder) AddSentences(sentences [][]string) {
	b.counts.Merge(CountSentences(sentences, b.opts.Workers))
}

// AddCounts merges precomputed count tables, e.g. from a count store.
func (b *Builder) AddCounts(c *Counts) {
	b.counts.Merge(c)
}

// Counts returns the accumulated count tables. The caller must not modify them.
func (b *Builder) Counts() *Counts {
	return b.counts
}

// Model estimates probabilities and backoff weights from the accumulated counts.
func (b *Builder) Model() (*NGramModel, error) {
	if _, err := ParseSmoothing(string(b.opts.Smoothing)); err != nil {
		return nil, err
	}
	r := b.opts.Reporter
	c := b.counts
	r.Report("A total of %d unigrams found", c.Occurrences(1))
	r.Report("A total of %d bigrams found", c.Occurrences(2))
	r.Report("A total of %d trigrams found", c.Occurrences(3))

	if b.opts.Smoothing != SmoothingNone {
		r.Report("smoothing %q is not implemented; using maximum likelihood", b.opts.Smoothing)
	}

	uni, err := UnigramLogProbs(c)
	if err != nil {
		return nil, err
	}
	bi, err := BigramMLE(c)
	if err != nil {
		return nil, err
	}
	tri, err := TrigramMLE(c)
	if err != nil {
		return nil, err
	}
	bo := BackoffWeights(uni, bi, tri)
	r.Report("computed backoff weights for %d unigram and %d bigram contexts", len(bo.Unigrams), len(bo.Bigrams))

	m := NewNGramModel(1)
	for w, lp := range uni {
		lb, ok := bo.Unigrams[w]
		m.Unigrams[w] = Entry{LogProb: lp, LogBackoff: lb, HasBackoff: ok}
	}
	for key, lp := range bi {
		lb, ok := bo.Bigrams[key]
		m.Bigrams[key] = Entry{LogProb: lp, LogBackoff: lb, HasBackoff: ok}
	}
	for key, lp := range tri {
		m.Trigrams[key] = Entry{LogProb: lp}
	}
	switch {
	case len(m.Trigrams) > 0:
		m.Order = 3
	case len(m.Bigrams) > 0:
		m.Order = 2
	}
	return m, nil
}

// Build counts sentences and estimates a model in one call.
func Build(sentences [][]string, opts BuildOptions) (*NGramModel, error) {
	b := NewBuilder(opts)
	b.AddSentences(sentences)
	return b.Model()
}
