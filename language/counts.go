package language

import "sync"

// MaxOrder is the highest n-gram order the model estimates.
const MaxOrder = 3

// Counts holds n-gram occurrence counts for orders 1 to 3.
type Counts struct {
	Unigrams map[string]int
	Bigrams  map[[2]string]int
	Trigrams map[[3]string]int
}

// NewCounts creates empty count tables.
func NewCounts() *Counts {
	return &Counts{
		Unigrams: make(map[string]int),
		Bigrams:  make(map[[2]string]int),
		Trigrams: make(map[[3]string]int),
	}
}

// CountNGrams tallies a sequence of n-grams. N-grams of mixed orders may be
// passed; tuples longer than MaxOrder are ignored.
func CountNGrams(ngrams [][]string) *Counts {
	c := NewCounts()
	for _, g := range ngrams {
		c.Add(g, 1)
	}
	return c
}

// Add increments the count of ngram by k.
func (c *Counts) Add(ngram []string, k int) {
	switch len(ngram) {
	case 1:
		c.Unigrams[ngram[0]] += k
	case 2:
		c.Bigrams[[2]string{ngram[0], ngram[1]}] += k
	case 3:
		c.Trigrams[[3]string{ngram[0], ngram[1], ngram[2]}] += k
	}
}

// AddSentence extracts and counts every n-gram of order 1..MaxOrder in words.
func (c *Counts) AddSentence(words []string) {
	for n := 1; n <= MaxOrder; n++ {
		for _, g := range Extract(words, n) {
			c.Add(g, 1)
		}
	}
}

// Merge adds every count of other into c.
func (c *Counts) Merge(other *Counts) {
	for k, v := range other.Unigrams {
		c.Unigrams[k] += v
	}
	for k, v := range other.Bigrams {
		c.Bigrams[k] += v
	}
	for k, v := range other.Trigrams {
		c.Trigrams[k] += v
	}
}

// Total returns the number of token occurrences, i.e. the sum of unigram counts.
func (c *Counts) Total() int {
	return c.Occurrences(1)
}

// Occurrences returns the sum of all counts of the given order.
func (c *Counts) Occurrences(order int) int {
	total := 0
	switch order {
	case 1:
		for _, v := range c.Unigrams {
			total += v
		}
	case 2:
		for _, v := range c.Bigrams {
			total += v
		}
	case 3:
		for _, v := range c.Trigrams {
			total += v
		}
	}
	return total
}

// CountSentences counts sentences, splitting the work into at most workers
// shards that are merged by summation.
func CountSentences(sentences [][]string, workers int) *Counts {
	if workers > len(sentences) {
		workers = len(sentences)
	}
	if workers <= 1 {
		c := NewCounts()
		for _, s := range sentences {
			c.AddSentence(s)
		}
		return c
	}

	shards := make([]*Counts, workers)
	size := (len(sentences) + workers - 1) / workers
	var wg sync.WaitGroup
	for i := range workers {
		lo := min(i*size, len(sentences))
		hi := min(lo+size, len(sentences))
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := NewCounts()
			for _, s := range sentences[lo:hi] {
				c.AddSentence(s)
			}
			shards[i] = c
		}()
	}
	wg.Wait()

	total := NewCounts()
	for _, c := range shards {
		total.Merge(c)
	}
	return total
}
