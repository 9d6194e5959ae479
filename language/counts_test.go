package language

import (
	"reflect"
	"testing"
)

func TestCountsScenario(t *testing.T) {
	c := NewCounts()
	for _, s := range FilterSentences("a b a b c", 0) {
		c.AddSentence(s)
	}

	wantUni := map[string]int{"a": 2, "b": 2, "c": 1}
	wantBi := map[[2]string]int{{"a", "b"}: 2, {"b", "a"}: 1, {"b", "c"}: 1}
	wantTri := map[[3]string]int{{"a", "b", "a"}: 1, {"b", "a", "b"}: 1, {"a", "b", "c"}: 1}
	if !reflect.DeepEqual(c.Unigrams, wantUni) {
		t.Errorf("Unigrams = %v, want %v", c.Unigrams, wantUni)
	}
	if !reflect.DeepEqual(c.Bigrams, wantBi) {
		t.Errorf("Bigrams = %v, want %v", c.Bigrams, wantBi)
	}
	if !reflect.DeepEqual(c.Trigrams, wantTri) {
		t.Errorf("Trigrams = %v, want %v", c.Trigrams, wantTri)
	}
	if c.Total() != 5 {
		t.Errorf("Total = %d, want 5", c.Total())
	}
	if got := c.Occurrences(2); got != 4 {
		t.Errorf("Occurrences(2) = %d, want 4", got)
	}
}

func TestCountNGramsDuplicates(t *testing.T) {
	c := CountNGrams([][]string{{"x", "y"}, {"x", "y"}, {"x", "y"}, {"y", "x"}, {"x"}, {"a", "b", "c", "d"}})
	if got := c.Bigrams[[2]string{"x", "y"}]; got != 3 {
		t.Errorf("count(x y) = %d, want 3", got)
	}
	if got := c.Bigrams[[2]string{"y", "x"}]; got != 1 {
		t.Errorf("count(y x) = %d, want 1", got)
	}
	if got := c.Unigrams["x"]; got != 1 {
		t.Errorf("count(x) = %d, want 1", got)
	}
	if len(c.Trigrams) != 0 {
		t.Errorf("4-grams must be ignored, got trigrams %v", c.Trigrams)
	}
}

var shardCorpus = [][]string{
	{"the", "cat", "sat", "on", "the", "mat"},
	{"the", "dog", "sat"},
	{"a", "cat", "and", "a", "dog"},
	{"on", "the", "mat", "the", "cat", "sat"},
	{"dog"},
	{"the", "cat"},
	{"mat", "on", "mat", "on", "mat"},
}

func TestMergeEqualsSinglePass(t *testing.T) {
	single := NewCounts()
	for _, s := range shardCorpus {
		single.AddSentence(s)
	}

	left, right := NewCounts(), NewCounts()
	for i, s := range shardCorpus {
		if i%2 == 0 {
			left.AddSentence(s)
		} else {
			right.AddSentence(s)
		}
	}

	lr := NewCounts()
	lr.Merge(left)
	lr.Merge(right)
	rl := NewCounts()
	rl.Merge(right)
	rl.Merge(left)

	if !reflect.DeepEqual(lr, single) {
		t.Error("left+right merge differs from single pass")
	}
	if !reflect.DeepEqual(rl, single) {
		t.Error("right+left merge differs from single pass")
	}
}

func TestCountSentencesShardIndependent(t *testing.T) {
	want := CountSentences(shardCorpus, 1)

	reversed := make([][]string, len(shardCorpus))
	for i, s := range shardCorpus {
		reversed[len(shardCorpus)-1-i] = s
	}

	for workers := 0; workers <= len(shardCorpus)+2; workers++ {
		if got := CountSentences(shardCorpus, workers); !reflect.DeepEqual(got, want) {
			t.Errorf("CountSentences(workers=%d) differs from serial count", workers)
		}
		if got := CountSentences(reversed, workers); !reflect.DeepEqual(got, want) {
			t.Errorf("CountSentences(reversed, workers=%d) differs from serial count", workers)
		}
	}
}

func TestCountSentencesEmpty(t *testing.T) {
	c := CountSentences(nil, 4)
	if c.Total() != 0 || len(c.Bigrams) != 0 || len(c.Trigrams) != 0 {
		t.Errorf("CountSentences(nil) = %+v, want empty", c)
	}
}
