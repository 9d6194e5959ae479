package language

import (
	"errors"
	"math"
	"testing"
)

func countText(text string, cutoff int) *Counts {
	return CountSentences(FilterSentences(text, cutoff), 1)
}

func TestUnigramMassSumsToOne(t *testing.T) {
	corpora := []string{
		"a b a b c",
		"the cat sat on the mat\nthe dog sat\na a a a",
		"x",
	}
	for _, text := range corpora {
		uni, err := UnigramLogProbs(countText(text, 0))
		if err != nil {
			t.Fatalf("UnigramLogProbs(%q) error: %v", text, err)
		}
		sum := 0.0
		for _, lp := range uni {
			sum += math.Exp(lp)
		}
		if math.Abs(sum-1) > 1e-12 {
			t.Errorf("Σ P(w) for %q = %.15f, want 1", text, sum)
		}
	}
}

func TestUnigramLogProbsEmpty(t *testing.T) {
	_, err := UnigramLogProbs(NewCounts())
	if !errors.Is(err, ErrEmptyCorpus) {
		t.Errorf("err = %v, want ErrEmptyCorpus", err)
	}
}

func TestMLE(t *testing.T) {
	p, err := MLE(2, 2)
	if err != nil || p != 1.0 {
		t.Errorf("MLE(2, 2) = %v, %v; want 1, nil", p, err)
	}
	p, err = MLE(2, 3)
	if err != nil || p != 2.0/3.0 {
		t.Errorf("MLE(2, 3) = %v, %v; want 2/3, nil", p, err)
	}

	for _, tt := range []struct{ num, den int }{{1, 0}, {0, 3}, {4, 3}, {-1, 2}} {
		if _, err := MLE(tt.num, tt.den); !errors.Is(err, ErrInvariant) {
			t.Errorf("MLE(%d, %d) err = %v, want ErrInvariant", tt.num, tt.den, err)
		}
	}
}

func TestBigramMLEExact(t *testing.T) {
	c := countText("a b a b c\nb a c a b", 0)
	bi, err := BigramMLE(c)
	if err != nil {
		t.Fatalf("BigramMLE error: %v", err)
	}
	for key, count := range c.Bigrams {
		want := math.Log(float64(count) / float64(c.Unigrams[key[0]]))
		if bi[key] != want {
			t.Errorf("ln MLE(%s|%s) = %v, want %v", key[1], key[0], bi[key], want)
		}
	}

	// a b a b c: MLE(b|a) = 2/2
	single, err := BigramMLE(countText("a b a b c", 0))
	if err != nil {
		t.Fatal(err)
	}
	if got := single[[2]string{"a", "b"}]; got != 0 {
		t.Errorf("ln MLE(b|a) = %v, want 0", got)
	}
	if got := math.Exp(single[[2]string{"b", "c"}]); math.Abs(got-0.5) > 1e-15 {
		t.Errorf("MLE(c|b) = %v, want 0.5", got)
	}
}

func TestTrigramMLE(t *testing.T) {
	c := countText("a b a b c", 0)
	tri, err := TrigramMLE(c)
	if err != nil {
		t.Fatalf("TrigramMLE error: %v", err)
	}
	if len(tri) != 3 {
		t.Fatalf("len = %d, want 3", len(tri))
	}
	if got := tri[[3]string{"b", "a", "b"}]; got != 0 {
		t.Errorf("ln MLE(b|b a) = %v, want 0", got)
	}
	if got := tri[[3]string{"a", "b", "c"}]; got != math.Log(0.5) {
		t.Errorf("ln MLE(c|a b) = %v, want ln 0.5", got)
	}
}

func TestMLEMissingPrefix(t *testing.T) {
	c := NewCounts()
	c.Add([]string{"a"}, 1)
	c.Add([]string{"b", "a"}, 1)
	if _, err := BigramMLE(c); !errors.Is(err, ErrInvariant) {
		t.Errorf("BigramMLE err = %v, want ErrInvariant", err)
	}

	c.Add([]string{"x", "y", "z"}, 2)
	if _, err := TrigramMLE(c); !errors.Is(err, ErrInvariant) {
		t.Errorf("TrigramMLE err = %v, want ErrInvariant", err)
	}
}
