package language

import (
	"reflect"
	"testing"
)

func TestExtract(t *testing.T) {
	tokens := []string{"a", "b", "a", "b", "c"}
	tests := []struct {
		n    int
		want [][]string
	}{
		{1, [][]string{{"a"}, {"b"}, {"a"}, {"b"}, {"c"}}},
		{2, [][]string{{"a", "b"}, {"b", "a"}, {"a", "b"}, {"b", "c"}}},
		{3, [][]string{{"a", "b", "a"}, {"b", "a", "b"}, {"a", "b", "c"}}},
		{5, [][]string{{"a", "b", "a", "b", "c"}}},
		{6, nil},
		{0, nil},
	}
	for _, tt := range tests {
		got := Extract(tokens, tt.n)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Extract(n=%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestExtractBigramCount(t *testing.T) {
	for l := 0; l <= 8; l++ {
		tokens := make([]string, l)
		for i := range tokens {
			tokens[i] = string(rune('a' + i%3))
		}
		want := l - 1
		if l < 2 {
			want = 0
		}
		if got := len(Extract(tokens, 2)); got != want {
			t.Errorf("len(Extract(L=%d, 2)) = %d, want %d", l, got, want)
		}
	}
}

func TestExtractDoesNotAlias(t *testing.T) {
	tokens := []string{"x", "y", "z"}
	grams := Extract(tokens, 2)
	grams[0][0] = "changed"
	if tokens[0] != "x" {
		t.Errorf("Extract result aliases input: tokens[0] = %q", tokens[0])
	}
}
