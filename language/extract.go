package language

// Extract returns the overlapping n-token windows of tokens, left to right.
// A sentence shorter than n yields no n-grams. Each returned n-gram is a
// fresh slice and does not alias tokens.
func Extract(tokens []string, n int) [][]string {
	if n <= 0 || len(tokens) < n {
		return nil
	}
	out := make([][]string, 0, len(tokens)-n+1)
	for i := 0; i+n <= len(tokens); i++ {
		g := make([]string, n)
		copy(g, tokens[i:i+n])
		out = append(out, g)
	}
	return out
}

// lessWords orders n-grams of equal length lexically, word by word.
func lessWords(a, b []string) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
