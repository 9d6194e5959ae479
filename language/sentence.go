package language

import (
	"bufio"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DefaultCutoff is the default minimum sentence length. A sentence is kept
// only if it has strictly more tokens than the cutoff.
const DefaultCutoff = 4

type readConfig struct {
	nfc bool
}

// ReadOption configures ReadSentences.
type ReadOption func(*readConfig)

// WithNFC composes every line to Unicode NFC before tokenizing, so that
// precomposed and decomposed spellings of a token count as one word.
func WithNFC() ReadOption {
	return func(c *readConfig) {
		c.nfc = true
	}
}

// FilterSentences splits text into lines, tokenizes each line on whitespace
// and returns the lines whose token count exceeds cutoff.
func FilterSentences(text string, cutoff int) [][]string {
	var out [][]string
	for _, line := range strings.Split(text, "\n") {
		if words, ok := keepLine(line, cutoff); ok {
			out = append(out, words)
		}
	}
	return out
}

// ReadSentences is the streaming form of FilterSentences.
func ReadSentences(r io.Reader, cutoff int, opts ...ReadOption) ([][]string, error) {
	var cfg readConfig
	for _, o := range opts {
		o(&cfg)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 16*1024*1024)
	var out [][]string
	for scanner.Scan() {
		line := scanner.Text()
		if cfg.nfc {
			line = norm.NFC.String(line)
		}
		if words, ok := keepLine(line, cutoff); ok {
			out = append(out, words)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func keepLine(line string, cutoff int) ([]string, bool) {
	words := strings.Fields(line)
	if len(words) == 0 || len(words) <= cutoff {
		return nil, false
	}
	return words, true
}
