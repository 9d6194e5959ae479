package language

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/ieee0824/ngramlm/internal/mathutil"
)

// LogBase selects the logarithm base of values in an ARPA file.
type LogBase int

const (
	// Natural writes ln values, the model's internal representation.
	Natural LogBase = iota
	// Base10 writes log10 values as expected by most ARPA consumers.
	Base10
)

// arpaLogZero is the conventional ARPA spelling of log(0).
const arpaLogZero = -99.0

// ARPAOptions controls serialization.
type ARPAOptions struct {
	Backoff   bool    // emit backoff weights for 1-grams and 2-grams
	Base      LogBase // logarithm base of written values
	Precision int     // fixed decimals; <= 0 writes the shortest exact form
}

type arpaRow struct {
	words []string
	e     Entry
}

// WriteARPA writes m in ARPA format. Rows are sorted by descending
// probability, ties broken by n-gram in lexical order.
func WriteARPA(w io.Writer, m *NGramModel, opts ARPAOptions) error {
	unis := make([]arpaRow, 0, len(m.Unigrams))
	for word, e := range m.Unigrams {
		unis = append(unis, arpaRow{[]string{word}, e})
	}
	bis := make([]arpaRow, 0, len(m.Bigrams))
	for key, e := range m.Bigrams {
		bis = append(bis, arpaRow{key[:], e})
	}
	tris := make([]arpaRow, 0, len(m.Trigrams))
	for key, e := range m.Trigrams {
		e.HasBackoff = false
		tris = append(tris, arpaRow{key[:], e})
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "\\data\\")
	fmt.Fprintf(bw, "ngram 1=%d\n", len(unis))
	fmt.Fprintf(bw, "ngram 2=%d\n", len(bis))
	fmt.Fprintf(bw, "ngram 3=%d\n", len(tris))
	fmt.Fprintln(bw)

	for i, rows := range [][]arpaRow{unis, bis, tris} {
		sortRows(rows)
		fmt.Fprintf(bw, "\\%d-grams:\n", i+1)
		for _, row := range rows {
			writeRow(bw, row, opts)
		}
	}
	fmt.Fprintln(bw, "\\end\\")
	return bw.Flush()
}

func sortRows(rows []arpaRow) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].e.LogProb != rows[j].e.LogProb {
			return rows[i].e.LogProb > rows[j].e.LogProb
		}
		return lessWords(rows[i].words, rows[j].words)
	})
}

func writeRow(bw *bufio.Writer, row arpaRow, opts ARPAOptions) {
	bw.WriteString(opts.format(row.e.LogProb))
	for _, word := range row.words {
		bw.WriteByte(' ')
		bw.WriteString(word)
	}
	if opts.Backoff && row.e.HasBackoff {
		bw.WriteByte(' ')
		bw.WriteString(opts.format(row.e.LogBackoff))
	}
	bw.WriteByte('\n')
}

func (o ARPAOptions) format(lp float64) string {
	if mathutil.IsLogZero(lp) || math.IsNaN(lp) {
		return "-99"
	}
	if o.Base == Base10 {
		lp /= math.Ln10
	}
	if lp == 0 {
		lp = 0 // no "-0"
	}
	if o.Precision > 0 {
		s := strconv.FormatFloat(lp, 'f', o.Precision, 64)
		if strings.Trim(s, "-0.") == "" {
			s = strings.TrimPrefix(s, "-")
		}
		return s
	}
	s := strconv.FormatFloat(lp, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// LoadARPA reads a language model in ARPA format written with the given
// log base. Values are converted to natural log; the -99 log-zero sentinel
// becomes mathutil.LogZero. The declared n-gram counts must match the rows.
func LoadARPA(r io.Reader, base LogBase) (*NGramModel, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	model := NewNGramModel(0)
	declared := make(map[int]int)

	// Skip until \data\ section
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == "\\data\\" {
			break
		}
	}

	order := 0 // current section, 0 while reading the header
	ended := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == "\\end\\":
			ended = true
		case strings.HasPrefix(line, "\\") && strings.HasSuffix(line, "-grams:"):
			n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(line, "\\"), "-grams:"))
			if err != nil || n < 1 || n > MaxOrder {
				return nil, fmt.Errorf("unsupported section %q", line)
			}
			order = n
		case order == 0 && strings.HasPrefix(line, "ngram "):
			parts := strings.SplitN(line[len("ngram "):], "=", 2)
			if len(parts) != 2 {
				return nil, fmt.Errorf("malformed count line %q", line)
			}
			n, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
			count, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("malformed count line %q", line)
			}
			declared[n] = count
		case order > 0:
			if err := parseNGramLine(model, order, line, base); err != nil {
				return nil, fmt.Errorf("parse n-gram line %q: %w", line, err)
			}
		default:
			return nil, fmt.Errorf("unexpected line %q", line)
		}
		if ended {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !ended {
		return nil, fmt.Errorf("missing \\end\\ marker")
	}

	got := map[int]int{1: len(model.Unigrams), 2: len(model.Bigrams), 3: len(model.Trigrams)}
	for n, want := range declared {
		if got[n] != want {
			return nil, fmt.Errorf("ngram %d declared %d entries, read %d", n, want, got[n])
		}
		if want > 0 && n > model.Order {
			model.Order = n
		}
	}
	return model, nil
}

func parseNGramLine(model *NGramModel, order int, line string, base LogBase) error {
	fields := strings.Fields(line)
	if len(fields) < order+1 || len(fields) > order+2 {
		return fmt.Errorf("want %d or %d fields for %d-gram, got %d", order+1, order+2, order, len(fields))
	}

	logProb, err := parseLogValue(fields[0], base)
	if err != nil {
		return fmt.Errorf("parse log prob: %w", err)
	}
	entry := Entry{LogProb: logProb}
	if len(fields) == order+2 {
		entry.LogBackoff, err = parseLogValue(fields[order+1], base)
		if err != nil {
			return fmt.Errorf("parse backoff: %w", err)
		}
		entry.HasBackoff = true
	}

	words := fields[1 : order+1]
	switch order {
	case 1:
		model.Unigrams[words[0]] = entry
	case 2:
		model.Bigrams[[2]string{words[0], words[1]}] = entry
	case 3:
		model.Trigrams[[3]string{words[0], words[1], words[2]}] = entry
	}
	return nil
}

func parseLogValue(s string, base LogBase) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if v <= arpaLogZero {
		return mathutil.LogZero, nil
	}
	if base == Base10 {
		v *= math.Ln10
	}
	return v, nil
}
