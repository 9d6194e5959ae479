package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ieee0824/ngramlm/language"
)

func main() {
	lmPath := flag.String("lm", "", "ARPA language model (required)")
	log10 := flag.Bool("log10", false, "model values are log10 instead of natural log")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: lmeval -lm MODEL [text-file]")
		fmt.Fprintln(os.Stderr, "  Scores whitespace-tokenized sentences against an ARPA model")
		fmt.Fprintln(os.Stderr, "  and prints log probability, OOV count and perplexity.")
		fmt.Fprintln(os.Stderr, "  Words an unsmoothed model gives zero probability are counted")
		fmt.Fprintln(os.Stderr, "  in zeroprob and left out of the perplexity.")
		fmt.Fprintln(os.Stderr, "  If no text file given, reads from stdin.")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *lmPath == "" {
		fmt.Fprintln(os.Stderr, "error: -lm is required")
		flag.Usage()
		os.Exit(2)
	}
	base := language.Natural
	if *log10 {
		base = language.Base10
	}

	m, err := loadModel(*lmPath, base)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: load %s: %v\n", *lmPath, err)
		os.Exit(1)
	}

	in := io.Reader(os.Stdin)
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	if err := evaluate(os.Stdout, m, in); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func loadModel(path string, base language.LogBase) (*language.NGramModel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return language.LoadARPA(f, base)
}

func evaluate(w io.Writer, m *language.NGramModel, r io.Reader) error {
	sentences, err := language.ReadSentences(r, 0)
	if err != nil {
		return err
	}
	score, err := m.Perplexity(sentences)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "sentences=%d words=%d oov=%d zeroprob=%d logprob=%.4f ppl=%.4f\n",
		len(sentences), score.Words, score.OOV, score.ZeroProb, score.LogProb, score.Perplexity)
	return err
}
