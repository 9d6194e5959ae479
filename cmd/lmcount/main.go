package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ieee0824/ngramlm/internal/countstore"
	"github.com/ieee0824/ngramlm/language"
)

type countOptions struct {
	cutoff  int
	workers int
	nfc     bool
}

func main() {
	dbPath := flag.String("db", "counts.db", "SQLite count store to add to")
	cutoff := flag.Int("cutoff", language.DefaultCutoff, "keep sentences with more tokens than this")
	workers := flag.Int("workers", 1, "counting shards per file")
	nfc := flag.Bool("nfc", false, "compose lines to Unicode NFC")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: lmcount [options] [input-files...]")
		fmt.Fprintln(os.Stderr, "  Counts 1- to 3-grams of cleaned text and adds them to a count store.")
		fmt.Fprintln(os.Stderr, "  Running it once per corpus shard sums the shards; build with lmbuild -counts.")
		fmt.Fprintln(os.Stderr, "  If no input files given, reads from stdin.")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	store, err := countstore.Open(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	rep := language.NewTimedReporter(os.Stderr)
	opts := countOptions{cutoff: *cutoff, workers: *workers, nfc: *nfc}

	if flag.NArg() == 0 {
		n, err := countInto(store, os.Stdin, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: stdin: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		rep.Report("stdin: %d sentences", n)
	}
	for _, path := range flag.Args() {
		n, err := countFile(store, path, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", path, err)
			store.Close()
			os.Exit(1)
		}
		rep.Report("%s: %d sentences", path, n)
	}

	for order := 1; order <= language.MaxOrder; order++ {
		n, err := store.Len(order)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		rep.Report("%s holds %d distinct %d-grams", *dbPath, n, order)
	}
}

func countFile(store *countstore.Store, path string, opts countOptions) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return countInto(store, f, opts)
}

// countInto counts the sentences of r and adds them to store. It returns
// the number of sentences kept.
func countInto(store *countstore.Store, r io.Reader, opts countOptions) (int, error) {
	var ropts []language.ReadOption
	if opts.nfc {
		ropts = append(ropts, language.WithNFC())
	}
	sentences, err := language.ReadSentences(r, opts.cutoff, ropts...)
	if err != nil {
		return 0, err
	}
	if err := store.Add(language.CountSentences(sentences, opts.workers)); err != nil {
		return 0, err
	}
	return len(sentences), nil
}
