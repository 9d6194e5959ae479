package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ieee0824/ngramlm/internal/atomicfile"
	"github.com/ieee0824/ngramlm/internal/config"
	"github.com/ieee0824/ngramlm/internal/countstore"
	"github.com/ieee0824/ngramlm/language"
)

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	if err := run(cfg, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags builds the configuration from an optional -config file and
// the command line. Flags given explicitly override the file.
func parseFlags(args []string, stderr io.Writer) (config.Config, error) {
	def := config.Default()
	fs := flag.NewFlagSet("lmbuild", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML configuration file")
	input := fs.String("i", def.Input, "input corpus, one cleaned sentence per line")
	counts := fs.String("counts", def.Counts, "SQLite count store (see lmcount) to build from")
	smoothing := fs.String("s", def.Smoothing, "smoothing flavor: none, laplace or turing")
	backoff := fs.Bool("bo", def.Backoff, "add backoff weights")
	cutoff := fs.Int("cutoff", def.Cutoff, "keep sentences with more tokens than this")
	workers := fs.Int("workers", def.Workers, "counting shards")
	nfc := fs.Bool("nfc", def.NFC, "compose corpus lines to Unicode NFC")
	log10 := fs.Bool("log10", def.Log10, "write log10 values instead of natural log")
	precision := fs.Int("precision", def.Precision, "fixed decimals (0 = shortest exact form)")
	outDir := fs.String("outdir", def.OutDir, "output directory")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: lmbuild -i corpus.txt [-s none|laplace|turing] [-bo] [options]")
		fmt.Fprintln(stderr, "  Builds a trigram ARPA language model from a cleaned corpus.")
		fmt.Fprintln(stderr, "  The model is written to lm_smoothing-<s>_backoff-<yes|no>.txt.")
		fmt.Fprintln(stderr)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return def, err
	}

	cfg := def
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return cfg, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "i":
			cfg.Input = *input
		case "counts":
			cfg.Counts = *counts
		case "s":
			cfg.Smoothing = *smoothing
		case "bo":
			cfg.Backoff = *backoff
		case "cutoff":
			cfg.Cutoff = *cutoff
		case "workers":
			cfg.Workers = *workers
		case "nfc":
			cfg.NFC = *nfc
		case "log10":
			cfg.Log10 = *log10
		case "precision":
			cfg.Precision = *precision
		case "outdir":
			cfg.OutDir = *outDir
		}
	})
	return cfg, cfg.Validate()
}

func run(cfg config.Config, stderr io.Writer) error {
	rep := language.NewTimedReporter(stderr)
	rep.Report("running")

	smoothing, err := language.ParseSmoothing(cfg.Smoothing)
	if err != nil {
		return err
	}
	b := language.NewBuilder(language.BuildOptions{
		Smoothing: smoothing,
		Workers:   cfg.Workers,
		Reporter:  rep,
	})

	if cfg.Counts != "" {
		c, err := loadCounts(cfg.Counts)
		if err != nil {
			return err
		}
		rep.Report("loaded %d tokens from %s", c.Total(), cfg.Counts)
		b.AddCounts(c)
	}
	if cfg.Input != "" {
		sentences, err := readCorpus(cfg)
		if err != nil {
			return err
		}
		rep.Report("read %d sentences longer than %d tokens", len(sentences), cfg.Cutoff)
		b.AddSentences(sentences)
	}

	m, err := b.Model()
	if err != nil {
		return err
	}

	out := cfg.OutputPath()
	err = atomicfile.WriteFile(out, 0o644, func(w io.Writer) error {
		return language.WriteARPA(w, m, cfg.ARPAOptions())
	})
	if err != nil {
		return fmt.Errorf("write ARPA: %w", err)
	}
	rep.Report("successfully printed model to %s", out)
	return nil
}

func readCorpus(cfg config.Config) ([][]string, error) {
	f, err := os.Open(cfg.Input)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var opts []language.ReadOption
	if cfg.NFC {
		opts = append(opts, language.WithNFC())
	}
	sentences, err := language.ReadSentences(f, cfg.Cutoff, opts...)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", cfg.Input, err)
	}
	return sentences, nil
}

func loadCounts(path string) (*language.Counts, error) {
	store, err := countstore.Open(path)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	return store.Load()
}
