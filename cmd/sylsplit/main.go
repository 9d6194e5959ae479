package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ieee0824/ngramlm/syllable"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: sylsplit [clean.txt]")
		fmt.Fprintln(os.Stderr, "  Prints every word of a cleaned Kazakh corpus on its own line")
		fmt.Fprintf(os.Stderr, "  with syllable boundaries marked as %q.\n", syllable.Marker)
		fmt.Fprintln(os.Stderr, "  If no input file given, reads from stdin.")
	}
	flag.Parse()

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

	if err := splitWords(os.Stdout, in); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// splitWords writes one syllabified word per line.
func splitWords(w io.Writer, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	bw := bufio.NewWriter(w)
	for scanner.Scan() {
		for _, word := range strings.Fields(scanner.Text()) {
			bw.WriteString(syllable.Split(word))
			bw.WriteByte('\n')
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return bw.Flush()
}
