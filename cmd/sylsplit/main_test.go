package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestSplitWords(t *testing.T) {
	var out bytes.Buffer
	if err := splitWords(&out, strings.NewReader("бала мектеп\n\n  ая\n")); err != nil {
		t.Fatal(err)
	}
	want := "ба@ @ла\nмек@ @теп\nа@ @я\n"
	if out.String() != want {
		t.Errorf("splitWords = %q, want %q", out.String(), want)
	}
}
