// Package syllable marks syllable boundaries in Kazakh Cyrillic words.
//
// Boundaries are found by a fixed sequence of pattern passes over each word.
// Every pass scans left to right with a fixed-width window and inserts
// Marker inside the window on a match:
//
//	VCV   V@ @CV
//	VCCV  VC@ @CV
//	VCCC  VCC@ @C
//	VGV   V@ @G
//
// V is a vowel or glide except in the last position of VCV and VCCV, which
// takes a vowel only. C is a consonant and G a glide. Later passes see the
// markers inserted by earlier ones.
package syllable

import (
	"regexp"
	"slices"

	"golang.org/x/text/unicode/norm"
)

// Marker is inserted at every syllable boundary.
const Marker = "@ @"

const (
	consonants = "пбдткгхшщжзсцчйлмнңфвръь"
	vowels     = "иеэөүаоуы"
	glides     = "ёяюе"
)

var (
	cons      = "[" + consonants + "]"
	vowel     = "[" + vowels + glides + "]"
	vowelOnly = "[" + vowels + "]"
	glide     = "[" + glides + "]"
)

// Rule is one boundary pass.
type Rule struct {
	Name  string
	Width int // runes in the matching window
	At    int // marker offset within the window
	re    *regexp.Regexp
}

// Rules are applied in order.
var Rules = []Rule{
	newRule("VCV", 3, 1, vowel+cons+vowelOnly),
	newRule("VCCV", 4, 2, vowel+cons+cons+vowelOnly),
	newRule("VCCC", 4, 3, vowel+cons+cons+cons),
	newRule("VGV", 2, 1, vowel+glide),
}

func newRule(name string, width, at int, pattern string) Rule {
	return Rule{Name: name, Width: width, At: at, re: regexp.MustCompile("^" + pattern + "$")}
}

var marker = []rune(Marker)

// Apply runs one pass over word.
func (r Rule) Apply(word []rune) []rune {
	for i := 0; i+r.Width <= len(word); {
		if !r.re.MatchString(string(word[i : i+r.Width])) {
			i++
			continue
		}
		word = slices.Insert(word, i+r.At, marker...)
		i += len(marker)
	}
	return word
}

// Split returns word with Marker inserted at each syllable boundary. The word
// is composed to NFC first so that letters such as й and ё match whether
// they arrive precomposed or decomposed.
func Split(word string) string {
	runes := []rune(norm.NFC.String(word))
	for _, r := range Rules {
		runes = r.Apply(runes)
	}
	return string(runes)
}
