package test

import (
	"math/rand"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"
)

// Curated list of categories that include every cased rune.
var casedTable = rangetable.Merge(
	unicode.Upper,
	unicode.Lower,
	unicode.Title,
	unicode.Other_Lowercase,
	unicode.Other_Uppercase,
)

var casedRunes = sync.OnceValue(func() []rune {
	runes := make([]rune, 0, 4096)
	rangetable.Visit(casedTable, func(r rune) {
		if r >= utf8.RuneSelf {
			runes = append(runes, r)
		}
	})
	return runes
})

// CasedRunes returns every non-ASCII rune in the Upper, Lower or Title case
// categories.
func CasedRunes() []rune {
	return casedRunes()
}

// Runes with unusual full case foldings.
var specialRunes = []rune{
	'\u00df',     // 'ß'
	'\u0130',     // 'İ'
	'\u0131',     // 'ı'
	'\u017f',     // 'ſ'
	'\u0307',     // combining dot above
	'\u0390',     // 'ΐ'
	'\u03a3',     // 'Σ'
	'\u03c2',     // 'ς'
	'\u1e9e',     // 'ẞ'
	'\u2126',     // 'Ω'
	'\u212a',     // 'K'
	'\u212b',     // 'Å'
	'\ufb03',     // 'ﬃ'
	'\U00010400', // '𐐀'
}

const asciiAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 -_.@[]`{}~"

// A Generator produces random strings for property tests.
type Generator struct {
	rr *rand.Rand
}

// NewGenerator returns a Generator seeded with seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rr: rand.New(rand.NewSource(seed))}
}

// ASCII returns a random ASCII string with a length in [0, maxLen].
func (g *Generator) ASCII(maxLen int) string {
	n := g.rr.Intn(maxLen + 1)
	b := make([]byte, n)
	for i := range b {
		b[i] = asciiAlphabet[g.rr.Intn(len(asciiAlphabet))]
	}
	return string(b)
}

// Unicode returns a random string of at most maxLen runes that contains
// ASCII, cased and special runes.
func (g *Generator) Unicode(maxLen int) string {
	cased := CasedRunes()
	n := g.rr.Intn(maxLen + 1)
	var w strings.Builder
	for i := 0; i < n; i++ {
		switch g.rr.Intn(4) {
		case 0, 1:
			w.WriteByte(asciiAlphabet[g.rr.Intn(len(asciiAlphabet))])
		case 2:
			w.WriteRune(cased[g.rr.Intn(len(cased))])
		case 3:
			w.WriteRune(specialRunes[g.rr.Intn(len(specialRunes))])
		}
	}
	return w.String()
}

// String returns either an ASCII or Unicode string.
func (g *Generator) String(maxLen int) string {
	if g.rr.Intn(2) == 0 {
		return g.ASCII(maxLen)
	}
	return g.Unicode(maxLen)
}

// Jumble randomly changes the case of the letters in s. ASCII letters are
// swapped and other runes are replaced with a member of their simple case
// folding orbit.
func (g *Generator) Jumble(s string) string {
	var w strings.Builder
	w.Grow(len(s))
	for _, r := range s {
		if g.rr.Intn(2) == 0 {
			w.WriteRune(r)
			continue
		}
		if r < utf8.RuneSelf {
			w.WriteRune(swapCaseASCII(r))
			continue
		}
		rr := unicode.SimpleFold(r)
		for n := g.rr.Intn(3); n > 0 && rr != r; n-- {
			rr = unicode.SimpleFold(rr)
		}
		w.WriteRune(rr)
	}
	return w.String()
}

// SwapCaseASCII flips the case of every ASCII letter in s.
func SwapCaseASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		b[i] = byte(swapCaseASCII(rune(c)))
	}
	return string(b)
}

func swapCaseASCII(r rune) rune {
	switch {
	case 'a' <= r && r <= 'z':
		return r - ('a' - 'A')
	case 'A' <= r && r <= 'Z':
		return r + ('a' - 'A')
	}
	return r
}
