// Package test contains the comparison tests shared by the unicase packages
// and the foldcheck tool.
package test

import (
	"strings"
	"testing"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// CompareFunc compares two strings ignoring case and returns -1, 0 or +1.
type CompareFunc func(s, t string) int

// EqualFunc reports whether two strings are equal ignoring case.
type EqualFunc func(s, t string) bool

// HashFunc returns the case-insensitive hash of s.
type HashFunc func(s string) uint64

// A CompareTest is the expected result of comparing S and T.
type CompareTest struct {
	S, T string
	Out  int
}

var asciiCompareTests = []CompareTest{
	{"", "", 0},
	{"a", "a", 0},
	{"a", "ab", -1},
	{"ab", "a", 1},
	{"ABC", "abd", -1},
	{"abc", "ABD", -1},
	{"abd", "ABC", 1},
	{"123abc", "123ABC", 0},
	{"hello world", "HELLO WORLD", 0},
	{"Hello World", "hELLO wORLD", 0},
	{"@", "`", -1}, // '@' (0x40) sorts before '`' (0x60)
	{"[", "a", -1}, // '[' (0x5B) sorts before 'a' after folding
	{"[", "A", -1}, // ... and so does 'A' since it folds to 'a'
	{"_", "A", -1}, // '_' (0x5F) < 'a' (0x61)
	{"a\x00", "A", 1},
	{"Content-Type", "content-type", 0},
	{"X-Forwarded-For", "x-forwarded-for", 0},
}

var unicodeCompareTests = []CompareTest{
	{"αβδ", "ΑΒΔ", 0},
	{"ΑΒΔ", "αβδ", 0},
	{"αβδa", "ΑΒΔ", 1},
	{"αβδ", "ΑΒΔa", -1},
	{"αβa", "ΑΒΔ", -1},
	{"ΑΒΔ", "αβa", 1},
	{"αβδ", "ΑΒa", 1},
	{"αabc", "αABD", -1},
	{"αabd", "αABC", 1},
	{strings.Repeat("\u212a", 8), strings.Repeat("k", 8), 0}, // Kelvin
	{"\u017f", "S", 0},                                       // Long s
	{"\u2126", "ω", 0},                                       // Ohm
	{"ΣΑΣ", "σας", 0},                                        // Final sigma
	{"ß", "SS", 0},                                           // Expands to "ss"
	{"ß", "ss", 0},
	{"\u1e9e", "ss", 0}, // Capital sharp s
	{"straße", "STRASSE", 0},
	{"\ufb03", "FFI", 0},     // 'ﬃ' ligature
	{"\u0130", "i\u0307", 0}, // 'İ' expands to "i\u0307"
	{"\u0130", "\u0130", 0},
	{"\u0130", "i", 1},
	{"\u0131", "i", 1}, // Dotless i does not fold
	{"\u0131", "I", 1},
	{"Ǆ", "ǆ", 0},
	{"ǅ", "ǆ", 0},
	{"hello wörld", "HELLO WÖRLD", 0},
}

// CompareTests returns the comparison tests. If ascii is true only the
// ASCII tests are returned.
func CompareTests(ascii bool) []CompareTest {
	if ascii {
		return append([]CompareTest(nil), asciiCompareTests...)
	}
	return append(append([]CompareTest(nil), asciiCompareTests...), unicodeCompareTests...)
}

// Compare runs the comparison tests against fn (and the reversed arguments).
func Compare(t *testing.T, fn CompareFunc, ascii bool) {
	t.Helper()
	for i, test := range CompareTests(ascii) {
		if got := fn(test.S, test.T); got != test.Out {
			t.Errorf("%d: Compare(%q, %q) = %d; want: %d", i, test.S, test.T, got, test.Out)
		}
		if got := fn(test.T, test.S); got != -test.Out {
			t.Errorf("%d: Compare(%q, %q) = %d; want: %d", i, test.T, test.S, got, -test.Out)
		}
	}
}

// Equal runs the comparison tests against fn.
func Equal(t *testing.T, fn EqualFunc, ascii bool) {
	t.Helper()
	for i, test := range CompareTests(ascii) {
		want := test.Out == 0
		if got := fn(test.S, test.T); got != want {
			t.Errorf("%d: Equal(%q, %q) = %t; want: %t", i, test.S, test.T, got, want)
		}
	}
}

// Hash checks that strings that are equal according to the comparison tests
// have the same hash.
func Hash(t *testing.T, fn HashFunc, ascii bool) {
	t.Helper()
	for i, test := range CompareTests(ascii) {
		if test.Out != 0 {
			continue
		}
		if h1, h2 := fn(test.S), fn(test.T); h1 != h2 {
			t.Errorf("%d: Hash(%q) = %#x; Hash(%q) = %#x; want equal hashes",
				i, test.S, h1, test.T, h2)
		}
	}
}

// Fold returns the full Unicode case folding of s. It is a reference
// implementation that does not share a Caser.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// A FoldTest is a rune and its full case folding, copied from the C and F
// entries of CaseFolding.txt.
type FoldTest struct {
	In, Out string
}

// FoldTests do not depend on golang.org/x/text and are used to check it.
var FoldTests = []FoldTest{
	{"A", "a"},
	{"\u00b5", "\u03bc"},  // MICRO SIGN
	{"\u00df", "ss"},      // SHARP S
	{"\u0130", "i\u0307"}, // CAPITAL I WITH DOT ABOVE
	{"\u0149", "\u02bcn"}, // N PRECEDED BY APOSTROPHE
	{"\u017f", "s"},       // LONG S
	{"\u01c4", "\u01c6"},  // DZ WITH CARON
	{"\u01c5", "\u01c6"},  // Dz WITH CARON
	{"\u01f0", "j\u030c"}, // J WITH CARON
	{"\u0345", "\u03b9"},  // COMBINING YPOGEGRAMMENI
	{"\u0390", "\u03b9\u0308\u0301"},
	{"\u03a3", "\u03c3"},       // CAPITAL SIGMA
	{"\u03c2", "\u03c3"},       // FINAL SIGMA
	{"\u0587", "\u0565\u0582"}, // ARMENIAN ECH YIWN
	{"\u1e96", "h\u0331"},      // H WITH LINE BELOW
	{"\u1e9e", "ss"},           // CAPITAL SHARP S
	{"\u1f88", "\u1f00\u03b9"},
	{"\u1fbc", "\u03b1\u03b9"},
	{"\u2126", "\u03c9"}, // OHM SIGN
	{"\u212a", "k"},      // KELVIN SIGN
	{"\u212b", "\u00e5"}, // ANGSTROM SIGN
	{"\ufb00", "ff"},
	{"\ufb03", "ffi"},
	{"\ufb05", "st"},
	{"\ufb06", "st"},
	{"\U00010400", "\U00010428"}, // DESERET CAPITAL LONG I
}

// SimpleFoldOrbit returns the runes that unicode.SimpleFold considers case
// variants of r, r included.
func SimpleFoldOrbit(r rune) []rune {
	orbit := []rune{r}
	for f := unicode.SimpleFold(r); f != r && len(orbit) < maxOrbit; f = unicode.SimpleFold(f) {
		orbit = append(orbit, f)
	}
	return orbit
}

// The largest orbit in Unicode 15 has 4 runes.
const maxOrbit = 8

// OrbitsComparable reports whether the unicode package and golang.org/x/text
// use the same Unicode version, which is required for SimpleFold orbits to
// agree with full case folding.
func OrbitsComparable() bool {
	return unicode.Version == norm.Version
}
