package unicase

import (
	"hash/maphash"
	"strings"
	"sync"
	"testing"
	"time"

	"golang.org/x/exp/slices"

	"github.com/charlievieth/unicase/internal/test"
)

func TestEqual(t *testing.T) {
	test.Equal(t, func(s, t string) bool {
		return New(s).Equal(New(t))
	}, false)
}

func TestEq(t *testing.T) {
	test.Equal(t, Eq, false)
}

func TestCompare(t *testing.T) {
	test.Compare(t, func(s, t string) int {
		return New(s).Compare(New(t))
	}, false)
}

func TestCompareFunc(t *testing.T) {
	test.Compare(t, Compare, false)
}

func TestHash(t *testing.T) {
	test.Hash(t, func(s string) uint64 {
		return New(s).Sum64(testSeed)
	}, false)
}

// Forcing the Unicode path must not change the result for any input.
func TestUnicodePath(t *testing.T) {
	test.Equal(t, func(s, t string) bool {
		return Unicode(s).Equal(Unicode(t))
	}, false)
	test.Compare(t, func(s, t string) int {
		return Unicode(s).Compare(Unicode(t))
	}, false)
	test.Hash(t, func(s string) uint64 {
		return Unicode(s).Sum64(testSeed)
	}, false)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		s   string
		enc encoding
	}{
		{"", asciiEncoding},
		{"hello", asciiEncoding},
		{"HELLO WORLD 123 !@#", asciiEncoding},
		{"\x00\x7f", asciiEncoding},
		{"hello wörld", unicodeEncoding},
		{"\u0130", unicodeEncoding},
		{"\u212a", unicodeEncoding}, // Kelvin
		{strings.Repeat("a", 63) + "ß", unicodeEncoding},
		{"\xff", unicodeEncoding},
	}
	for _, tt := range tests {
		u := New(tt.s)
		if u.enc != tt.enc {
			t.Errorf("New(%q).enc = %s; want: %s", tt.s, u.enc, tt.enc)
		}
		if got := u.IsASCII(); got != (tt.enc == asciiEncoding) {
			t.Errorf("New(%q).IsASCII() = %t; want: %t", tt.s, got, tt.enc == asciiEncoding)
		}
		if b := New([]byte(tt.s)); b.enc != tt.enc {
			t.Errorf("New([]byte(%q)).enc = %s; want: %s", tt.s, b.enc, tt.enc)
		}
	}
}

func TestClassifyRandom(t *testing.T) {
	g := test.NewGenerator(time.Now().UnixNano())
	for i := 0; i < 10_000; i++ {
		s := g.String(32)
		want := asciiEncoding
		for _, r := range s {
			if r >= 0x80 {
				want = unicodeEncoding
				break
			}
		}
		if u := New(s); u.enc != want {
			t.Fatalf("New(%q).enc = %s; want: %s", s, u.enc, want)
		}
	}
}

func TestEncodingString(t *testing.T) {
	for enc, want := range map[encoding]string{
		asciiEncoding:   "ascii",
		unicodeEncoding: "unicode",
		encoding(7):     "encoding(7)",
	} {
		if got := enc.String(); got != want {
			t.Errorf("encoding(%d).String() = %q; want: %q", enc, got, want)
		}
	}
}

func TestCrossVariant(t *testing.T) {
	g := test.NewGenerator(time.Now().UnixNano())
	check := func(s, t2 string) {
		t.Helper()
		a := New(s)
		b := Unicode(t2)
		if !a.IsASCII() || b.IsASCII() {
			t.Fatalf("unexpected encodings: %s %s", a.enc, b.enc)
		}
		if !a.Equal(b) || !b.Equal(a) {
			t.Errorf("Equal(%q, Unicode(%q)) = false; want: true", s, t2)
		}
		if a.Compare(b) != 0 || b.Compare(a) != 0 {
			t.Errorf("Compare(%q, Unicode(%q)) = %d; want: 0", s, t2, a.Compare(b))
		}
		if a.Sum64(testSeed) != b.Sum64(testSeed) {
			t.Errorf("Sum64(%q) != Sum64(Unicode(%q))", s, t2)
		}
		if a.Key() != b.Key() {
			t.Errorf("Key(%q) = %q; Key(Unicode(%q)) = %q", s, a.Key(), t2, b.Key())
		}
	}
	check("", "")
	check("hello", "HELLO")
	check("Hello World", "Hello World")
	for i := 0; i < 10_000; i++ {
		s := g.ASCII(32)
		check(s, s)
		check(s, test.SwapCaseASCII(s))
	}
	// Every ASCII byte folds the same way on both paths.
	for c := 0; c < 0x80; c++ {
		s := string([]byte{byte(c)})
		if a, u := foldASCII(s), foldUnicode(s); a != u {
			t.Errorf("fold(%q): ascii = %q; unicode = %q", s, a, u)
		}
	}
}

func TestCrossVariantOrder(t *testing.T) {
	g := test.NewGenerator(time.Now().UnixNano())
	for i := 0; i < 10_000; i++ {
		s, t2 := g.ASCII(8), g.ASCII(8)
		want := New(s).Compare(New(t2))
		if got := New(s).Compare(Unicode(t2)); got != want {
			t.Fatalf("Compare(%q, Unicode(%q)) = %d; want: %d", s, t2, got, want)
		}
		if got := Unicode(s).Compare(Unicode(t2)); got != want {
			t.Fatalf("Compare(Unicode(%q), Unicode(%q)) = %d; want: %d", s, t2, got, want)
		}
	}
}

func TestHashConsistency(t *testing.T) {
	g := test.NewGenerator(time.Now().UnixNano())
	equal := 0
	for i := 0; i < 10_000; i++ {
		s := g.String(16)
		var t2 string
		if i%2 == 0 {
			t2 = g.Jumble(s)
		} else {
			t2 = g.String(16)
		}
		a, b := New(s), New(t2)
		if !a.Equal(b) {
			if a.Key() == b.Key() {
				t.Fatalf("Equal(%q, %q) = false but keys are equal: %q", s, t2, a.Key())
			}
			continue
		}
		equal++
		if a.Sum64(testSeed) != b.Sum64(testSeed) {
			t.Fatalf("Equal(%q, %q) = true but Sum64 differs", s, t2)
		}
		if a.Key() != b.Key() {
			t.Fatalf("Equal(%q, %q) = true but Key(%q) = %q and Key(%q) = %q",
				s, t2, s, a.Key(), t2, b.Key())
		}
	}
	if equal < 1000 {
		t.Errorf("only %d/10000 pairs were equal", equal)
	}
}

func TestOrderTotality(t *testing.T) {
	g := test.NewGenerator(time.Now().UnixNano())
	values := make([]UniCase[string], 0, 600)
	for i := 0; i < 200; i++ {
		s := g.String(4)
		values = append(values, New(s), New(g.Jumble(s)), Unicode(s))
	}
	for _, a := range values {
		for _, b := range values {
			ab := a.Compare(b)
			ba := b.Compare(a)
			if ab != -ba {
				t.Fatalf("Compare(%q, %q) = %d; Compare(%q, %q) = %d", a, b, ab, b, a, ba)
			}
			if (ab == 0) != a.Equal(b) {
				t.Fatalf("Compare(%q, %q) = %d; Equal = %t", a, b, ab, a.Equal(b))
			}
		}
	}

	// Transitivity: sort and verify every pair is ordered.
	slices.SortFunc(values, func(a, b UniCase[string]) bool {
		return a.Compare(b) < 0
	})
	for i := 0; i < len(values); i++ {
		for j := i + 1; j < len(values); j++ {
			if c := values[i].Compare(values[j]); c > 0 {
				t.Fatalf("values[%d] = %q > values[%d] = %q after sorting",
					i, values[i], j, values[j])
			}
		}
	}
}

// Check full folding against CaseFolding.txt entries that do not come from
// golang.org/x/text.
func TestFullFolding(t *testing.T) {
	for _, tt := range test.FoldTests {
		u := New(tt.In)
		if got := u.Key(); got != tt.Out {
			t.Errorf("Key(%q) = %q; want: %q", tt.In, got, tt.Out)
		}
		if !u.Equal(New(tt.Out)) {
			t.Errorf("Equal(%q, %q) = false", tt.In, tt.Out)
		}
		if u.Sum64(testSeed) != New(tt.Out).Sum64(testSeed) {
			t.Errorf("Sum64(%q) != Sum64(%q)", tt.In, tt.Out)
		}
	}
}

// Runes in the same unicode.SimpleFold orbit must be equal.
func TestSimpleFoldOrbits(t *testing.T) {
	if !test.OrbitsComparable() {
		t.Skip("unicode and golang.org/x/text use different Unicode versions")
	}
	for _, r := range test.CasedRunes() {
		u := New(string(r))
		for _, o := range test.SimpleFoldOrbit(r)[1:] {
			v := New(string(o))
			if !u.Equal(v) {
				t.Errorf("Equal(%q, %q) = false", r, o)
				continue
			}
			if u.Sum64(testSeed) != v.Sum64(testSeed) {
				t.Errorf("Sum64(%q) != Sum64(%q)", r, o)
			}
		}
	}
}

func TestScenarios(t *testing.T) {
	if !New("HELLO").Equal(New("hello")) {
		t.Error(`New("HELLO").Equal(New("hello")) = false`)
	}
	// 'İ' (U+0130) folds to "i\u0307" which must be handled by full folding.
	dotted := New("\u0130")
	if !dotted.Equal(New("i\u0307")) {
		t.Errorf("Equal(%q, %q) = false", "\u0130", "i\u0307")
	}
	if dotted.Equal(New("i")) || dotted.Equal(New("I")) {
		t.Errorf("Equal(%q, %q) = true", "\u0130", "i")
	}
	if !New("Straße").Equal(New("STRASSE")) {
		t.Errorf("Equal(%q, %q) = false", "Straße", "STRASSE")
	}
	if New("Straße").Sum64(testSeed) != New("STRASSE").Sum64(testSeed) {
		t.Errorf("Sum64(%q) != Sum64(%q)", "Straße", "STRASSE")
	}
	if got := New("Hello World").Unwrap(); got != "Hello World" {
		t.Errorf("Unwrap() = %q; want: %q", got, "Hello World")
	}
	if got := New("\u0130stanbul").Unwrap(); got != "\u0130stanbul" {
		t.Errorf("Unwrap() = %q; want: %q", got, "\u0130stanbul")
	}
}

func TestZeroValue(t *testing.T) {
	var u UniCase[string]
	if !u.IsASCII() {
		t.Error("zero value must be ASCII")
	}
	if !u.Equal(New("")) || u.Unwrap() != "" || u.Key() != "" {
		t.Errorf("zero value must be the empty string: %q", u)
	}
	if u.Sum64(testSeed) != New("").Sum64(testSeed) {
		t.Error("zero value hash differs from the empty string")
	}
}

func TestForcedASCII(t *testing.T) {
	u := ASCII("Hello")
	if !u.IsASCII() || !u.Equal(New("hello")) {
		t.Errorf("ASCII(%q) must equal %q", "Hello", "hello")
	}

	// Non-ASCII text is never put on the ASCII path, otherwise equality
	// would not be transitive and equal values could hash differently.
	tests := []struct {
		upper, lower string
	}{
		{"\u00c9", "\u00e9"},
		{"STRA\u00dfE", "strasse"},
		{"\u212a", "k"}, // Kelvin
		{"\u0130", "i\u0307"},
	}
	for _, tt := range tests {
		a := ASCII(tt.upper)
		b := New(tt.lower)
		c := ASCII(tt.lower)
		if a.IsASCII() {
			t.Errorf("ASCII(%q).IsASCII() = true", tt.upper)
		}
		if !a.Equal(b) || !b.Equal(c) || !a.Equal(c) {
			t.Errorf("ASCII(%q), New(%q), ASCII(%q) must all be equal", tt.upper, tt.lower, tt.lower)
		}
		if a.Sum64(testSeed) != b.Sum64(testSeed) || a.Sum64(testSeed) != c.Sum64(testSeed) {
			t.Errorf("Sum64(ASCII(%q)) != Sum64(New(%q))", tt.upper, tt.lower)
		}
		if a.Key() != b.Key() || a.Key() != c.Key() {
			t.Errorf("Key(ASCII(%q)) = %q; Key(New(%q)) = %q", tt.upper, a.Key(), tt.lower, b.Key())
		}
		if a.Unwrap() != tt.upper {
			t.Errorf("Unwrap() = %q; want: %q", a.Unwrap(), tt.upper)
		}
	}
}

func TestBytesContainer(t *testing.T) {
	a := New([]byte("Straße"))
	b := New([]byte("STRASSE"))
	if !a.Equal(b) {
		t.Errorf("Equal([]byte(%q), []byte(%q)) = false", a, b)
	}
	if a.Compare(b) != 0 {
		t.Errorf("Compare([]byte(%q), []byte(%q)) = %d", a, b, a.Compare(b))
	}
	if a.Sum64(testSeed) != b.Sum64(testSeed) {
		t.Errorf("Sum64([]byte(%q)) != Sum64([]byte(%q))", a, b)
	}
}

func TestKeyMap(t *testing.T) {
	m := make(map[string]string)
	for _, s := range []string{"Content-Type", "Straße", "\u0130"} {
		m[New(s).Key()] = s
	}
	for _, s := range []string{"content-type", "STRASSE", "i\u0307"} {
		if _, ok := m[New(s).Key()]; !ok {
			t.Errorf("m[Key(%q)] not found", s)
		}
	}
}

func TestConcurrentFold(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if !Eq("Straße", "STRASSE") {
					t.Error(`Eq("Straße", "STRASSE") = false`)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestHashWriter(t *testing.T) {
	// Hash must be independent of how the bytes were written.
	var h1, h2 maphash.Hash
	h1.SetSeed(testSeed)
	h2.SetSeed(testSeed)
	New("HELLO").Hash(&h1)
	h2.WriteString("hello")
	if h1.Sum64() != h2.Sum64() {
		t.Error("Hash(HELLO) != maphash(hello)")
	}
}

func BenchmarkEqual(b *testing.B) {
	b.Run("ASCII", func(b *testing.B) {
		s1 := New(benchmarkString)
		s2 := New(strings.ToUpper(benchmarkString))
		for i := 0; i < b.N; i++ {
			s1.Equal(s2)
		}
	})
	b.Run("Unicode", func(b *testing.B) {
		s1 := New("some_text=some☺value")
		s2 := New("SOME_TEXT=SOME☺VALUE")
		for i := 0; i < b.N; i++ {
			s1.Equal(s2)
		}
	})
}

func BenchmarkNew(b *testing.B) {
	s := strings.Repeat(benchmarkString, 8)
	for i := 0; i < b.N; i++ {
		New(s)
	}
}
