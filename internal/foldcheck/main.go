// foldcheck verifies that the Equal, Compare, Sum64 and Key methods of
// unicase agree with each other and with golang.org/x/text/cases for every
// cased rune and a configurable number of random strings.
//
// It is run by `go run -tags gen gen.go` and should be re-run whenever the
// folding code or the golang.org/x/text version changes.
package main

import (
	"flag"
	"fmt"
	"hash/maphash"
	"log"
	"os"
	"time"
	"unicode"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
	"golang.org/x/text/unicode/norm"

	"github.com/charlievieth/unicase"
	"github.com/charlievieth/unicase/internal/test"
)

func init() {
	log.SetPrefix("foldcheck: ")
	log.SetFlags(log.Lshortfile)
}

type checker struct {
	seed     maphash.Seed
	failures []string
	limit    int
}

func (c *checker) failf(format string, args ...any) {
	if len(c.failures) < c.limit {
		c.failures = append(c.failures, fmt.Sprintf(format, args...))
	}
}

// pair checks the consistency of s and t.
func (c *checker) pair(s, t string) {
	a, b := unicase.New(s), unicase.New(t)
	eq := a.Equal(b)
	if want := test.Fold(s) == test.Fold(t); eq != want {
		c.failf("Equal(%q, %q) = %t; want: %t", s, t, eq, want)
	}
	if cmp := a.Compare(b); (cmp == 0) != eq {
		c.failf("Compare(%q, %q) = %d; Equal: %t", s, t, cmp, eq)
	}
	if (a.Key() == b.Key()) != eq {
		c.failf("Key(%q) = %q; Key(%q) = %q; Equal: %t", s, a.Key(), t, b.Key(), eq)
	}
	if eq && a.Sum64(c.seed) != b.Sum64(c.seed) {
		c.failf("Equal(%q, %q) = true but Sum64 differs", s, t)
	}
	if u := unicase.Unicode(s); !u.Equal(a) || u.Sum64(c.seed) != a.Sum64(c.seed) {
		c.failf("Unicode(%q) is not equivalent to New(%q)", s, s)
	}
}

// asciiBytes checks that both fold paths agree on every ASCII byte.
func (c *checker) asciiBytes() {
	for i := 0; i < 0x80; i++ {
		s := string([]byte{byte(i)})
		a, u := unicase.ASCII(s), unicase.Unicode(s)
		if a.Key() != u.Key() {
			c.failf("ASCII(%q).Key() = %q; Unicode: %q", s, a.Key(), u.Key())
		}
		if a.Sum64(c.seed) != u.Sum64(c.seed) {
			c.failf("ASCII(%q).Sum64() != Unicode(%q).Sum64()", s, s)
		}
	}
}

// runes checks every cased rune against each member of its case orbit.
// Members of a SimpleFold orbit must be equal, which checks the folding
// against the unicode package rather than only against x/text.
func (c *checker) runes(bar *progressbar.ProgressBar) {
	orbits := test.OrbitsComparable()
	if !orbits {
		log.Printf("WARN: unicode %s and x/text %s differ: skipping orbit checks",
			unicode.Version, norm.Version)
	}
	for _, r := range test.CasedRunes() {
		s := string(r)
		c.pair(s, s)
		u := unicase.New(s)
		for _, o := range test.SimpleFoldOrbit(r)[1:] {
			c.pair(s, string(o))
			if orbits && !u.Equal(unicase.New(string(o))) {
				c.failf("Equal(%q, %q) = false; runes are SimpleFold equivalent", s, string(o))
			}
		}
		c.pair(s, "x"+s)
		bar.Add(1)
	}
}

// fullFolds checks the full case foldings listed in test.FoldTests.
func (c *checker) fullFolds() {
	for _, tt := range test.FoldTests {
		u := unicase.New(tt.In)
		if got := u.Key(); got != tt.Out {
			c.failf("Key(%q) = %q; want: %q", tt.In, got, tt.Out)
		}
		if !u.Equal(unicase.New(tt.Out)) {
			c.failf("Equal(%q, %q) = false", tt.In, tt.Out)
		}
		c.pair(tt.In, tt.Out)
	}
}

// random checks n random pairs, half of which only differ in case.
func (c *checker) random(g *test.Generator, n int, bar *progressbar.ProgressBar) {
	for i := 0; i < n; i++ {
		s := g.String(16)
		if i%2 == 0 {
			c.pair(s, g.Jumble(s))
		} else {
			c.pair(s, g.String(16))
		}
		bar.Add(1)
	}
}

// check runs all checks and returns the failures, at most limit of them.
func check(n int, seed int64, limit int, bar *progressbar.ProgressBar) []string {
	c := &checker{seed: maphash.MakeSeed(), limit: limit}
	c.asciiBytes()
	c.fullFolds()
	c.runes(bar)
	c.random(test.NewGenerator(seed), n, bar)
	return c.failures
}

func newProgressBar(n int) *progressbar.ProgressBar {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return progressbar.Default(int64(n))
	}
	return progressbar.DefaultSilent(int64(n))
}

func main() {
	num := flag.Int("n", 1_000_000, "number of random string pairs to check")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	maxFailures := flag.Int("max", 20, "maximum number of failures to report")
	flag.Parse()

	start := time.Now()
	bar := newProgressBar(len(test.CasedRunes()) + *num)
	failures := check(*num, *seed, *maxFailures, bar)
	bar.Finish()

	for _, f := range failures {
		log.Println(f)
	}
	if len(failures) > 0 {
		log.Fatalf("FAIL: seed: %d: %d failures", *seed, len(failures))
	}
	log.Printf("PASS: seed: %d: checked %d runes and %d pairs in %s",
		*seed, len(test.CasedRunes()), *num, time.Since(start).Round(time.Millisecond))
}
