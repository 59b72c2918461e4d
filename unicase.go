package unicase

import (
	"hash/maphash"
	"strconv"
	"strings"
)

// encoding records how a UniCase was classified at construction.
type encoding uint8

const (
	asciiEncoding   encoding = iota // all bytes < 0x80
	unicodeEncoding                 // at least one byte >= 0x80
)

func (e encoding) String() string {
	switch e {
	case asciiEncoding:
		return "ascii"
	case unicodeEncoding:
		return "unicode"
	}
	return "encoding(" + strconv.Itoa(int(e)) + ")"
}

// UniCase wraps text that is compared, ordered and hashed using Unicode
// case folding.
//
// Text that is entirely ASCII is compared with the same fast path as Ascii.
// Any other text is compared using full Unicode case folding, so 'İ'
// (U+0130) equals "i̇" and 'ß' equals "ss". Folding is locale
// independent. The wrapped text is never modified.
//
// The zero value is the empty string.
type UniCase[T Text] struct {
	enc     encoding
	ascii   Ascii[T] // enc == asciiEncoding
	unicode T        // enc == unicodeEncoding
}

// New returns s wrapped in a UniCase. The ASCII or Unicode comparison path
// is selected once, here, by scanning s for non-ASCII bytes.
func New[T Text](s T) UniCase[T] {
	return classify(s)
}

// Unicode returns s wrapped in a UniCase that always uses Unicode case
// folding, even if s is ASCII.
func Unicode[T Text](s T) UniCase[T] {
	return UniCase[T]{enc: unicodeEncoding, unicode: s}
}

// ASCII returns s wrapped in a UniCase that uses the ASCII fast path. If s
// contains non-ASCII bytes it is classified like New, since the ASCII path
// cannot fold them consistently with the Unicode path.
func ASCII[T Text](s T) UniCase[T] {
	if indexNonASCII(s) != -1 {
		return Unicode(s)
	}
	return UniCase[T]{enc: asciiEncoding, ascii: NewAscii(s)}
}

func classify[T Text](s T) UniCase[T] {
	if indexNonASCII(s) == -1 {
		return UniCase[T]{enc: asciiEncoding, ascii: NewAscii(s)}
	}
	return Unicode(s)
}

// Unwrap returns the original text.
func (u UniCase[T]) Unwrap() T {
	switch u.enc {
	case asciiEncoding:
		return u.ascii.Unwrap()
	case unicodeEncoding:
		return u.unicode
	}
	panic("unicase: invalid encoding: " + u.enc.String())
}

// String returns the original text as a string.
func (u UniCase[T]) String() string { return string(u.Unwrap()) }

// Len returns the length of the original text in bytes.
func (u UniCase[T]) Len() int { return len(u.Unwrap()) }

// IsASCII reports whether u was classified as (or declared) ASCII.
func (u UniCase[T]) IsASCII() bool { return u.enc == asciiEncoding }

// Equal reports whether u and v are equal under Unicode case folding.
func (u UniCase[T]) Equal(v UniCase[T]) bool {
	if u.enc == asciiEncoding && v.enc == asciiEncoding {
		return u.ascii.Equal(v.ascii)
	}
	s, t := string(u.Unwrap()), string(v.Unwrap())
	if s == t {
		return true
	}
	return foldUnicode(s) == foldUnicode(t)
}

// Compare returns an integer comparing the case folded text of u and v
// lexicographically by code point. The result is 0 if u == v, -1 if u < v,
// and +1 if u > v.
func (u UniCase[T]) Compare(v UniCase[T]) int {
	if u.enc == asciiEncoding && v.enc == asciiEncoding {
		return u.ascii.Compare(v.ascii)
	}
	s, t := string(u.Unwrap()), string(v.Unwrap())
	if s == t {
		return 0
	}
	// Valid UTF-8 sorts by code point when compared bytewise.
	return strings.Compare(foldUnicode(s), foldUnicode(t))
}

// Hash writes the case folded text of u to h. Values that are Equal write
// the same bytes regardless of how they were classified.
func (u UniCase[T]) Hash(h *maphash.Hash) {
	switch u.enc {
	case asciiEncoding:
		u.ascii.Hash(h)
	case unicodeEncoding:
		h.WriteString(foldUnicode(string(u.unicode)))
	}
}

// Sum64 returns the hash of u for seed.
func (u UniCase[T]) Sum64(seed maphash.Seed) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	u.Hash(&h)
	return h.Sum64()
}

// Key returns the case folded text of u. Two values are Equal if and only if
// their keys are equal, which makes Key suitable for use as a map key.
func (u UniCase[T]) Key() string {
	switch u.enc {
	case asciiEncoding:
		return u.ascii.Key()
	case unicodeEncoding:
		return foldUnicode(string(u.unicode))
	}
	panic("unicase: invalid encoding: " + u.enc.String())
}

// Eq reports whether s and t are equal under Unicode case folding.
func Eq(s, t string) bool {
	return New(s).Equal(New(t))
}

// Compare compares s and t under Unicode case folding. The result is 0 if
// s == t, -1 if s < t, and +1 if s > t.
func Compare(s, t string) int {
	return New(s).Compare(New(t))
}
