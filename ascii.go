package unicase

import (
	"hash/maphash"

	"github.com/charlievieth/unicase/internal/bytealg"
)

// Ascii wraps text that is compared, ordered and hashed ignoring ASCII case.
//
// Only the bytes 'A'-'Z' are folded (to 'a'-'z'). Non-ASCII bytes are
// compared as is, so Ascii should only hold ASCII text; use UniCase for
// anything else. The wrapped text is never modified.
type Ascii[T Text] struct {
	s T
}

// NewAscii returns s wrapped in an Ascii. It does not check that s is ASCII.
func NewAscii[T Text](s T) Ascii[T] {
	return Ascii[T]{s: s}
}

// Unwrap returns the original text.
func (a Ascii[T]) Unwrap() T { return a.s }

// String returns the original text as a string.
func (a Ascii[T]) String() string { return string(a.s) }

// Len returns the length of the original text in bytes.
func (a Ascii[T]) Len() int { return len(a.s) }

// IsASCII reports whether the wrapped text contains only ASCII bytes.
func (a Ascii[T]) IsASCII() bool { return indexNonASCII(a.s) == -1 }

// Equal reports whether a and b are equal ignoring ASCII case.
func (a Ascii[T]) Equal(b Ascii[T]) bool {
	return equalASCII(a.s, b.s)
}

// Compare returns an integer comparing a and b lexicographically ignoring
// ASCII case. The result is 0 if a == b, -1 if a < b, and +1 if a > b.
func (a Ascii[T]) Compare(b Ascii[T]) int {
	return compareASCII(a.s, b.s)
}

// Hash writes the case folded text of a to h.
func (a Ascii[T]) Hash(h *maphash.Hash) {
	var buf [64]byte
	n := 0
	for i := 0; i < len(a.s); i++ {
		buf[n] = _lower[a.s[i]]
		if n++; n == len(buf) {
			h.Write(buf[:])
			n = 0
		}
	}
	h.Write(buf[:n])
}

// Sum64 returns the hash of a for seed.
func (a Ascii[T]) Sum64(seed maphash.Seed) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	a.Hash(&h)
	return h.Sum64()
}

// Key returns the case folded text of a. Two values are Equal if and only if
// their keys are equal, which makes Key suitable for use as a map key.
func (a Ascii[T]) Key() string {
	return foldASCII(a.s)
}

func indexNonASCII[T Text](s T) int {
	switch v := any(s).(type) {
	case string:
		return bytealg.IndexNonASCII(v)
	case []byte:
		return bytealg.IndexByteNonASCII(v)
	}
	// Named string or byte slice types.
	return bytealg.IndexNonASCII(string(s))
}
