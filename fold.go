package unicase

import (
	"sync"

	"golang.org/x/text/cases"
)

// Text is the set of containers the case-insensitive wrappers accept.
type Text interface {
	~string | ~[]byte
}

func clamp(n int) int {
	if n < 0 {
		return -1
	}
	if n > 0 {
		return 1
	}
	return 0
}

func isUpper(c byte) bool { return 'A' <= c && c <= 'Z' }

var _lower = [256]byte{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20,
	21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, ' ', '!', '"', '#', '$', '%',
	'&', '\'', '(', ')', '*', '+', ',', '-', '.', '/', '0', '1', '2', '3', '4',
	'5', '6', '7', '8', '9', ':', ';', '<', '=', '>', '?', '@', 'a', 'b', 'c',
	'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r',
	's', 't', 'u', 'v', 'w', 'x', 'y', 'z', '[', '\\', ']', '^', '_', '`', 'a',
	'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p',
	'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z', '{', '|', '}', '~', 127,
	128, 129, 130, 131, 132, 133, 134, 135, 136, 137, 138, 139, 140, 141, 142,
	143, 144, 145, 146, 147, 148, 149, 150, 151, 152, 153, 154, 155, 156, 157,
	158, 159, 160, 161, 162, 163, 164, 165, 166, 167, 168, 169, 170, 171, 172,
	173, 174, 175, 176, 177, 178, 179, 180, 181, 182, 183, 184, 185, 186, 187,
	188, 189, 190, 191, 192, 193, 194, 195, 196, 197, 198, 199, 200, 201, 202,
	203, 204, 205, 206, 207, 208, 209, 210, 211, 212, 213, 214, 215, 216, 217,
	218, 219, 220, 221, 222, 223, 224, 225, 226, 227, 228, 229, 230, 231, 232,
	233, 234, 235, 236, 237, 238, 239, 240, 241, 242, 243, 244, 245, 246, 247,
	248, 249, 250, 251, 252, 253, 254, 255,
}

func equalASCII[T Text](s, t T) bool {
	if len(s) != len(t) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if _lower[s[i]] != _lower[t[i]] {
			return false
		}
	}
	return true
}

func compareASCII[T Text](s, t T) int {
	for i := 0; i < len(s) && i < len(t); i++ {
		sr := _lower[s[i]]
		tr := _lower[t[i]]
		if sr != tr {
			return clamp(int(sr) - int(tr))
		}
	}
	return clamp(len(s) - len(t))
}

// foldASCII returns s with every ASCII upper case letter mapped to lower
// case. s is returned as is if there is nothing to fold.
func foldASCII[T Text](s T) string {
	i := 0
	for ; i < len(s); i++ {
		if isUpper(s[i]) {
			break
		}
	}
	if i == len(s) {
		return string(s)
	}
	b := make([]byte, len(s))
	copy(b, s)
	for ; i < len(b); i++ {
		b[i] = _lower[b[i]]
	}
	return string(b)
}

// A cases.Caser is stateful and must not be shared between goroutines.
var folders = sync.Pool{
	New: func() any {
		c := cases.Fold()
		return &c
	},
}

// foldUnicode applies full Unicode case folding (CaseFolding.txt status C
// and F) to s. The result is identical to foldASCII when s is ASCII.
func foldUnicode(s string) string {
	c := folders.Get().(*cases.Caser)
	f := c.String(s)
	folders.Put(c)
	return f
}
