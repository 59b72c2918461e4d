// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package bytealg contains the byte scanning routines used to classify text
// as ASCII or Unicode.
package bytealg

import "unicode/utf8"

// wordSize is the number of bytes OR'd together before testing the high bit.
const wordSize = 8

// IndexNonASCII returns the index of the first byte in s that is not ASCII
// (>= utf8.RuneSelf), or -1 if s is entirely ASCII.
func IndexNonASCII(s string) int {
	i := 0
	for ; i+wordSize <= len(s); i += wordSize {
		if (s[i]|s[i+1]|s[i+2]|s[i+3]|s[i+4]|s[i+5]|s[i+6]|s[i+7])&utf8.RuneSelf != 0 {
			break
		}
	}
	for ; i < len(s); i++ {
		if s[i]&utf8.RuneSelf != 0 {
			return i
		}
	}
	return -1
}

// IndexByteNonASCII is the []byte equivalent of IndexNonASCII.
func IndexByteNonASCII(b []byte) int {
	i := 0
	for ; i+wordSize <= len(b); i += wordSize {
		if (b[i]|b[i+1]|b[i+2]|b[i+3]|b[i+4]|b[i+5]|b[i+6]|b[i+7])&utf8.RuneSelf != 0 {
			break
		}
	}
	for ; i < len(b); i++ {
		if b[i]&utf8.RuneSelf != 0 {
			return i
		}
	}
	return -1
}
