//go:build cgo
// +build cgo

// Package cstr exposes libc's strcasecmp as a reference implementation of
// ASCII case-insensitive ordering for tests.
package cstr

/*
#include <stdlib.h>
#include <strings.h>
*/
import "C"
import "unsafe"

// Enabled reports whether the libc functions are available.
const Enabled = true

func clamp(i int) int {
	if i < 0 {
		return -1
	}
	if i > 0 {
		return 1
	}
	return 0
}

// Strcasecmp compares s and t using strcasecmp(3) in the "C" locale. The
// strings must not contain NUL bytes.
func Strcasecmp(s, t string) int {
	cs := C.CString(s)
	ct := C.CString(t)
	ret := int(C.strcasecmp(cs, ct))
	C.free(unsafe.Pointer(cs))
	C.free(unsafe.Pointer(ct))
	return clamp(ret)
}
