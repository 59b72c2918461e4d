//go:build !cgo
// +build !cgo

package cstr

// Enabled reports whether the libc functions are available.
const Enabled = false

// Strcasecmp panics since cgo is not enabled.
func Strcasecmp(s, t string) int {
	panic("cstr: cgo is not enabled")
}
