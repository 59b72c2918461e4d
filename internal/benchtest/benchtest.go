// Package benchtest is used for benchmarking unicase against the Go stdlib's
// strings package.
//
// The stdlib has no case-insensitive ordering or hashing so the closest
// equivalents are used: strings.EqualFold for equality and strings.ToLower
// followed by strings.Compare or maphash for ordering and hashing.
//
// It is not part of the unicase package since the comparisons are only a
// useful measure of the overhead of unicase relative to the stdlib.
package benchtest
