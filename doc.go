// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package unicase provides string wrappers that compare, order and hash text
// case-insensitively without modifying it.
//
// [Ascii] folds only the ASCII letters 'A'-'Z'. [UniCase] checks once, when
// it is created, whether its text is ASCII: ASCII text uses the same fast
// path as [Ascii] and everything else uses full Unicode case folding (see
// [golang.org/x/text/cases.Fold]). Values that are equal under either path
// have the same [UniCase.Key] and hash.
//
// Both wrappers are generic over string and []byte containers and
// serialize as the original, unfolded text (JSON, YAML, text and
// database/sql). See the codec package for mapstructure and protobuf
// adapters.
package unicase

// BUG(cvieth): Text is not normalized before folding, so the precomposed
// "\u00e9" and the decomposed "e\u0301" are not equal.

//go:generate go run -tags gen gen.go -n 100000
