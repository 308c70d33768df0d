// Copyright (c) 2025 The SurveyHub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scode

import (
	"errors"
	"math/rand"
	"regexp"
)

// DefaultMaxAttempts bounds the random search in Allocate. With roughly
// 2.2e10 possible codes the bound is a safety valve against a pathological
// keyspace, not an expected path.
const DefaultMaxAttempts = 10000

// ErrExhausted is returned by Allocate when no free code was found within
// the attempt bound.
var ErrExhausted = errors.New("unable to allocate unique survey code")

const (
	digits   = "0123456789"
	alphanum = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

var codePattern = regexp.MustCompile(`^\d{2}[A-Za-z0-9]{5}\d{3}$`)

// Generate produces a 10-character survey code: 2 decimal digits, 5
// alphanumeric characters, 3 decimal digits. Each character is drawn
// uniformly from its alphabet. Codes are shareable conveniences, not
// secrets, so math/rand is sufficient.
func Generate() string {
	buf := make([]byte, 0, 10)
	for i := 0; i < 2; i++ {
		buf = append(buf, digits[rand.Intn(len(digits))])
	}
	for i := 0; i < 5; i++ {
		buf = append(buf, alphanum[rand.Intn(len(alphanum))])
	}
	for i := 0; i < 3; i++ {
		buf = append(buf, digits[rand.Intn(len(digits))])
	}
	return string(buf)
}

// ValidateFormat reports whether s is a well-formed survey code. The length
// check is redundant with the pattern but kept as an independent guard.
func ValidateFormat(s string) bool {
	if len(s) < 10 {
		return false
	}
	return codePattern.MatchString(s)
}

// ExistsFunc reports whether a survey with the given code already exists.
// A non-nil error means the check was inconclusive, not that the code is
// free.
type ExistsFunc func(code string) (bool, error)

// Allocate returns a freshly generated code believed unused at check time.
// Each attempt generates a candidate and asks exists; a taken code or an
// inconclusive check moves on to the next candidate. Fails with
// ErrExhausted after maxAttempts tries.
//
// Allocate does not guard against a concurrent allocator picking the same
// candidate between the check and the eventual insert. The store's UNIQUE
// constraint is the final arbiter: callers must treat an insert-time
// uniqueness violation as a failed allocation and retry with a fresh
// candidate.
func Allocate(exists ExistsFunc, maxAttempts int) (string, error) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	for i := 0; i < maxAttempts; i++ {
		code := Generate()
		taken, err := exists(code)
		if err != nil {
			// Transient store error: inconclusive, keep trying.
			continue
		}
		if !taken {
			return code, nil
		}
	}
	return "", ErrExhausted
}
