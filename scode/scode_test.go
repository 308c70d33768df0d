// Copyright (c) 2025 The SurveyHub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scode

import (
	"errors"
	"testing"
)

func TestGenerateShape(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code := Generate()
		if len(code) != 10 {
			t.Fatalf("Generate() length = %d, want 10 (code %q)", len(code), code)
		}
		if !ValidateFormat(code) {
			t.Fatalf("Generate() produced invalid code %q", code)
		}
		for j := 0; j < 2; j++ {
			if code[j] < '0' || code[j] > '9' {
				t.Fatalf("code %q: position %d is not a digit", code, j)
			}
		}
		for j := 7; j < 10; j++ {
			if code[j] < '0' || code[j] > '9' {
				t.Fatalf("code %q: position %d is not a digit", code, j)
			}
		}
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{"valid mixed case", "07kQz3P941", true},
		{"valid all digits middle", "0712345941", true},
		{"valid uppercase middle", "99ABCDE000", true},
		{"empty", "", false},
		{"too short", "07kQz394", false},
		{"too long", "07kQz3P9411", false},
		{"letters in leading digits", "a7kQz3P941", false},
		{"letters in trailing digits", "07kQz3P9x1", false},
		{"symbol in middle", "07kQ-3P941", false},
		{"whitespace", "07kQz 3941", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateFormat(tt.code); got != tt.want {
				t.Errorf("ValidateFormat(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestAllocateDistinct(t *testing.T) {
	// A store that remembers everything handed out must yield pairwise
	// distinct codes.
	seen := map[string]bool{}
	exists := func(code string) (bool, error) { return seen[code], nil }

	for i := 0; i < 500; i++ {
		code, err := Allocate(exists, DefaultMaxAttempts)
		if err != nil {
			t.Fatalf("Allocate() error = %v", err)
		}
		if seen[code] {
			t.Fatalf("Allocate() returned duplicate code %q", code)
		}
		if !ValidateFormat(code) {
			t.Fatalf("Allocate() returned malformed code %q", code)
		}
		seen[code] = true
	}
}

func TestAllocateExhausted(t *testing.T) {
	calls := 0
	alwaysTaken := func(code string) (bool, error) {
		calls++
		return true, nil
	}

	code, err := Allocate(alwaysTaken, 5)
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("Allocate() error = %v, want ErrExhausted", err)
	}
	if code != "" {
		t.Errorf("Allocate() code = %q, want empty on exhaustion", code)
	}
	if calls != 5 {
		t.Errorf("existence check called %d times, want exactly 5", calls)
	}
}

func TestAllocateToleratesTransientErrors(t *testing.T) {
	// Checks fail on attempts 1-3, report free on attempt 4. The transient
	// errors must not surface and must not be mistaken for "free".
	calls := 0
	flaky := func(code string) (bool, error) {
		calls++
		if calls <= 3 {
			return false, errors.New("store unavailable")
		}
		return false, nil
	}

	code, err := Allocate(flaky, 10)
	if err != nil {
		t.Fatalf("Allocate() error = %v, want nil", err)
	}
	if calls != 4 {
		t.Errorf("existence check called %d times, want 4", calls)
	}
	if !ValidateFormat(code) {
		t.Errorf("Allocate() returned malformed code %q", code)
	}
}

func TestAllocateFirstFit(t *testing.T) {
	calls := 0
	free := func(code string) (bool, error) {
		calls++
		return false, nil
	}

	if _, err := Allocate(free, DefaultMaxAttempts); err != nil {
		t.Fatalf("Allocate() error = %v", err)
	}
	if calls != 1 {
		t.Errorf("existence check called %d times, want 1 (first-fit)", calls)
	}
}
