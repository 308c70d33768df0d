// Copyright (c) 2025 The SurveyHub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scode generates and allocates shareable survey codes.

# Code Shape

A code is 10 ASCII characters: 2 decimal digits, 5 alphanumeric characters
(A-Z, a-z, 0-9), then 3 decimal digits:

	code := scode.Generate()          // e.g. "07kQz3P941"
	ok := scode.ValidateFormat(code)  // true

# Allocation

Allocate pairs the generator with an existence check against the store and
returns the first candidate not already taken:

	code, err := scode.Allocate(func(c string) (bool, error) {
		var id string
		err := db.QueryRow("SELECT id FROM surveys WHERE code = $1", c).Scan(&id)
		if err == sql.ErrNoRows {
			return false, nil
		}
		return err == nil, err
	}, scode.DefaultMaxAttempts)

Transient store errors during the check are swallowed and the loop moves on
to the next candidate; only ErrExhausted is ever returned. Exclusivity is
ultimately enforced by the UNIQUE constraint on surveys.code, not here.
*/
package scode
