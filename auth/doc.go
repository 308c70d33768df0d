// Copyright (c) 2025 The SurveyHub Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides credential signing and password hashing.

# Tokens

Credentials are HS256 JWTs carrying the caller's identity, email, and role:

	tok, err := auth.SignToken(secret, userID, email, role, auth.TokenTTL)
	claims, err := auth.ParseToken(secret, tok)

The role claim is "admin" for administrators; any other value is an
ordinary user. Verification and claim extraction for incoming requests
happen in the middleware package.

# Passwords

Passwords are stored as bcrypt hashes:

	hash, err := auth.HashPassword(plaintext)
	ok := auth.CheckPassword(hash, plaintext)
*/
package auth
