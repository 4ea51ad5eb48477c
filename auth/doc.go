// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides credential and token utilities.

# Passwords

Passwords are hashed with bcrypt at the default cost:

	hash, err := auth.HashPassword(password)
	err = auth.CheckPassword(hash, password)

CheckPassword returns ErrInvalidCredentials on mismatch so handlers can map
it to a 401 without leaking which part of the login failed.

# Session Tokens

Session tokens are random 24-byte (192-bit) secrets:

	token, err := auth.GenerateSessionToken()

Tokens are URL-safe base64 encoded. The raw token goes to the client in the
X-Session-Token header; the database stores only its HMAC:

	stored := auth.HashToken(token, salt)

Since the hash is deterministic, a request token is validated by hashing it
with the same salt and looking up the session row.

# ID Generation

Random hex IDs for database records:

	id, err := auth.GenerateID(16)  // 32 hex characters
*/
package auth
