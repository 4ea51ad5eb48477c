// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package testutil provides shared helpers for handler and store tests: an
// in-memory database with the full schema, account and artifact fixtures, a
// canned generation fake, and request/response assertion helpers.
package testutil
