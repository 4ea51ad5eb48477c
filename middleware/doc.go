// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package middleware provides HTTP middleware and response helpers.
//
// WithLogging logs each request with a generated request ID, WithAuth
// resolves the X-Session-Token header to an authenticated user, and CORS
// handles cross-origin requests from the frontend. JSONResponse,
// ErrorResponse, and ParseJSONBody are shared helpers used by all handlers.
package middleware
