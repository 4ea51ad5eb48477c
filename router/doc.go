// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package router wires the HTTP routes to their handlers. All routes except
// health, root, register, and login require a valid session token.
package router
