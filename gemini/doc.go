// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package gemini is the AI generation collaborator. It wraps the Gemini API
(google.golang.org/genai) behind the Generator interface consumed by the
HTTP handlers.

# Calls

Three generation calls, each a single request/response with a JSON response
schema so replies decode directly into models types:

	gen, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	v, err := gen.ValidateIdea(ctx, brief)      // models.IdeaValidation
	p, err := gen.GenerateMVP(ctx, brief)       // models.MVPPlan
	d, err := gen.GeneratePitchDeck(ctx, brief) // models.PitchContent

# Failure Semantics

Every failure - transport, empty reply, malformed payload, out-of-range
score, deck without slides - wraps ErrGenerationFailed. Callers surface the
error to the user and store nothing; no fallback content is substituted.

# Testing

Handlers depend on the Generator interface, not on *Client, so tests inject
a fake. The Parse* functions are exported separately because payload
decoding is the part worth testing without network access.
*/
package gemini
