// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterRequest / LoginRequest: email, password
  - CreateIdeaRequest: title, description, problem_statement,
    solution_approach, target_market
  - CreateMVPRequest: name, description, features, tech_stack,
    custom_requirements, optional idea_id
  - CreatePitchDeckRequest: pitch brief fields plus optional idea_id/mvp_id
  - UpdateSlidesRequest: full ordered slide list for an editor save

# Response Types

Types for JSON responses:

  - AuthResponse: user_id, token
  - CreateIdeaResponse: idea, validation_score, validation_data
  - CreateMVPResponse: project
  - CreatePitchDeckResponse: pitch_deck
  - UpdateSlidesResponse: slide_count
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - StartupIdea: idea fields plus AI validation results
  - MVPProject: MVP brief plus generated plan artifacts
  - PitchDeck: deck metadata plus the ordered Slide sequence
  - Slide: dispatch-key title plus an open Content mapping

# Slide Content

Content is an open map[string]any. Different slide titles carry different
shapes (a "Market Opportunity" slide may have tam/sam/som, a "Problem" slide
pain_points). Nothing is required; consumers must tolerate any missing field.

# Generation Payloads

Structured results returned by the AI collaborator:

  - IdeaValidation: score, market size, competition, indicator lists
  - MVPPlan: wireframes, code structure, timeline, cost, key features
  - PitchContent: ordered slides plus summary material

# Constants

Idea status values:

	IdeaStatusValidating = "validating"
	IdeaStatusValidated  = "validated"

Artifact status values:

	StatusDraft     = "draft"
	StatusCompleted = "completed"

Pitch types:

	PitchTypeInvestor = "investor"
	PitchTypeCustomer = "customer"
	PitchTypeDemoDay  = "demo_day"
*/
package models
