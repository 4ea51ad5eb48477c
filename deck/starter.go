// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package deck

import (
	"strings"

	"github.com/danielhkuo/founderos/models"
)

// StarterBrief carries the wizard fields used to pre-populate a draft deck
// without calling the AI collaborator. Optional fields may come from a
// linked idea or MVP project.
type StarterBrief struct {
	Title            string
	Description      string
	ProblemStatement string
	SolutionApproach string
	TargetMarket     string
	BusinessModel    string
	TeamInfo         string
	TractionMetrics  string
	FundingGoal      string
	Features         []string
}

// StarterSlides builds the standard eight-slide investor narrative from a
// brief, filling placeholders where the brief is silent. Purely
// deterministic: same brief, same slides.
func StarterSlides(b StarterBrief) []models.Slide {
	problem := b.ProblemStatement
	if problem == "" {
		problem = "Market problem description"
	}
	solution := b.SolutionApproach
	if solution == "" {
		solution = b.Description
	}
	features := b.Features
	if len(features) == 0 {
		features = []string{"Key feature 1", "Key feature 2", "Key feature 3"}
	}

	return []models.Slide{
		{
			Title: "Title Slide",
			Content: models.Content{
				"title":     b.Title,
				"subtitle":  b.Description,
				"presenter": "Founder & CEO",
			},
		},
		{
			Title: "Problem",
			Content: models.Content{
				"title":       "The Problem",
				"description": problem,
				"statistics": []string{
					"85% of target market experiences this issue",
					"Current solutions are inadequate",
				},
			},
		},
		{
			Title: "Solution",
			Content: models.Content{
				"title":       "Our Solution",
				"description": solution,
				"features":    features,
			},
		},
		{
			Title: "Market Opportunity",
			Content: models.Content{
				"title":         "Market Opportunity",
				"market_size":   "$2.5B TAM",
				"target_market": b.TargetMarket,
				"growth_rate":   "15% CAGR",
			},
		},
		{
			Title: "Business Model",
			Content: models.Content{
				"title":       "Business Model",
				"description": b.BusinessModel,
				"revenue_streams": []string{
					"Primary revenue stream",
					"Secondary revenue stream",
				},
			},
		},
		{
			Title: "Traction",
			Content: models.Content{
				"title":   "Traction & Metrics",
				"metrics": splitLines(b.TractionMetrics),
				"achievements": []string{
					"Key milestone 1",
					"Key milestone 2",
				},
			},
		},
		{
			Title: "Team",
			Content: models.Content{
				"title":       "Our Team",
				"description": b.TeamInfo,
				"advisors": []string{
					"Industry expert",
					"Technical advisor",
				},
			},
		},
		{
			Title: "Funding",
			Content: models.Content{
				"title":  "Funding Request",
				"amount": b.FundingGoal,
				"use_of_funds": []string{
					"Product development 40%",
					"Marketing 30%",
					"Team expansion 20%",
					"Operations 10%",
				},
			},
		},
	}
}

// splitLines breaks a textarea-style value into its non-empty lines.
func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
