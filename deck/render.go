// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package deck

import (
	"strconv"

	"github.com/danielhkuo/founderos/models"
)

// Kind selects the rendering template for a slide. The slide title is the
// dispatch key; unknown titles fall back to KindGeneric.
type Kind int

const (
	KindGeneric Kind = iota
	KindTitle
	KindProblem
	KindSolution
	KindMarket
	KindBusinessModel
	KindTraction
	KindTeam
	KindFunding
)

// KindOf maps a slide title to its rendering kind.
func KindOf(title string) Kind {
	switch title {
	case "Title Slide":
		return KindTitle
	case "Problem":
		return KindProblem
	case "Solution":
		return KindSolution
	case "Market Opportunity":
		return KindMarket
	case "Business Model":
		return KindBusinessModel
	case "Traction":
		return KindTraction
	case "Team":
		return KindTeam
	case "Funding", "Funding Request":
		return KindFunding
	}
	return KindGeneric
}

// Rendered is the typed view of one slide. Exactly one variant pointer is
// non-nil, matching Kind. Every variant field is optional: a missing content
// field renders as the zero value and the view omits that element.
type Rendered struct {
	Kind    Kind
	Heading string

	Title    *TitleView
	Problem  *ProblemView
	Solution *SolutionView
	Market   *MarketView
	Business *BusinessModelView
	Traction *TractionView
	Team     *TeamView
	Funding  *FundingView
	Generic  *GenericView
}

type TitleView struct {
	Subtitle  string
	Presenter string
	Date      string
}

type ProblemView struct {
	Description      string
	PainPoints       []string
	Statistics       []string
	MarketValidation string
}

type SolutionView struct {
	Description string
	KeyBenefits []string
	Features    []string
}

type MarketView struct {
	TAM        string
	SAM        string
	SOM        string
	MarketSize string
	Target     string
	GrowthRate string
}

type BusinessModelView struct {
	Description    string
	RevenueStreams []string
}

type TractionView struct {
	Metrics      []string
	Achievements []string
}

type TeamView struct {
	Description string
	Advisors    []string
}

type FundingView struct {
	FundingGoal string
	UseOfFunds  []string
}

type GenericView struct {
	Description string
	Features    []string
}

// Render builds the typed view for one slide. The heading prefers the
// content title and falls back to the slide title.
func Render(s models.Slide) Rendered {
	c := s.Content
	r := Rendered{
		Kind:    KindOf(s.Title),
		Heading: firstStr(c, "title"),
	}
	if r.Heading == "" {
		r.Heading = s.Title
	}

	switch r.Kind {
	case KindTitle:
		r.Title = &TitleView{
			Subtitle:  firstStr(c, "subtitle"),
			Presenter: firstStr(c, "presenter"),
			Date:      firstStr(c, "date"),
		}
	case KindProblem:
		r.Problem = &ProblemView{
			Description:      firstStr(c, "description"),
			PainPoints:       strList(c, "pain_points"),
			Statistics:       strList(c, "statistics"),
			MarketValidation: firstStr(c, "market_validation"),
		}
	case KindSolution:
		r.Solution = &SolutionView{
			Description: firstStr(c, "description"),
			KeyBenefits: strList(c, "key_benefits"),
			Features:    strList(c, "features"),
		}
	case KindMarket:
		r.Market = &MarketView{
			TAM:        firstStr(c, "tam"),
			SAM:        firstStr(c, "sam"),
			SOM:        firstStr(c, "som"),
			MarketSize: firstStr(c, "market_size"),
			Target:     firstStr(c, "target_market"),
			GrowthRate: firstStr(c, "growth_rate"),
		}
	case KindBusinessModel:
		r.Business = &BusinessModelView{
			Description:    firstStr(c, "description"),
			RevenueStreams: strList(c, "revenue_streams"),
		}
	case KindTraction:
		r.Traction = &TractionView{
			Metrics:      strList(c, "metrics"),
			Achievements: strList(c, "achievements"),
		}
	case KindTeam:
		r.Team = &TeamView{
			Description: firstStr(c, "description"),
			Advisors:    strList(c, "advisors"),
		}
	case KindFunding:
		r.Funding = &FundingView{
			FundingGoal: firstStr(c, "funding_goal", "amount"),
			UseOfFunds:  strList(c, "use_of_funds"),
		}
	default:
		r.Generic = &GenericView{
			Description: firstStr(c, "description"),
			Features:    strList(c, "features"),
		}
	}
	return r
}

// firstStr returns the first present string-like value among keys.
// JSON numbers are formatted; anything else reads as absent.
func firstStr(c models.Content, keys ...string) string {
	for _, key := range keys {
		switch v := c[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case int:
			return strconv.Itoa(v)
		}
	}
	return ""
}

// strList reads a list of strings, tolerating the []any shape JSON decoding
// produces. Non-string elements are skipped.
func strList(c models.Content, key string) []string {
	switch v := c[key].(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []any:
		var out []string
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
