package report

import (
	"strings"

	"github.com/hocs-app/hocs/internal/opportunity"
)

// TierGroup is one rung of the investment ladder. All five rungs are always
// present in a report; lower tiers may carry no opportunities.
type TierGroup struct {
	Tier          int                              `json:"tier"`
	Title         string                           `json:"title"`
	Description   string                           `json:"description"`
	Color         string                           `json:"color"`
	Opportunities []opportunity.SavingsOpportunity `json:"opportunities"`
}

var tierDefs = []TierGroup{
	{
		Tier:        1,
		Title:       "Instant Visibility (Near-Zero Cost)",
		Description: "Set up tracking and establish your baseline. You can't manage what you don't measure.",
		Color:       "green",
	},
	{
		Tier:        2,
		Title:       "Free In-Home Checks & Diagnostics",
		Description: "Get professional assessments and qualify for free upgrades at no cost.",
		Color:       "blue",
	},
	{
		Tier:        3,
		Title:       "Data-Driven Behavior & Low-Cost Controls",
		Description: "Use your baseline data to make smart, low-cost changes with immediate impact.",
		Color:       "yellow",
	},
	{
		Tier:        4,
		Title:       "Targeted Low/Medium-Cost Upgrades",
		Description: "Invest in upgrades that your data shows will have the best ROI.",
		Color:       "orange",
	},
	{
		Tier:        5,
		Title:       "Major Projects Informed by Data",
		Description: "After 3-6 months of tracking, consider major investments with proven payback.",
		Color:       "purple",
	},
}

// Classify distributes opportunities across the five tiers. Every opportunity
// lands in exactly one tier; Tier 1 holds guidance only and never receives
// opportunities from the engine.
func Classify(opps []opportunity.SavingsOpportunity) []TierGroup {
	groups := make([]TierGroup, len(tierDefs))
	for i, d := range tierDefs {
		groups[i] = d
		groups[i].Opportunities = []opportunity.SavingsOpportunity{}
	}

	for _, o := range opps {
		t := tierFor(o)
		groups[t-1].Opportunities = append(groups[t-1].Opportunities, o)
	}
	return groups
}

func tierFor(o opportunity.SavingsOpportunity) int {
	name := strings.ToLower(o.Name)
	max := o.UpfrontCost.Max

	switch {
	case max == 0 && (strings.Contains(name, "audit") || strings.Contains(name, "weatherization") || strings.Contains(name, "assistance")):
		return 2
	case max <= 200 && (strings.Contains(name, "water conservation kit") || strings.Contains(name, "led") || strings.Contains(name, "power strip")):
		return 3
	case max > 200 && max <= 3000:
		return 4
	case max > 3000:
		return 5
	case max == 0:
		return 2
	default:
		return 4
	}
}

// TotalAnnualSavings sums the headline savings across all opportunities.
func TotalAnnualSavings(opps []opportunity.SavingsOpportunity) float64 {
	var total float64
	for _, o := range opps {
		total += o.AnnualSavings
	}
	return total
}
