package report

import (
	"testing"

	"github.com/hocs-app/hocs/internal/opportunity"
	"github.com/hocs-app/hocs/internal/property"
)

func sampleOpportunities() []opportunity.SavingsOpportunity {
	e := opportunity.NewEngine()
	return e.Generate(property.Attributes{
		Address:          "123 Main St, Pasadena, CA 91101",
		YearBuilt:        1975,
		UtilityProvider:  "Pasadena Water & Power",
		SolarFeasibility: 85,
	})
}

func TestClassifyAlwaysFiveTiers(t *testing.T) {
	for _, opps := range [][]opportunity.SavingsOpportunity{nil, sampleOpportunities()} {
		groups := Classify(opps)
		if len(groups) != 5 {
			t.Fatalf("got %d tiers, want 5", len(groups))
		}
		for i, g := range groups {
			if g.Tier != i+1 {
				t.Fatalf("tier %d at index %d", g.Tier, i)
			}
			if g.Opportunities == nil {
				t.Fatalf("tier %d has nil opportunities slice", g.Tier)
			}
			if g.Title == "" || g.Color == "" {
				t.Fatalf("tier %d missing title or color: %+v", g.Tier, g)
			}
		}
	}
}

func TestClassifyPartition(t *testing.T) {
	opps := sampleOpportunities()
	groups := Classify(opps)

	seen := map[string]int{}
	total := 0
	for _, g := range groups {
		for _, o := range g.Opportunities {
			seen[o.ID]++
			total++
		}
	}
	if total != len(opps) {
		t.Fatalf("classified %d opportunities, want %d", total, len(opps))
	}
	for id, n := range seen {
		if n != 1 {
			t.Fatalf("%s appears %d times", id, n)
		}
	}
}

func TestClassifyTierAssignments(t *testing.T) {
	groups := Classify(sampleOpportunities())

	want := map[int][]string{
		1: {},
		2: {"energy-audit", "water-kit", "weatherization"},
		3: {"led-lighting", "power-strips"},
		4: {"smart-thermostat", "turf-removal", "attic-insulation", "heat-pump-water-heater"},
		5: {"solar-installation", "window-replacement"},
	}
	for _, g := range groups {
		ids := map[string]bool{}
		for _, o := range g.Opportunities {
			ids[o.ID] = true
		}
		if len(ids) != len(want[g.Tier]) {
			t.Fatalf("tier %d has %d opportunities, want %d (%v)", g.Tier, len(ids), len(want[g.Tier]), ids)
		}
		for _, id := range want[g.Tier] {
			if !ids[id] {
				t.Fatalf("tier %d missing %s", g.Tier, id)
			}
		}
	}
}

func TestClassifyCostBoundaries(t *testing.T) {
	cases := []struct {
		name string
		opp  opportunity.SavingsOpportunity
		tier int
	}{
		{"free audit", opportunity.SavingsOpportunity{Name: "Free Energy Audit"}, 2},
		{"free unnamed", opportunity.SavingsOpportunity{Name: "Something Free"}, 2},
		{"led at 200", opportunity.SavingsOpportunity{Name: "LED Swap", UpfrontCost: opportunity.UpfrontCost{Max: 200}}, 3},
		{"non-kit at 200", opportunity.SavingsOpportunity{Name: "Duct Sealing", UpfrontCost: opportunity.UpfrontCost{Max: 200}}, 4},
		{"mid at 201", opportunity.SavingsOpportunity{Name: "LED Swap", UpfrontCost: opportunity.UpfrontCost{Max: 201}}, 4},
		{"upper mid at 3000", opportunity.SavingsOpportunity{Name: "Upgrade", UpfrontCost: opportunity.UpfrontCost{Max: 3000}}, 4},
		{"major at 3001", opportunity.SavingsOpportunity{Name: "Upgrade", UpfrontCost: opportunity.UpfrontCost{Max: 3001}}, 5},
	}
	for _, tc := range cases {
		groups := Classify([]opportunity.SavingsOpportunity{tc.opp})
		if n := len(groups[tc.tier-1].Opportunities); n != 1 {
			t.Errorf("%s: wanted tier %d, distribution %v", tc.name, tc.tier, tierCounts(groups))
		}
	}
}

func tierCounts(groups []TierGroup) []int {
	counts := make([]int, len(groups))
	for i, g := range groups {
		counts[i] = len(g.Opportunities)
	}
	return counts
}

func TestTotalAnnualSavings(t *testing.T) {
	opps := []opportunity.SavingsOpportunity{
		{AnnualSavings: 300},
		{AnnualSavings: 120.5},
		{AnnualSavings: 0},
	}
	if got := TotalAnnualSavings(opps); got != 420.5 {
		t.Fatalf("total = %v, want 420.5", got)
	}
	if got := TotalAnnualSavings(nil); got != 0 {
		t.Fatalf("empty total = %v, want 0", got)
	}
}
