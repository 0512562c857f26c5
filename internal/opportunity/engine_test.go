package opportunity

import (
	"reflect"
	"strings"
	"testing"

	"github.com/hocs-app/hocs/internal/property"
)

func baseAttributes() property.Attributes {
	return property.Attributes{
		Address:          "742 Evergreen Terrace, Pasadena, CA 91101",
		YearBuilt:        1995,
		SquareFeet:       1800,
		UtilityProvider:  "Pasadena Water & Power",
		SolarFeasibility: 55,
	}
}

func idsOf(opps []SavingsOpportunity) []string {
	ids := make([]string, 0, len(opps))
	for _, o := range opps {
		ids = append(ids, o.ID)
	}
	return ids
}

func TestGenerateDeterministic(t *testing.T) {
	e := NewEngine()
	p := baseAttributes()

	first := e.Generate(p)
	second := e.Generate(p)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("two runs over the same attributes produced different opportunities")
	}
}

func TestGenerateBaselineSet(t *testing.T) {
	e := NewEngine()
	got := idsOf(e.Generate(baseAttributes()))

	// 1995 build, 55 solar score: no attic, solar, or window add-ons.
	want := []string{
		"energy-audit",
		"water-kit",
		"led-lighting",
		"power-strips",
		"weatherization",
		"smart-thermostat",
		"turf-removal",
		"heat-pump-water-heater",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ids = %v, want %v", got, want)
	}
}

func TestGenerateAtticInsulationGate(t *testing.T) {
	e := NewEngine()

	p := baseAttributes()
	p.YearBuilt = 1979
	if !contains(idsOf(e.Generate(p)), "attic-insulation") {
		t.Fatal("1979 build should include attic insulation")
	}

	p.YearBuilt = 1980
	if contains(idsOf(e.Generate(p)), "attic-insulation") {
		t.Fatal("1980 build should not include attic insulation")
	}
}

func TestGenerateSolarGate(t *testing.T) {
	e := NewEngine()

	p := baseAttributes()
	p.SolarFeasibility = 70
	if contains(idsOf(e.Generate(p)), "solar-installation") {
		t.Fatal("score 70 should not include solar")
	}

	p.SolarFeasibility = 71
	opps := e.Generate(p)
	if !contains(idsOf(opps), "solar-installation") {
		t.Fatal("score 71 should include solar")
	}
	for _, o := range opps {
		if o.ID == "solar-installation" {
			if !strings.Contains(o.Methodology, "71") {
				t.Fatalf("solar methodology %q should mention the feasibility score", o.Methodology)
			}
			if o.Category != CategorySolar {
				t.Fatalf("solar category = %q", o.Category)
			}
		}
	}
}

func TestGenerateWindowGate(t *testing.T) {
	e := NewEngine()

	p := baseAttributes()
	p.YearBuilt = 1989
	ids := idsOf(e.Generate(p))
	if !contains(ids, "window-replacement") {
		t.Fatal("1989 build should include window replacement")
	}
	// Window replacement comes after heat pump, at the tail.
	if ids[len(ids)-1] != "window-replacement" {
		t.Fatalf("window replacement should be last, got %v", ids)
	}

	p.YearBuilt = 1990
	if contains(idsOf(e.Generate(p)), "window-replacement") {
		t.Fatal("1990 build should not include window replacement")
	}
}

func TestGenerateUnrecognizedUtilitySteps(t *testing.T) {
	e := NewEngine()

	p := baseAttributes()
	p.UtilityProvider = "Southern California Edison"
	audit := e.Generate(p)[0]
	if audit.ID != "energy-audit" {
		t.Fatalf("first opportunity = %q, want energy-audit", audit.ID)
	}
	if !strings.Contains(audit.NextSteps[0], "Southern California Edison") {
		t.Fatalf("unrecognized utility should be named in next steps, got %q", audit.NextSteps[0])
	}

	p.UtilityProvider = "Pasadena Water & Power"
	audit = e.Generate(p)[0]
	for _, s := range audit.NextSteps {
		if strings.Contains(s, "Pasadena Water & Power: (626)") {
			return
		}
	}
	t.Fatalf("recognized utility should get municipal contact steps, got %v", audit.NextSteps)
}

func TestGenerateFreeOpportunities(t *testing.T) {
	e := NewEngine()

	for _, o := range e.Generate(baseAttributes()) {
		if o.UpfrontCost.Min > o.UpfrontCost.Max {
			t.Fatalf("%s: cost min %v > max %v", o.ID, o.UpfrontCost.Min, o.UpfrontCost.Max)
		}
		if o.ConfidenceScore <= 0 || o.ConfidenceScore > 100 {
			t.Fatalf("%s: confidence %v out of range", o.ID, o.ConfidenceScore)
		}
		switch o.ID {
		case "energy-audit", "water-kit", "weatherization":
			if o.UpfrontCost.Max != 0 {
				t.Fatalf("%s should be free, cost %+v", o.ID, o.UpfrontCost)
			}
		}
	}
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
