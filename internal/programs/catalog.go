package programs

import "strings"

// Catalog is a static registry of utility-specific programs, looked up by
// provider name. Build once at startup with NewCatalog and inject; safe for
// concurrent readers.
type Catalog struct {
	byKey map[string][]Program
}

// providerKeyFor maps a free-form provider name to a catalog key via
// case-insensitive substring tests in fixed priority order; first match wins.
// The substring policy stands in for a stable identifier join and is kept for
// compatibility; isolating it here means it can be swapped for an exact-code
// lookup without touching callers.
func providerKeyFor(providerName string) string {
	name := strings.ToLower(providerName)
	switch {
	case strings.Contains(name, "southern california edison") || strings.Contains(name, "sce"):
		return "sce"
	case strings.Contains(name, "pacific gas and electric") || strings.Contains(name, "pg&e") || strings.Contains(name, "pge"):
		return "pge"
	case strings.Contains(name, "san diego gas") || strings.Contains(name, "sdg&e"):
		return "sdge"
	case strings.Contains(name, "los angeles department of water and power") || strings.Contains(name, "ladwp"):
		return "ladwp"
	case strings.Contains(name, "southern california gas") || strings.Contains(name, "socalgas"):
		return "socalgas"
	case strings.Contains(name, "sacramento municipal") || strings.Contains(name, "smud"):
		return "smud"
	case strings.Contains(name, "metropolitan water district") || strings.Contains(name, "mwd"):
		return "mwd"
	default:
		return ""
	}
}

// NewCatalog builds the program catalog.
func NewCatalog() *Catalog {
	return &Catalog{byKey: map[string][]Program{
		"sce":      scePrograms(),
		"pge":      pgePrograms(),
		"sdge":     sdgePrograms(),
		"ladwp":    ladwpPrograms(),
		"socalgas": socalgasPrograms(),
		"smud":     smudPrograms(),
		"mwd":      mwdPrograms(),
	}}
}

// ProgramsFor returns all programs offered by the named provider, in registry
// order. An unrecognized provider yields an empty list, not an error.
func (c *Catalog) ProgramsFor(providerName string) []Program {
	key := providerKeyFor(providerName)
	if key == "" {
		return nil
	}
	return c.byKey[key]
}

// ProgramsByCategory filters ProgramsFor by exact category equality.
func (c *Catalog) ProgramsByCategory(providerName string, cat Category) []Program {
	var out []Program
	for _, p := range c.ProgramsFor(providerName) {
		if p.Category == cat {
			out = append(out, p)
		}
	}
	return out
}

func scePrograms() []Program {
	return []Program{
		{
			Name:           "Home Energy Advisor",
			Category:       CategoryEnergyEfficiency,
			Description:    "Free online tool and personalized recommendations for energy savings",
			RebateAmount:   "Free",
			Eligibility:    []string{"All SCE residential customers"},
			ApplicationURL: "https://www.sce.com/residential/rebates-savings/home-energy-advisor",
			Phone:          "1-800-655-4555",
		},
		{
			Name:           "Smart Thermostat Rebate",
			Category:       CategoryHVAC,
			Description:    "Rebate for purchasing and installing qualifying smart thermostats",
			RebateAmount:   "$75-$120",
			Eligibility:    []string{"SCE residential customers", "Must purchase qualifying ENERGY STAR thermostat"},
			ApplicationURL: "https://www.sce.com/residential/rebates-savings/rebates-by-product/smart-thermostat",
			Phone:          "1-800-655-4555",
		},
		{
			Name:            "Energy Savings Assistance Program",
			Category:        CategoryWeatherization,
			Description:     "Free energy-saving improvements for income-qualified customers",
			RebateAmount:    "Free",
			Eligibility:     []string{"Income at or below 200% of federal poverty guidelines"},
			ApplicationURL:  "https://www.sce.com/residential/assistance/energy-savings-assistance-program",
			Phone:           "1-800-655-4555",
			IncomeQualified: true,
		},
		{
			Name:           "Appliance Rebates",
			Category:       CategoryApplianceRebate,
			Description:    "Rebates for energy-efficient appliances including refrigerators, washers, and pool pumps",
			RebateAmount:   "$50-$400",
			Eligibility:    []string{"SCE residential customers", "Must purchase qualifying ENERGY STAR appliances"},
			ApplicationURL: "https://www.sce.com/residential/rebates-savings/rebates-by-product",
			Phone:          "1-800-655-4555",
		},
	}
}

func pgePrograms() []Program {
	return []Program{
		{
			Name:           "Home Energy Checkup",
			Category:       CategoryEnergyEfficiency,
			Description:    "Free in-home energy assessment with instant savings measures",
			RebateAmount:   "Free",
			Eligibility:    []string{"All PG&E residential customers"},
			ApplicationURL: "https://www.pge.com/en_US/residential/save-energy-money/savings-solutions-and-rebates/home-energy-checkup/home-energy-checkup.page",
			Phone:          "1-800-743-5000",
		},
		{
			Name:           "Energy Efficiency Rebates",
			Category:       CategoryApplianceRebate,
			Description:    "Rebates for energy-efficient appliances, HVAC, and water heaters",
			RebateAmount:   "$50-$6,000",
			Eligibility:    []string{"PG&E residential customers", "Varies by product"},
			ApplicationURL: "https://www.pge.com/en_US/residential/save-energy-money/savings-solutions-and-rebates/rebates-and-incentives/rebates-and-incentives.page",
			Phone:          "1-800-743-5000",
		},
		{
			Name:            "Energy Savings Assistance Program",
			Category:        CategoryWeatherization,
			Description:     "Free weatherization and energy efficiency upgrades for income-qualified households",
			RebateAmount:    "Free",
			Eligibility:     []string{"Income at or below 200% of federal poverty guidelines"},
			ApplicationURL:  "https://www.pge.com/en_US/residential/save-energy-money/help-paying-your-bill/longer-term-assistance/energy-savings-assistance-program/energy-savings-assistance-program.page",
			Phone:           "1-866-743-2752",
			IncomeQualified: true,
		},
	}
}

func sdgePrograms() []Program {
	return []Program{
		{
			Name:           "Home Energy Savings Program",
			Category:       CategoryEnergyEfficiency,
			Description:    "Free home energy assessment and instant savings measures",
			RebateAmount:   "Free",
			Eligibility:    []string{"All SDG&E residential customers"},
			ApplicationURL: "https://www.sdge.com/residential/savings-center/energy-management-programs/home-energy-savings-program",
			Phone:          "1-800-411-7343",
		},
		{
			Name:           "Appliance Rebates",
			Category:       CategoryApplianceRebate,
			Description:    "Rebates for ENERGY STAR appliances and equipment",
			RebateAmount:   "$50-$3,000",
			Eligibility:    []string{"SDG&E residential customers", "Must purchase qualifying products"},
			ApplicationURL: "https://www.sdge.com/residential/savings-center/rebates-incentives",
			Phone:          "1-800-411-7343",
		},
		{
			Name:            "Energy Savings Assistance Program",
			Category:        CategoryWeatherization,
			Description:     "Free energy efficiency improvements for income-qualified customers",
			RebateAmount:    "Free",
			Eligibility:     []string{"Income at or below 200% of federal poverty guidelines"},
			ApplicationURL:  "https://www.sdge.com/residential/savings-center/energy-assistance-programs/energy-savings-assistance-program",
			Phone:           "1-877-646-5525",
			IncomeQualified: true,
		},
	}
}

func ladwpPrograms() []Program {
	return []Program{
		{
			Name:           "Refrigerator Exchange Program",
			Category:       CategoryApplianceRebate,
			Description:    "Free pickup and recycling of old refrigerator plus $50 incentive",
			RebateAmount:   "$50",
			Eligibility:    []string{"LADWP residential customers", "Working refrigerator 10+ years old"},
			ApplicationURL: "https://www.ladwp.com/ladwp/faces/ladwp/residential/r-savemoney/r-sm-rebatesandprograms/r-sm-rp-appliancerecycling",
			Phone:          "1-800-246-0441",
		},
		{
			Name:           "Residential Lighting Rebate",
			Category:       CategoryEnergyEfficiency,
			Description:    "Rebates for LED bulbs and fixtures",
			RebateAmount:   "Varies",
			Eligibility:    []string{"LADWP residential customers"},
			ApplicationURL: "https://www.ladwp.com/ladwp/faces/ladwp/residential/r-savemoney/r-sm-rebatesandprograms",
			Phone:          "1-800-342-5397",
		},
		{
			Name:           "Turf Replacement Program",
			Category:       CategoryWaterConservation,
			Description:    "Rebate for replacing grass with water-efficient landscaping",
			RebateAmount:   "$3 per square foot",
			Eligibility:    []string{"LADWP water customers", "Minimum 500 sqft removal"},
			ApplicationURL: "https://www.ladwp.com/ladwp/faces/ladwp/residential/r-savemoney/r-sm-watersavingprograms/r-sm-wsp-turfreplacement",
			Phone:          "1-800-544-4498",
		},
		{
			Name:            "Energy Efficiency Assistance Program",
			Category:        CategoryWeatherization,
			Description:     "Free weatherization and energy efficiency upgrades for income-qualified customers",
			RebateAmount:    "Free",
			Eligibility:     []string{"Income at or below 200% of federal poverty guidelines"},
			ApplicationURL:  "https://www.ladwp.com/ladwp/faces/ladwp/residential/r-savemoney/r-sm-rebatesandprograms",
			Phone:           "1-800-342-5397",
			IncomeQualified: true,
		},
	}
}

func socalgasPrograms() []Program {
	return []Program{
		{
			Name:            "Energy Savings Assistance Program",
			Category:        CategoryWeatherization,
			Description:     "Free energy-saving improvements for income-qualified customers",
			RebateAmount:    "Free",
			Eligibility:     []string{"Income at or below 200% of federal poverty guidelines"},
			ApplicationURL:  "https://www.socalgas.com/save-money-and-energy/assistance-programs/energy-savings-assistance-program",
			Phone:           "1-800-331-7593",
			IncomeQualified: true,
		},
		{
			Name:           "Water Heater Rebate",
			Category:       CategoryApplianceRebate,
			Description:    "Rebates for high-efficiency water heaters",
			RebateAmount:   "$300-$1,800",
			Eligibility:    []string{"SoCalGas residential customers", "Must install qualifying equipment"},
			ApplicationURL: "https://www.socalgas.com/save-money-and-energy/rebates-and-incentives/water-heating",
			Phone:          "1-877-238-0092",
		},
		{
			Name:           "Furnace Rebate",
			Category:       CategoryHVAC,
			Description:    "Rebates for high-efficiency furnaces",
			RebateAmount:   "$300-$800",
			Eligibility:    []string{"SoCalGas residential customers", "Must install qualifying ENERGY STAR furnace"},
			ApplicationURL: "https://www.socalgas.com/save-money-and-energy/rebates-and-incentives/heating-and-cooling",
			Phone:          "1-877-238-0092",
		},
	}
}

func smudPrograms() []Program {
	return []Program{
		{
			Name:           "Home Performance Program",
			Category:       CategoryEnergyEfficiency,
			Description:    "Comprehensive home energy assessment and rebates for improvements",
			RebateAmount:   "Up to $4,500",
			Eligibility:    []string{"SMUD residential customers"},
			ApplicationURL: "https://www.smud.org/en/Rate-Information/Residential-rates/Rebates-and-programs/Home-Performance-Program",
			Phone:          "1-888-742-7683",
		},
		{
			Name:           "Appliance Rebates",
			Category:       CategoryApplianceRebate,
			Description:    "Rebates for energy-efficient appliances",
			RebateAmount:   "$50-$300",
			Eligibility:    []string{"SMUD residential customers", "Must purchase qualifying appliances"},
			ApplicationURL: "https://www.smud.org/en/Rate-Information/Residential-rates/Rebates-and-programs",
			Phone:          "1-888-742-7683",
		},
	}
}

func mwdPrograms() []Program {
	return []Program{
		{
			Name:           "Turf Replacement Program",
			Category:       CategoryWaterConservation,
			Description:    "Rebate for replacing grass with water-efficient landscaping",
			RebateAmount:   "$2 per square foot",
			Eligibility:    []string{"MWD member agency customers", "Minimum 500 sqft removal"},
			ApplicationURL: "https://www.bewaterwise.com/turf-replacement",
			Phone:          "1-800-CALL-MWD",
		},
		{
			Name:           "Water Conservation Devices",
			Category:       CategoryWaterConservation,
			Description:    "Rebates for water-efficient devices and fixtures",
			RebateAmount:   "Varies",
			Eligibility:    []string{"MWD member agency customers"},
			ApplicationURL: "https://www.bewaterwise.com/rebates",
			Phone:          "1-800-CALL-MWD",
		},
	}
}
