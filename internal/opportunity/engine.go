package opportunity

import (
	"fmt"

	"github.com/hocs-app/hocs/internal/property"
)

// recognizedUtilities are the municipal providers whose customers get
// location-specific next steps and resources in place of the statewide text.
var recognizedUtilities = map[string]bool{
	"Pasadena Water & Power":           true,
	"LADWP":                            true,
	"Glendale Water & Power":           true,
	"Burbank Water & Power":            true,
	"Santa Monica Municipal Utilities": true,
}

// Engine evaluates a property against the fixed opportunity catalog. It is
// pure: no I/O, no randomness, identical input yields deep-equal output.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Generate produces the savings opportunities that apply to the property, in
// fixed catalog order. Unconditional templates always appear; gated templates
// appear only when their predicate holds. Callers must not reorder results.
func (e *Engine) Generate(p property.Attributes) []SavingsOpportunity {
	recognized := recognizedUtilities[p.UtilityProvider]

	opps := []SavingsOpportunity{
		energyAudit(p, recognized),
		waterKit(recognized),
		ledLighting(),
		powerStrips(),
		weatherization(recognized),
		smartThermostat(),
		turfRemoval(),
	}

	if p.YearBuilt < 1980 {
		opps = append(opps, atticInsulation())
	}
	if p.SolarFeasibility > 70 {
		opps = append(opps, solarInstallation(p.SolarFeasibility))
	}
	opps = append(opps, heatPumpWaterHeater())
	if p.YearBuilt < 1990 {
		opps = append(opps, windowReplacement())
	}

	return opps
}

func energyAudit(p property.Attributes, recognized bool) SavingsOpportunity {
	var nextSteps []string
	var resources []OfficialResource
	if recognized {
		nextSteps = []string{
			"Contact your utility provider to schedule free audit",
			"Pasadena Water & Power: (626) 744-4005",
			"LADWP: (800) 342-5397",
			"Document current utility bills for comparison",
		}
		resources = []OfficialResource{
			{Name: "Pasadena Water & Power Energy Programs", URL: "https://www.cityofpasadena.net/water-and-power/energy-efficiency/", Type: ResourceUtility},
			{Name: "LADWP Energy Efficiency Programs", URL: "https://www.ladwp.com/ladwp/faces/ladwp/residential/r-savemoney/r-sm-rebatesandprograms", Type: ResourceUtility},
			{Name: "California Energy Commission", URL: "https://www.energy.ca.gov/programs-and-topics/programs/energy-efficiency", Type: ResourceGovernment},
		}
	} else {
		nextSteps = []string{
			fmt.Sprintf("Contact %s to schedule free audit", p.UtilityProvider),
			"Check your utility provider website for energy efficiency programs",
			"Document current utility bills for comparison",
			"Visit California Energy Commission for statewide programs",
		}
		resources = []OfficialResource{
			{Name: "California Energy Commission", URL: "https://www.energy.ca.gov/programs-and-topics/programs/energy-efficiency", Type: ResourceGovernment},
			{Name: "Find Your Utility Provider Programs", URL: "https://www.cpuc.ca.gov/industries-and-topics/electrical-energy/electric-costs/energy-efficiency-ee", Type: ResourceGovernment},
		}
	}

	return SavingsOpportunity{
		ID:              "energy-audit",
		Category:        CategoryEnergy,
		Name:            "Schedule Free Home Energy Audit",
		AnnualSavings:   300,
		UpfrontCost:     UpfrontCost{Min: 0, Max: 0},
		Rebates:         []Rebate{},
		PaybackMonths:   0,
		Difficulty:      DifficultyDIY,
		ConfidenceScore: 95,
		Benefits: []string{
			"Identify energy waste and inefficiencies at no cost",
			"Get personalized recommendations from certified auditor",
			"Qualify for additional rebates and incentives",
			"Track baseline energy usage for future improvements",
		},
		NextSteps:         nextSteps,
		Methodology:       "Free energy audits identify an average of $300-500/year in savings opportunities. This is the foundation for measuring and managing your home's energy performance.",
		OfficialResources: resources,
	}
}

func waterKit(recognized bool) SavingsOpportunity {
	var nextSteps []string
	var methodology string
	var resources []OfficialResource
	if recognized {
		nextSteps = []string{
			"Order free kit from SoCal Water$mart: bewaterwise.com",
			"Install fixtures and note installation date",
			"Compare next water bill to establish baseline savings",
			"Track monthly water usage to measure impact",
		}
		methodology = "Metropolitan Water District provides free conservation kits. Average household saves 120 gallons/month = $120/year. What gets measured gets managed - track your water bills monthly."
		resources = []OfficialResource{
			{Name: "SoCal Water$mart (Metropolitan Water District)", URL: "https://www.bewaterwise.com/", Type: ResourceUtility},
			{Name: "LA County Water Conservation", URL: "https://dpw.lacounty.gov/wwd/web/Conservation/", Type: ResourceGovernment},
			{Name: "California Water Service", URL: "https://www.calwater.com/conservation/", Type: ResourceUtility},
		}
	} else {
		nextSteps = []string{
			"Contact your local water district for free conservation kits",
			"Check California Water Service for available programs",
			"Install fixtures and note installation date",
			"Track monthly water usage to measure impact",
		}
		methodology = "Many California water districts provide free conservation kits. Average household saves 120 gallons/month = $120/year. What gets measured gets managed - track your water bills monthly."
		resources = []OfficialResource{
			{Name: "California Water Service", URL: "https://www.calwater.com/conservation/", Type: ResourceUtility},
			{Name: "Save Our Water (Statewide)", URL: "https://saveourwater.com/", Type: ResourceGovernment},
			{Name: "California Department of Water Resources", URL: "https://water.ca.gov/Programs/Water-Use-And-Efficiency", Type: ResourceGovernment},
		}
	}

	return SavingsOpportunity{
		ID:              "water-kit",
		Category:        CategoryWater,
		Name:            "Request Free Water Conservation Kit",
		AnnualSavings:   120,
		UpfrontCost:     UpfrontCost{Min: 0, Max: 0},
		Rebates:         []Rebate{},
		PaybackMonths:   0,
		Difficulty:      DifficultyDIY,
		ConfidenceScore: 98,
		Benefits: []string{
			"Free kit includes low-flow showerheads and faucet aerators",
			"Reduce water usage by 20-30% immediately",
			"Easy DIY installation in under 30 minutes",
			"Start tracking water savings right away",
		},
		NextSteps:         nextSteps,
		Methodology:       methodology,
		OfficialResources: resources,
	}
}

func ledLighting() SavingsOpportunity {
	return SavingsOpportunity{
		ID:              "led-lighting",
		Category:        CategoryEnergy,
		Name:            "Convert to LED Lighting (Start with High-Use Areas)",
		AnnualSavings:   150,
		UpfrontCost:     UpfrontCost{Min: 50, Max: 150},
		Rebates:         []Rebate{},
		PaybackMonths:   8,
		Difficulty:      DifficultyDIY,
		ConfidenceScore: 98,
		Benefits: []string{
			"Reduce lighting costs by 75% in converted areas",
			"LED bulbs last 15-25 years vs 1-2 years for incandescent",
			"Instant energy savings you can measure on next bill",
			"No special tools or skills required",
		},
		NextSteps: []string{
			"Identify 10 highest-use bulbs (kitchen, living room, outdoor)",
			"Purchase LED replacements in bulk for best price",
			"Note your current electric bill before conversion",
			"Track monthly electric bills to measure savings",
		},
		Methodology: "Converting 10 high-use bulbs saves ~$150/year. Start small, measure impact, then expand. Track your electric bill monthly to see the difference.",
		OfficialResources: []OfficialResource{
			{Name: "ENERGY STAR Lighting Guide", URL: "https://www.energystar.gov/products/lighting_fans", Type: ResourceGovernment},
			{Name: "California Energy Commission - Lighting", URL: "https://www.energy.ca.gov/programs-and-topics/programs/appliance-efficiency-program/lighting", Type: ResourceGovernment},
		},
	}
}

func powerStrips() SavingsOpportunity {
	return SavingsOpportunity{
		ID:              "power-strips",
		Category:        CategoryEnergy,
		Name:            "Install Smart Power Strips to Eliminate Phantom Load",
		AnnualSavings:   100,
		UpfrontCost:     UpfrontCost{Min: 60, Max: 120},
		Rebates:         []Rebate{},
		PaybackMonths:   9,
		Difficulty:      DifficultyDIY,
		ConfidenceScore: 92,
		Benefits: []string{
			`Eliminate "vampire" energy drain from devices on standby`,
			"Automatically cut power to unused devices",
			"Reduce electric bill by 5-10% with no behavior change",
			"Easy to measure impact on monthly bills",
		},
		NextSteps: []string{
			"Identify entertainment centers and home office areas",
			"Purchase smart power strips with auto-shutoff",
			"Note current monthly electric usage",
			"Compare bills after 1 month to measure savings",
		},
		Methodology: "Phantom load accounts for 5-10% of home electricity use. Smart power strips eliminate this waste. Average savings: $100/year. Track monthly to verify.",
		OfficialResources: []OfficialResource{
			{Name: "U.S. Department of Energy - Standby Power", URL: "https://www.energy.gov/energysaver/articles/standby-power-and-how-reduce-it", Type: ResourceGovernment},
			{Name: "ENERGY STAR Smart Power Strips", URL: "https://www.energystar.gov/products/smart_power_strips", Type: ResourceGovernment},
		},
	}
}

func weatherization(recognized bool) SavingsOpportunity {
	var nextSteps []string
	var methodology string
	var resources []OfficialResource
	if recognized {
		nextSteps = []string{
			"Check eligibility at lacounty.gov/weatherization",
			"Gather income documentation for application",
			"Schedule home assessment if qualified",
			"Track utility bills before and after to measure impact",
		}
		methodology = "LA County Weatherization Program provides free upgrades to eligible households. Average savings: $400/year. Document your baseline energy use to measure the improvement."
		resources = []OfficialResource{
			{Name: "LA County Weatherization Program", URL: "https://dcba.lacounty.gov/weatherization/", Type: ResourceGovernment},
			{Name: "California Department of Community Services - Weatherization", URL: "https://www.csd.ca.gov/Pages/WeatherizationProgram.aspx", Type: ResourceGovernment},
			{Name: "U.S. Department of Energy - Weatherization", URL: "https://www.energy.gov/scep/wap/weatherization-assistance-program", Type: ResourceGovernment},
		}
	} else {
		nextSteps = []string{
			"Check eligibility at csd.ca.gov/weatherization",
			"Contact your local Community Action Agency",
			"Gather income documentation for application",
			"Track utility bills before and after to measure impact",
		}
		methodology = "California Weatherization Program provides free upgrades to eligible households statewide. Average savings: $400/year. Document your baseline energy use to measure the improvement."
		resources = []OfficialResource{
			{Name: "California Department of Community Services - Weatherization", URL: "https://www.csd.ca.gov/Pages/WeatherizationProgram.aspx", Type: ResourceGovernment},
			{Name: "U.S. Department of Energy - Weatherization", URL: "https://www.energy.gov/scep/wap/weatherization-assistance-program", Type: ResourceGovernment},
			{Name: "Find Your Local Community Action Agency", URL: "https://www.csd.ca.gov/Pages/LocalOffices.aspx", Type: ResourceGovernment},
		}
	}

	return SavingsOpportunity{
		ID:              "weatherization",
		Category:        CategoryEnergy,
		Name:            "Apply for Free Weatherization Assistance Program",
		AnnualSavings:   400,
		UpfrontCost:     UpfrontCost{Min: 0, Max: 0},
		Rebates:         []Rebate{},
		PaybackMonths:   0,
		Difficulty:      DifficultyProfessional,
		ConfidenceScore: 85,
		Benefits: []string{
			"Free insulation, air sealing, and efficiency upgrades",
			"Income-qualified program (up to 200% of federal poverty level)",
			"Professional installation at no cost",
			"Reduce heating/cooling costs by 20-30%",
		},
		NextSteps:         nextSteps,
		Methodology:       methodology,
		OfficialResources: resources,
	}
}

func smartThermostat() SavingsOpportunity {
	return SavingsOpportunity{
		ID:            "smart-thermostat",
		Category:      CategoryEnergy,
		Name:          "Install Smart Thermostat with Utility Rebate",
		AnnualSavings: 180,
		UpfrontCost:   UpfrontCost{Min: 125, Max: 225},
		Rebates: []Rebate{
			{Name: "SoCalGas Smart Thermostat Rebate", Amount: 75, Link: "https://socalgas.com/save-money-and-energy/rebates-and-incentives"},
		},
		PaybackMonths:   8,
		Difficulty:      DifficultyDIY,
		ConfidenceScore: 90,
		Benefits: []string{
			"Reduce HVAC costs by 10-15% automatically",
			"Track energy usage in real-time via app",
			"Learning algorithms optimize comfort and savings",
			"Qualify for $75 utility rebate",
		},
		NextSteps: []string{
			"Check HVAC compatibility at nest.com or ecobee.com",
			"Apply for SoCalGas rebate before purchase",
			"Install thermostat and connect to app",
			"Monitor daily/weekly energy reports to track savings",
		},
		Methodology: "Smart thermostats reduce HVAC costs by 12% average. Net cost after rebate: $125-150. Payback in 8-10 months. Built-in tracking helps you measure and manage energy use.",
		OfficialResources: []OfficialResource{
			{Name: "SoCalGas Rebates & Incentives", URL: "https://socalgas.com/save-money-and-energy/rebates-and-incentives", Type: ResourceUtility},
			{Name: "ENERGY STAR Smart Thermostats", URL: "https://www.energystar.gov/products/smart_thermostats", Type: ResourceGovernment},
		},
	}
}

func turfRemoval() SavingsOpportunity {
	return SavingsOpportunity{
		ID:            "turf-removal",
		Category:      CategoryWater,
		Name:          "Turf Removal & Native Landscaping Rebate",
		AnnualSavings: 300,
		UpfrontCost:   UpfrontCost{Min: 500, Max: 1500},
		Rebates: []Rebate{
			{Name: "SoCal Water$mart Turf Replacement ($2/sqft)", Amount: 1000, Link: "https://socalwatersmart.com/turf-replacement"},
		},
		PaybackMonths:   12,
		Difficulty:      DifficultyProfessional,
		ConfidenceScore: 88,
		Benefits: []string{
			"Receive $2 per square foot of turf removed (up to 5,000 sqft)",
			"Reduce outdoor water use by 50-70%",
			"Lower maintenance costs (no mowing, less watering)",
			"Drought-resistant landscaping increases property value",
		},
		NextSteps: []string{
			"Measure lawn area to calculate rebate amount",
			"Pre-qualify at socalwatersmart.com before starting",
			"Get quotes from certified landscapers",
			"Track water bills monthly to measure savings",
		},
		Methodology: "Outdoor watering accounts for 50% of residential water use. Rebate covers most conversion costs. Average 500 sqft removal = $1,000 rebate. Saves $300/year in water costs. Track monthly bills to verify.",
		OfficialResources: []OfficialResource{
			{Name: "SoCal Water$mart Turf Replacement Program", URL: "https://socalwatersmart.com/turf-replacement/", Type: ResourceProgram},
			{Name: "Metropolitan Water District Rebates", URL: "https://www.mwdh2o.com/rebates/", Type: ResourceUtility},
			{Name: "California Water-Efficient Landscape Ordinance", URL: "https://water.ca.gov/Programs/Water-Use-And-Efficiency/Urban-Water-Use-Efficiency/Model-Water-Efficient-Landscape-Ordinance", Type: ResourceGovernment},
		},
	}
}

func atticInsulation() SavingsOpportunity {
	return SavingsOpportunity{
		ID:            "attic-insulation",
		Category:      CategoryEnergy,
		Name:          "Attic Insulation Upgrade with Energy Rebate",
		AnnualSavings: 420,
		UpfrontCost:   UpfrontCost{Min: 900, Max: 2200},
		Rebates: []Rebate{
			{Name: "SoCalGas Energy Savings Assistance", Amount: 300, Link: "https://socalgas.com/save-money-and-energy/rebates-and-incentives"},
		},
		PaybackMonths:   28,
		Difficulty:      DifficultyProfessional,
		ConfidenceScore: 85,
		Benefits: []string{
			"Reduce heating/cooling costs by 20-30%",
			"Improve home comfort year-round",
			"Qualify for $300 utility rebate",
			"Measurable impact on monthly energy bills",
		},
		NextSteps: []string{
			"Schedule free home energy audit first (see above)",
			"Get quotes from 3 certified insulation contractors",
			"Apply for SoCalGas rebate before installation",
			"Track monthly utility bills to measure ROI",
		},
		Methodology: "Homes built before 1980 typically have R-11 or less insulation. Upgrading to R-38 saves $420/year average. Net cost after rebate: $600-1,900. Track heating/cooling costs monthly to verify savings.",
		OfficialResources: []OfficialResource{
			{Name: "SoCalGas Energy Efficiency Programs", URL: "https://socalgas.com/save-money-and-energy/rebates-and-incentives", Type: ResourceUtility},
			{Name: "California Energy Commission - Insulation", URL: "https://www.energy.ca.gov/programs-and-topics/programs/building-energy-efficiency-standards", Type: ResourceGovernment},
			{Name: "U.S. Department of Energy - Insulation", URL: "https://www.energy.gov/energysaver/insulation", Type: ResourceGovernment},
		},
	}
}

func solarInstallation(score float64) SavingsOpportunity {
	return SavingsOpportunity{
		ID:            "solar-installation",
		Category:      CategorySolar,
		Name:          "Residential Solar with Federal Tax Credit",
		AnnualSavings: 2400,
		UpfrontCost:   UpfrontCost{Min: 10500, Max: 17500},
		Rebates: []Rebate{
			{Name: "Federal Solar Tax Credit (30%)", Amount: 6000, Link: "https://www.energy.gov/eere/solar/homeowners-guide-federal-tax-credit-solar-photovoltaics"},
			{Name: "CA SGIP Battery Storage Incentive", Amount: 1000, Link: "https://www.selfgenca.com"},
		},
		PaybackMonths:   48,
		Difficulty:      DifficultySpecialist,
		ConfidenceScore: 88,
		Benefits: []string{
			"Eliminate 80-90% of electric bills",
			"30% federal tax credit reduces net cost significantly",
			"Additional $1,000 for battery storage",
			"Monitor production and savings via app daily",
		},
		NextSteps: []string{
			"Get 3 quotes from certified solar installers (energysage.com)",
			"Review 12 months of utility bills to size system correctly",
			"Apply for SGIP battery incentive (limited funds)",
			"Use monitoring app to track daily production and savings",
		},
		Methodology: fmt.Sprintf("Solar feasibility score: %g/100. Average LA County electric bill: $200/month. 6kW system costs $15,000-25,000. After 30%% tax credit: $10,500-17,500. Payback: 4-6 years. Built-in monitoring lets you track every kWh produced.", score),
		OfficialResources: []OfficialResource{
			{Name: "U.S. Department of Energy - Solar Tax Credit", URL: "https://www.energy.gov/eere/solar/homeowners-guide-federal-tax-credit-solar-photovoltaics", Type: ResourceGovernment},
			{Name: "California SGIP (Self-Generation Incentive Program)", URL: "https://www.selfgenca.com/", Type: ResourceProgram},
			{Name: "Go Solar California", URL: "https://www.gosolarcalifornia.org/", Type: ResourceGovernment},
			{Name: "EnergySage Solar Marketplace", URL: "https://www.energysage.com/", Type: ResourceProgram},
		},
	}
}

func heatPumpWaterHeater() SavingsOpportunity {
	return SavingsOpportunity{
		ID:            "heat-pump-water-heater",
		Category:      CategoryEnergy,
		Name:          "Heat Pump Water Heater with Rebates",
		AnnualSavings: 350,
		UpfrontCost:   UpfrontCost{Min: 1200, Max: 2500},
		Rebates: []Rebate{
			{Name: "SoCalGas Water Heater Rebate", Amount: 300, Link: "https://socalgas.com/save-money-and-energy/rebates-and-incentives"},
			{Name: "Federal Energy Efficiency Tax Credit", Amount: 300, Link: "https://www.energystar.gov/about/federal_tax_credits"},
		},
		PaybackMonths:   36,
		Difficulty:      DifficultyProfessional,
		ConfidenceScore: 82,
		Benefits: []string{
			"Use 60% less energy than standard electric water heaters",
			"Qualify for $600 in combined rebates",
			"Longer lifespan (12-15 years vs 8-10 years)",
			"Track energy savings via utility bills",
		},
		NextSteps: []string{
			"Check if current water heater is 8+ years old",
			"Get quotes from licensed plumbers",
			"Apply for rebates before installation",
			"Compare gas/electric bills monthly to measure savings",
		},
		Methodology: "Water heating accounts for 18% of home energy use. Heat pump water heaters save $350/year average. Net cost after $600 rebates: $600-1,900. Payback: 2-5 years. Track monthly utility costs to verify.",
		OfficialResources: []OfficialResource{
			{Name: "SoCalGas Water Heater Rebates", URL: "https://socalgas.com/save-money-and-energy/rebates-and-incentives", Type: ResourceUtility},
			{Name: "ENERGY STAR Water Heaters", URL: "https://www.energystar.gov/products/water_heaters", Type: ResourceGovernment},
			{Name: "Federal Tax Credits for Energy Efficiency", URL: "https://www.energystar.gov/about/federal_tax_credits", Type: ResourceGovernment},
		},
	}
}

func windowReplacement() SavingsOpportunity {
	return SavingsOpportunity{
		ID:            "window-replacement",
		Category:      CategoryEnergy,
		Name:          "Energy-Efficient Window Replacement",
		AnnualSavings: 300,
		UpfrontCost:   UpfrontCost{Min: 3000, Max: 8000},
		Rebates: []Rebate{
			{Name: "Federal Energy Efficiency Tax Credit", Amount: 600, Link: "https://www.energystar.gov/about/federal_tax_credits"},
		},
		PaybackMonths:   96,
		Difficulty:      DifficultyProfessional,
		ConfidenceScore: 75,
		Benefits: []string{
			"Reduce heating/cooling costs by 10-15%",
			"Improve home comfort and reduce drafts",
			"Qualify for $600 federal tax credit",
			"Increase home value and curb appeal",
		},
		NextSteps: []string{
			"Prioritize windows with visible damage or drafts",
			"Get quotes for ENERGY STAR certified windows",
			"Consider phased approach (worst windows first)",
			"Track heating/cooling costs to measure impact",
		},
		Methodology: "Homes built before 1990 typically have single-pane windows. Upgrading to double-pane saves $300/year. Net cost after tax credit: $2,400-7,400. Long payback but measurable comfort improvement. Track seasonal utility costs.",
		OfficialResources: []OfficialResource{
			{Name: "ENERGY STAR Windows & Doors", URL: "https://www.energystar.gov/products/building_products/residential_windows_doors_and_skylights", Type: ResourceGovernment},
			{Name: "Federal Tax Credits for Energy Efficiency", URL: "https://www.energystar.gov/about/federal_tax_credits", Type: ResourceGovernment},
			{Name: "California Energy Commission - Windows", URL: "https://www.energy.ca.gov/programs-and-topics/programs/building-energy-efficiency-standards", Type: ResourceGovernment},
		},
	}
}
