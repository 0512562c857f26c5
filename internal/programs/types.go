package programs

// Category classifies a utility program.
type Category string

const (
	CategoryEnergyEfficiency  Category = "energy_efficiency"
	CategorySolar             Category = "solar"
	CategoryWaterConservation Category = "water_conservation"
	CategoryWeatherization    Category = "weatherization"
	CategoryApplianceRebate   Category = "appliance_rebate"
	CategoryHVAC              Category = "hvac"
	CategoryInsulation        Category = "insulation"
)

// Program is a utility-specific rebate or assistance program. Static,
// read-only data; never mutated after the catalog is built.
type Program struct {
	Name            string   `json:"name"`
	Category        Category `json:"category"`
	Description     string   `json:"description"`
	RebateAmount    string   `json:"rebate_amount"`
	Eligibility     []string `json:"eligibility"`
	ApplicationURL  string   `json:"application_url"`
	Phone           string   `json:"phone,omitempty"`
	IncomeQualified bool     `json:"income_qualified"`
	Notes           string   `json:"notes,omitempty"`
}

// Flatten converts programs to the plain-map form the API serializes.
func Flatten(list []Program) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(list))
	for _, p := range list {
		out = append(out, map[string]interface{}{
			"name":             p.Name,
			"category":         string(p.Category),
			"description":      p.Description,
			"rebate_amount":    p.RebateAmount,
			"eligibility":      p.Eligibility,
			"application_url":  p.ApplicationURL,
			"phone":            p.Phone,
			"income_qualified": p.IncomeQualified,
			"notes":            p.Notes,
		})
	}
	return out
}
