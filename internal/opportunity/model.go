package opportunity

// Category classifies a savings opportunity.
type Category string

const (
	CategoryEnergy      Category = "energy"
	CategorySolar       Category = "solar"
	CategoryWater       Category = "water"
	CategoryMaintenance Category = "maintenance"
)

// Difficulty describes the expected effort level for a homeowner.
type Difficulty string

const (
	DifficultyDIY          Difficulty = "DIY"
	DifficultyProfessional Difficulty = "Professional"
	DifficultySpecialist   Difficulty = "Specialist"
)

// ResourceType classifies an official resource link.
type ResourceType string

const (
	ResourceGovernment ResourceType = "government"
	ResourceUtility    ResourceType = "utility"
	ResourceProgram    ResourceType = "program"
)

// OfficialResource is a vetted external link attached to an opportunity.
type OfficialResource struct {
	Name string       `json:"name"`
	URL  string       `json:"url"`
	Type ResourceType `json:"type"`
}

// Rebate describes a single rebate a homeowner can claim for an opportunity.
type Rebate struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Link   string  `json:"link"`
}

// UpfrontCost is the estimated out-of-pocket range before rebates.
// Invariant: Min <= Max.
type UpfrontCost struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// SavingsOpportunity is a single recommended cost-saving action with its
// economics and instructions. Instances are constructed by the rule engine
// and never mutated afterwards.
type SavingsOpportunity struct {
	ID                string             `json:"id"`
	Category          Category           `json:"category"`
	Name              string             `json:"name"`
	AnnualSavings     float64            `json:"annualSavings"`
	UpfrontCost       UpfrontCost        `json:"upfrontCost"`
	Rebates           []Rebate           `json:"rebates"`
	PaybackMonths     float64            `json:"paybackMonths"`
	Difficulty        Difficulty         `json:"difficulty"`
	ConfidenceScore   float64            `json:"confidenceScore"`
	Benefits          []string           `json:"benefits"`
	NextSteps         []string           `json:"nextSteps"`
	Methodology       string             `json:"methodology"`
	OfficialResources []OfficialResource `json:"officialResources,omitempty"`
}
