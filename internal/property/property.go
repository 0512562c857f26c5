package property

// WildfireZone is the rough wildfire risk classification for a parcel.
type WildfireZone string

const (
	WildfireLow    WildfireZone = "Low"
	WildfireMedium WildfireZone = "Medium"
	WildfireHigh   WildfireZone = "High"
)

// Attributes holds the property facts a lookup returns. Values are immutable
// once generated; the request/response cycle owns them and the storage layer
// may cache them by address.
type Attributes struct {
	Address             string       `json:"address"`
	YearBuilt           int          `json:"yearBuilt"`
	SquareFeet          int          `json:"squareFeet"`
	Bedrooms            int          `json:"bedrooms"`
	Bathrooms           int          `json:"bathrooms"`
	LotSize             int          `json:"lotSize"`
	LastSalePrice       float64      `json:"lastSalePrice"`
	AssessedValue       float64      `json:"assessedValue"`
	PropertyTaxEstimate float64      `json:"propertyTaxEstimate"`
	UtilityProvider     string       `json:"utilityProvider"`
	ElectricProvider    string       `json:"electricProvider,omitempty"`
	GasProvider         string       `json:"gasProvider,omitempty"`
	WaterProvider       string       `json:"waterProvider,omitempty"`
	WildfireZone        WildfireZone `json:"wildfireZone"`
	RoofAge             int          `json:"roofAge"`
	SolarFeasibility    float64      `json:"solarFeasibilityScore"`
	PermitHistory       []string     `json:"permitHistory"`
}
