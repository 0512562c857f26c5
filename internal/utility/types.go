package utility

// Type is the kind of service a utility delivers.
type Type string

const (
	TypeElectric Type = "electric"
	TypeGas      Type = "gas"
	TypeWater    Type = "water"
)

// Provider holds the public-facing metadata for a utility provider. The
// geographic bounding box used during resolution is kept in the directory,
// not here; callers never see it.
type Provider struct {
	Name        string `json:"name"`
	Type        Type   `json:"type"`
	ServiceArea string `json:"service_area"`
	Website     string `json:"website"`
	ProgramsURL string `json:"programs_url,omitempty"`
	RebatesURL  string `json:"rebates_url,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

// boundingBox is an approximate lat/lon service-area rectangle. Edges are
// inclusive.
type boundingBox struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
}

func (b boundingBox) contains(lat, lon float64) bool {
	return b.MinLat <= lat && lat <= b.MaxLat && b.MinLon <= lon && lon <= b.MaxLon
}
