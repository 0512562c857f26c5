package property

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/hocs-app/hocs/internal/utility"
)

// cityInfo anchors address generation for the Southern California cities we
// model. Coordinates are city-center approximations used for provider lookup.
type cityInfo struct {
	lat, lon float64
	electric string
}

// Ordered so matching is deterministic when an address names two cities.
var cities = []struct {
	name string
	info cityInfo
}{
	{"pasadena", cityInfo{34.1478, -118.1445, "Pasadena Water & Power"}},
	{"los angeles", cityInfo{34.0522, -118.2437, "LADWP"}},
	{"glendale", cityInfo{34.1425, -118.2551, "Glendale Water & Power"}},
	{"burbank", cityInfo{34.1808, -118.3090, "Burbank Water & Power"}},
	{"santa monica", cityInfo{34.0195, -118.4912, "Santa Monica Municipal Utilities"}},
}

var permitPool = []string{
	"Roof replacement (2015)",
	"Water heater replacement (2019)",
	"Electrical panel upgrade (2017)",
	"HVAC replacement (2018)",
	"Kitchen remodel (2016)",
	"Bathroom remodel (2020)",
	"Solar pre-wire (2021)",
	"Re-pipe (2014)",
}

// Generator derives stable mock attributes for an address. The same address
// string always yields the same attributes, so repeated lookups agree.
type Generator struct {
	resolver *utility.Resolver
}

func NewGenerator(r *utility.Resolver) *Generator {
	return &Generator{resolver: r}
}

// Generate builds the attribute set for the given address. Fields are derived
// from an FNV-1a hash of the normalized address; coordinates come from the
// city named in the address, falling back to central Los Angeles.
func (g *Generator) Generate(address string) Attributes {
	norm := normalize(address)
	h := fnv.New64a()
	h.Write([]byte(norm))
	sum := h.Sum64()

	lat, lon := 34.05, -118.25
	munic := ""
	for _, c := range cities {
		if strings.Contains(norm, c.name) {
			lat, lon = c.info.lat, c.info.lon
			munic = c.info.electric
			break
		}
	}

	res := g.resolver.Resolve(lat, lon, cityFrom(norm), "Los Angeles County", "CA")

	attrs := Attributes{
		Address:          address,
		YearBuilt:        1950 + int(sum%70),
		SquareFeet:       1200 + int((sum>>8)%2400),
		Bedrooms:         2 + int((sum>>16)%4),
		Bathrooms:        1 + int((sum>>20)%3),
		LotSize:          4000 + int((sum>>24)%8000),
		LastSalePrice:    float64(600000 + (sum>>32)%900000),
		WildfireZone:     wildfireFor((sum >> 40) % 3),
		RoofAge:          2 + int((sum>>44)%28),
		SolarFeasibility: float64(40 + (sum>>48)%61),
	}
	attrs.AssessedValue = attrs.LastSalePrice * 0.85
	attrs.PropertyTaxEstimate = attrs.AssessedValue * 0.0125
	attrs.PermitHistory = permitsFor(sum)

	if res.Electric != nil {
		attrs.ElectricProvider = res.Electric.Name
	}
	if res.Gas != nil {
		attrs.GasProvider = res.Gas.Name
	}
	if res.Water != nil {
		attrs.WaterProvider = res.Water.Name
	}

	// Municipal cities keep their city utility as the headline provider;
	// everywhere else the resolved electric IOU fills that role.
	switch {
	case munic != "":
		attrs.UtilityProvider = munic
	case attrs.ElectricProvider != "":
		attrs.UtilityProvider = attrs.ElectricProvider
	default:
		attrs.UtilityProvider = "Unknown"
	}

	return attrs
}

func normalize(address string) string {
	return strings.ToLower(strings.Join(strings.Fields(address), " "))
}

// cityFrom extracts the best-effort city name the resolver keys on.
func cityFrom(norm string) string {
	for _, c := range cities {
		if strings.Contains(norm, c.name) {
			return c.name
		}
	}
	return ""
}

func wildfireFor(n uint64) WildfireZone {
	switch n {
	case 0:
		return WildfireLow
	case 1:
		return WildfireMedium
	default:
		return WildfireHigh
	}
}

func permitsFor(sum uint64) []string {
	var out []string
	for i, p := range permitPool {
		if sum>>(uint(i)+52)&1 == 1 {
			out = append(out, p)
		}
	}
	if out == nil {
		out = []string{permitPool[int(sum%uint64(len(permitPool)))]}
	}
	return out
}

// Autocomplete returns seeded address suggestions whose normalized form
// contains the query. An empty query returns nothing.
func Autocomplete(query string, limit int) []string {
	q := normalize(query)
	if q == "" {
		return nil
	}
	if limit <= 0 {
		limit = 5
	}
	var out []string
	for _, a := range seedAddresses {
		if strings.Contains(normalize(a), q) {
			out = append(out, a)
			if len(out) >= limit {
				break
			}
		}
	}
	return out
}

var seedAddresses = []string{
	"123 Main St, Pasadena, CA 91101",
	"456 Oak Ave, Los Angeles, CA 90012",
	"789 Elm Dr, Glendale, CA 91203",
	"321 Maple Ln, Burbank, CA 91502",
	"654 Ocean Blvd, Santa Monica, CA 90401",
}

// String helper kept close to the data it describes.
func (a Attributes) Summary() string {
	return fmt.Sprintf("%d sqft, built %d, %d bed / %d bath", a.SquareFeet, a.YearBuilt, a.Bedrooms, a.Bathrooms)
}
