package utility

import (
	"encoding/json"
	"os"
)

// Provider codes used throughout the directory. Gas and water entries get
// their own codes even when the company also sells electricity, because the
// service areas and program URLs differ per service.
const (
	codeSCE        = "SCE"
	codePGE        = "PGE"
	codeSDGE       = "SDGE"
	codeLADWP      = "LADWP"
	codeSMUD       = "SMUD"
	codeSoCalGas   = "SOCALGAS"
	codePGEGas     = "PGE_GAS"
	codeSDGEGas    = "SDGE_GAS"
	codeIRWD       = "IRWD"
	codeLADWPWater = "LADWP_WATER"
	codeEBMUD      = "EBMUD"
	codeSDCWA      = "SDCWA"
	codeMWD        = "MWD"
)

// directoryEnv lets deployments override the built-in provider set with a
// JSON object of code -> entry, mirroring how the rest of the service takes
// registry overrides from the environment.
const directoryEnv = "HOCS_UTILITIES_JSON"

type directoryEntry struct {
	Provider Provider    `json:"provider"`
	Box      boundingBox `json:"box"`
}

// Directory is the static registry of California utility providers. Build it
// once at startup with NewDirectory and inject it where needed; it is never
// mutated afterwards and is safe for concurrent readers.
type Directory struct {
	entries map[string]directoryEntry
}

func defaultEntries() map[string]directoryEntry {
	return map[string]directoryEntry{
		codeSCE: {
			Provider: Provider{
				Name:        "Southern California Edison",
				Type:        TypeElectric,
				ServiceArea: "Southern California (excluding LA City, San Diego, includes Irvine)",
				Website:     "https://www.sce.com",
				ProgramsURL: "https://www.sce.com/residential/rebates-savings",
				RebatesURL:  "https://www.sce.com/residential/rebates-savings/rebates-by-product",
				Phone:       "1-800-655-4555",
			},
			Box: boundingBox{MinLat: 33.0, MaxLat: 35.5, MinLon: -119.5, MaxLon: -117.0},
		},
		codePGE: {
			Provider: Provider{
				Name:        "Pacific Gas and Electric",
				Type:        TypeElectric,
				ServiceArea: "Northern and Central California",
				Website:     "https://www.pge.com",
				ProgramsURL: "https://www.pge.com/en_US/residential/save-energy-money/savings-solutions-and-rebates/savings-solutions-and-rebates.page",
				RebatesURL:  "https://www.pge.com/en_US/residential/save-energy-money/savings-solutions-and-rebates/rebates-and-incentives/rebates-and-incentives.page",
				Phone:       "1-800-743-5000",
			},
			Box: boundingBox{MinLat: 36.0, MaxLat: 42.0, MinLon: -124.0, MaxLon: -119.0},
		},
		codeSDGE: {
			Provider: Provider{
				Name:        "San Diego Gas & Electric",
				Type:        TypeElectric,
				ServiceArea: "San Diego and southern Orange County",
				Website:     "https://www.sdge.com",
				ProgramsURL: "https://www.sdge.com/residential/savings-center",
				RebatesURL:  "https://www.sdge.com/residential/savings-center/rebates-incentives",
				Phone:       "1-800-411-7343",
			},
			Box: boundingBox{MinLat: 32.5, MaxLat: 33.5, MinLon: -117.5, MaxLon: -116.5},
		},
		codeLADWP: {
			Provider: Provider{
				Name:        "Los Angeles Department of Water and Power",
				Type:        TypeElectric,
				ServiceArea: "City of Los Angeles",
				Website:     "https://www.ladwp.com",
				ProgramsURL: "https://www.ladwp.com/ladwp/faces/ladwp/residential/r-savemoney",
				RebatesURL:  "https://www.ladwp.com/ladwp/faces/ladwp/residential/r-savemoney/r-sm-rebatesandprograms",
				Phone:       "1-800-342-5397",
			},
			Box: boundingBox{MinLat: 33.7, MaxLat: 34.35, MinLon: -118.67, MaxLon: -118.15},
		},
		codeSMUD: {
			Provider: Provider{
				Name:        "Sacramento Municipal Utility District",
				Type:        TypeElectric,
				ServiceArea: "Sacramento County",
				Website:     "https://www.smud.org",
				ProgramsURL: "https://www.smud.org/en/Rate-Information/Residential-rates/Rebates-and-programs",
				RebatesURL:  "https://www.smud.org/en/Rate-Information/Residential-rates/Rebates-and-programs",
				Phone:       "1-888-742-7683",
			},
			Box: boundingBox{MinLat: 38.3, MaxLat: 38.8, MinLon: -121.6, MaxLon: -121.0},
		},
		codeSoCalGas: {
			Provider: Provider{
				Name:        "Southern California Gas Company",
				Type:        TypeGas,
				ServiceArea: "Southern California",
				Website:     "https://www.socalgas.com",
				ProgramsURL: "https://www.socalgas.com/save-money-and-energy",
				RebatesURL:  "https://www.socalgas.com/save-money-and-energy/rebates-and-incentives",
				Phone:       "1-877-238-0092",
			},
			Box: boundingBox{MinLat: 33.0, MaxLat: 35.5, MinLon: -119.5, MaxLon: -117.0},
		},
		codePGEGas: {
			Provider: Provider{
				Name:        "Pacific Gas and Electric",
				Type:        TypeGas,
				ServiceArea: "Northern and Central California",
				Website:     "https://www.pge.com",
				ProgramsURL: "https://www.pge.com/en_US/residential/save-energy-money/savings-solutions-and-rebates/savings-solutions-and-rebates.page",
				RebatesURL:  "https://www.pge.com/en_US/residential/save-energy-money/savings-solutions-and-rebates/rebates-and-incentives/rebates-and-incentives.page",
				Phone:       "1-800-743-5000",
			},
			Box: boundingBox{MinLat: 36.0, MaxLat: 42.0, MinLon: -124.0, MaxLon: -119.0},
		},
		codeSDGEGas: {
			Provider: Provider{
				Name:        "San Diego Gas & Electric",
				Type:        TypeGas,
				ServiceArea: "San Diego and southern Orange County",
				Website:     "https://www.sdge.com",
				ProgramsURL: "https://www.sdge.com/residential/savings-center",
				RebatesURL:  "https://www.sdge.com/residential/savings-center/rebates-incentives",
				Phone:       "1-800-411-7343",
			},
			Box: boundingBox{MinLat: 32.5, MaxLat: 33.5, MinLon: -117.5, MaxLon: -116.5},
		},
		codeIRWD: {
			Provider: Provider{
				Name:        "Irvine Ranch Water District",
				Type:        TypeWater,
				ServiceArea: "Irvine and surrounding areas",
				Website:     "https://www.irwd.com",
				ProgramsURL: "https://www.irwd.com/save-water-money",
				RebatesURL:  "https://www.irwd.com/save-water-money/rebates",
				Phone:       "1-949-453-5300",
			},
			Box: boundingBox{MinLat: 33.6, MaxLat: 33.8, MinLon: -117.9, MaxLon: -117.7},
		},
		codeLADWPWater: {
			Provider: Provider{
				Name:        "Los Angeles Department of Water and Power",
				Type:        TypeWater,
				ServiceArea: "City of Los Angeles",
				Website:     "https://www.ladwp.com",
				ProgramsURL: "https://www.ladwp.com/ladwp/faces/ladwp/residential/r-savemoney/r-sm-watersavingprograms",
				RebatesURL:  "https://www.ladwp.com/ladwp/faces/ladwp/residential/r-savemoney/r-sm-rebatesandprograms",
				Phone:       "1-800-342-5397",
			},
			Box: boundingBox{MinLat: 33.7, MaxLat: 34.35, MinLon: -118.67, MaxLon: -118.15},
		},
		codeEBMUD: {
			Provider: Provider{
				Name:        "East Bay Municipal Utility District",
				Type:        TypeWater,
				ServiceArea: "East Bay Area",
				Website:     "https://www.ebmud.com",
				ProgramsURL: "https://www.ebmud.com/water/conservation-and-rebates/",
				RebatesURL:  "https://www.ebmud.com/water/conservation-and-rebates/residential-rebates/",
				Phone:       "1-866-403-2683",
			},
			Box: boundingBox{MinLat: 37.7, MaxLat: 38.0, MinLon: -122.4, MaxLon: -121.8},
		},
		codeSDCWA: {
			Provider: Provider{
				Name:        "San Diego County Water Authority",
				Type:        TypeWater,
				ServiceArea: "San Diego County",
				Website:     "https://www.sdcwa.org",
				ProgramsURL: "https://www.sdcwa.org/conservation",
				RebatesURL:  "https://www.sdcwa.org/conservation-rebates",
				Phone:       "1-858-522-6700",
			},
			Box: boundingBox{MinLat: 32.5, MaxLat: 33.5, MinLon: -117.5, MaxLon: -116.5},
		},
		codeMWD: {
			Provider: Provider{
				Name:        "Metropolitan Water District of Southern California",
				Type:        TypeWater,
				ServiceArea: "Southern California (regional)",
				Website:     "https://www.mwdh2o.com",
				ProgramsURL: "https://www.bewaterwise.com",
				RebatesURL:  "https://www.bewaterwise.com/rebates",
				Phone:       "1-800-CALL-MWD",
			},
			Box: boundingBox{MinLat: 33.0, MaxLat: 34.5, MinLon: -119.0, MaxLon: -117.0},
		},
	}
}

// NewDirectory builds the provider directory, honoring the env override when
// present. Invalid or empty override JSON falls back to the built-in set.
func NewDirectory() *Directory {
	entries := defaultEntries()
	if raw := os.Getenv(directoryEnv); raw != "" {
		var override map[string]directoryEntry
		if err := json.Unmarshal([]byte(raw), &override); err == nil && len(override) > 0 {
			entries = override
		}
	}
	return &Directory{entries: entries}
}

// Get returns the provider registered under code.
func (d *Directory) Get(code string) (Provider, bool) {
	e, ok := d.entries[code]
	return e.Provider, ok
}

// inArea reports whether the point falls inside the bounding box registered
// for code. Unknown codes are never in area.
func (d *Directory) inArea(lat, lon float64, code string) bool {
	e, ok := d.entries[code]
	if !ok {
		return false
	}
	return e.Box.contains(lat, lon)
}
