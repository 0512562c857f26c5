package utility

import "strings"

// Reason explains why a resolution came back the way it did, replacing the
// original service's silent catch-and-return-nothing behavior so callers can
// tell "out of area" apart from "out of state".
type Reason string

const (
	ReasonMatched    Reason = "matched"
	ReasonOutOfState Reason = "out_of_state"
	ReasonNoCoverage Reason = "no_coverage"
)

// Resolution holds the per-service outcome of a lookup. Any slot may be nil;
// water in particular has no statewide fallback.
type Resolution struct {
	Electric *Provider
	Gas      *Provider
	Water    *Provider
	Reason   Reason
}

// Resolver selects providers for a coordinate + city/county pair using
// city-name rules first and bounding boxes second. It is a pure function over
// the injected directory and safe for concurrent use.
type Resolver struct {
	dir *Directory
}

func NewResolver(dir *Directory) *Resolver {
	return &Resolver{dir: dir}
}

// Resolve looks up the electric, gas, and water providers serving a location.
// The service area is California only; any other state short-circuits to an
// all-absent resolution with ReasonOutOfState.
func (r *Resolver) Resolve(lat, lon float64, city, county, state string) Resolution {
	switch strings.ToLower(strings.TrimSpace(state)) {
	case "california", "ca", "":
	default:
		return Resolution{Reason: ReasonOutOfState}
	}

	res := Resolution{
		Electric: r.resolveElectric(lat, lon, city, county),
		Gas:      r.resolveGas(lat, lon, city, county),
		Water:    r.resolveWater(lat, lon, city, county),
	}
	if res.Electric == nil && res.Gas == nil && res.Water == nil {
		res.Reason = ReasonNoCoverage
	} else {
		res.Reason = ReasonMatched
	}
	return res
}

func (r *Resolver) resolveElectric(lat, lon float64, city, county string) *Provider {
	cityLower := strings.ToLower(city)
	countyLower := strings.ToLower(county)

	// LA City customers belong to the municipal utility, not SCE.
	if strings.Contains(cityLower, "los angeles") && r.dir.inArea(lat, lon, codeLADWP) {
		return r.provider(codeLADWP)
	}
	if strings.Contains(cityLower, "sacramento") || strings.Contains(countyLower, "sacramento") {
		if r.dir.inArea(lat, lon, codeSMUD) {
			return r.provider(codeSMUD)
		}
	}
	if strings.Contains(countyLower, "san diego") || strings.Contains(cityLower, "san diego") {
		if r.dir.inArea(lat, lon, codeSDGE) {
			return r.provider(codeSDGE)
		}
	}
	if r.dir.inArea(lat, lon, codePGE) {
		return r.provider(codePGE)
	}
	if r.dir.inArea(lat, lon, codeSCE) {
		return r.provider(codeSCE)
	}
	// South of 36.0 defaults to SCE territory, north to PG&E.
	if lat < 36.0 {
		return r.provider(codeSCE)
	}
	return r.provider(codePGE)
}

func (r *Resolver) resolveGas(lat, lon float64, city, county string) *Provider {
	cityLower := strings.ToLower(city)
	countyLower := strings.ToLower(county)

	if strings.Contains(countyLower, "san diego") || strings.Contains(cityLower, "san diego") {
		if r.dir.inArea(lat, lon, codeSDGEGas) {
			return r.provider(codeSDGEGas)
		}
	}
	if r.dir.inArea(lat, lon, codePGEGas) {
		return r.provider(codePGEGas)
	}
	if r.dir.inArea(lat, lon, codeSoCalGas) {
		return r.provider(codeSoCalGas)
	}
	if lat < 36.0 {
		return r.provider(codeSoCalGas)
	}
	return r.provider(codePGEGas)
}

func (r *Resolver) resolveWater(lat, lon float64, city, county string) *Provider {
	cityLower := strings.ToLower(city)
	countyLower := strings.ToLower(county)

	if strings.Contains(cityLower, "irvine") && r.dir.inArea(lat, lon, codeIRWD) {
		return r.provider(codeIRWD)
	}
	if strings.Contains(cityLower, "los angeles") && r.dir.inArea(lat, lon, codeLADWPWater) {
		return r.provider(codeLADWPWater)
	}
	for _, name := range []string{"oakland", "berkeley", "richmond"} {
		if strings.Contains(cityLower, name) && r.dir.inArea(lat, lon, codeEBMUD) {
			return r.provider(codeEBMUD)
		}
	}
	if strings.Contains(countyLower, "san diego") && r.dir.inArea(lat, lon, codeSDCWA) {
		return r.provider(codeSDCWA)
	}
	if r.dir.inArea(lat, lon, codeMWD) {
		return r.provider(codeMWD)
	}
	// Water districts are too localized to guess a default.
	return nil
}

func (r *Resolver) provider(code string) *Provider {
	p, ok := r.dir.Get(code)
	if !ok {
		return nil
	}
	return &p
}

// Flatten converts a resolution into the plain string-map structure the API
// serializes: one entry per service, nil for absent slots.
func (res Resolution) Flatten() map[string]map[string]string {
	out := make(map[string]map[string]string, 3)
	for service, p := range map[string]*Provider{
		"electric": res.Electric,
		"gas":      res.Gas,
		"water":    res.Water,
	} {
		if p == nil {
			out[service] = nil
			continue
		}
		out[service] = map[string]string{
			"name":         p.Name,
			"website":      p.Website,
			"programs_url": p.ProgramsURL,
			"rebates_url":  p.RebatesURL,
			"phone":        p.Phone,
			"service_area": p.ServiceArea,
		}
	}
	return out
}
