package utility

import "testing"

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	return NewResolver(NewDirectory())
}

func TestResolveLosAngelesCity(t *testing.T) {
	r := newTestResolver(t)

	res := r.Resolve(34.05, -118.25, "Los Angeles", "Los Angeles County", "CA")
	if res.Reason != ReasonMatched {
		t.Fatalf("reason = %q, want %q", res.Reason, ReasonMatched)
	}
	if res.Electric == nil || res.Electric.Name != "Los Angeles Department of Water and Power" {
		t.Fatalf("electric = %+v, want LADWP", res.Electric)
	}
	if res.Gas == nil || res.Gas.Name != "Southern California Gas Company" {
		t.Fatalf("gas = %+v, want SoCalGas", res.Gas)
	}
	if res.Water == nil || res.Water.Name != "Los Angeles Department of Water and Power" {
		t.Fatalf("water = %+v, want LADWP water", res.Water)
	}
}

func TestResolveSacramento(t *testing.T) {
	r := newTestResolver(t)

	res := r.Resolve(38.58, -121.49, "Sacramento", "Sacramento County", "California")
	if res.Electric == nil || res.Electric.Name != "Sacramento Municipal Utility District" {
		t.Fatalf("electric = %+v, want SMUD", res.Electric)
	}
	if res.Gas == nil || res.Gas.Name != "Pacific Gas and Electric" {
		t.Fatalf("gas = %+v, want PG&E gas", res.Gas)
	}
}

func TestResolveSanDiego(t *testing.T) {
	r := newTestResolver(t)

	res := r.Resolve(32.72, -117.16, "San Diego", "San Diego County", "CA")
	if res.Electric == nil || res.Electric.Name != "San Diego Gas & Electric" {
		t.Fatalf("electric = %+v, want SDG&E", res.Electric)
	}
	if res.Gas == nil || res.Gas.Name != "San Diego Gas & Electric" {
		t.Fatalf("gas = %+v, want SDG&E gas", res.Gas)
	}
	if res.Water == nil || res.Water.Name != "San Diego County Water Authority" {
		t.Fatalf("water = %+v, want SDCWA", res.Water)
	}
}

func TestResolveNorthernCalifornia(t *testing.T) {
	r := newTestResolver(t)

	// San Francisco sits inside the PG&E box for both services.
	res := r.Resolve(37.77, -122.42, "San Francisco", "San Francisco County", "CA")
	if res.Electric == nil || res.Electric.Name != "Pacific Gas and Electric" {
		t.Fatalf("electric = %+v, want PG&E", res.Electric)
	}
	if res.Gas == nil || res.Gas.Name != "Pacific Gas and Electric" {
		t.Fatalf("gas = %+v, want PG&E gas", res.Gas)
	}
}

func TestResolveSouthernFallback(t *testing.T) {
	r := newTestResolver(t)

	// Well outside every bounding box but south of the 36th parallel.
	res := r.Resolve(33.0, -114.7, "Blythe", "Riverside County", "CA")
	if res.Electric == nil || res.Electric.Name != "Southern California Edison" {
		t.Fatalf("electric = %+v, want SCE fallback", res.Electric)
	}
	if res.Gas == nil || res.Gas.Name != "Southern California Gas Company" {
		t.Fatalf("gas = %+v, want SoCalGas fallback", res.Gas)
	}
	if res.Water != nil {
		t.Fatalf("water = %+v, want nil outside every district", res.Water)
	}
}

func TestResolveNorthernFallback(t *testing.T) {
	r := newTestResolver(t)

	res := r.Resolve(41.5, -120.2, "Alturas", "Modoc County", "CA")
	if res.Electric == nil || res.Electric.Name != "Pacific Gas and Electric" {
		t.Fatalf("electric = %+v, want PG&E fallback", res.Electric)
	}
}

func TestResolveOutOfState(t *testing.T) {
	r := newTestResolver(t)

	res := r.Resolve(36.17, -115.14, "Las Vegas", "Clark County", "NV")
	if res.Reason != ReasonOutOfState {
		t.Fatalf("reason = %q, want %q", res.Reason, ReasonOutOfState)
	}
	if res.Electric != nil || res.Gas != nil || res.Water != nil {
		t.Fatalf("got providers %+v %+v %+v, want all nil", res.Electric, res.Gas, res.Water)
	}
}

func TestResolveEmptyStateTreatedAsCalifornia(t *testing.T) {
	r := newTestResolver(t)

	res := r.Resolve(34.05, -118.25, "Los Angeles", "", "")
	if res.Reason != ReasonMatched {
		t.Fatalf("reason = %q, want %q", res.Reason, ReasonMatched)
	}
}

func TestResolveIrvineWater(t *testing.T) {
	r := newTestResolver(t)

	res := r.Resolve(33.68, -117.82, "Irvine", "Orange County", "CA")
	if res.Water == nil || res.Water.Name != "Irvine Ranch Water District" {
		t.Fatalf("water = %+v, want IRWD", res.Water)
	}
	if res.Electric == nil || res.Electric.Name != "Southern California Edison" {
		t.Fatalf("electric = %+v, want SCE", res.Electric)
	}
}

func TestResolveEastBayWater(t *testing.T) {
	r := newTestResolver(t)

	for _, city := range []string{"Oakland", "Berkeley", "Richmond"} {
		res := r.Resolve(37.8, -122.27, city, "Alameda County", "CA")
		if res.Water == nil || res.Water.Name != "East Bay Municipal Utility District" {
			t.Fatalf("%s water = %+v, want EBMUD", city, res.Water)
		}
	}
}

func TestFlatten(t *testing.T) {
	r := newTestResolver(t)

	res := r.Resolve(34.05, -118.25, "Los Angeles", "Los Angeles County", "CA")
	flat := res.Flatten()

	for _, service := range []string{"electric", "gas", "water"} {
		entry, ok := flat[service]
		if !ok {
			t.Fatalf("flatten missing %q", service)
		}
		if entry["name"] == "" {
			t.Fatalf("flatten %q has empty name: %v", service, entry)
		}
		for _, key := range []string{"website", "programs_url", "rebates_url", "phone", "service_area"} {
			if _, ok := entry[key]; !ok {
				t.Fatalf("flatten %q missing key %q", service, key)
			}
		}
	}

	empty := Resolution{Reason: ReasonOutOfState}.Flatten()
	for _, service := range []string{"electric", "gas", "water"} {
		if entry, ok := empty[service]; !ok || entry != nil {
			t.Fatalf("empty flatten %q = %v, want explicit nil", service, entry)
		}
	}
}
