package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hocs-app/hocs/internal/notification"
	"github.com/hocs-app/hocs/internal/opportunity"
	"github.com/hocs-app/hocs/internal/programs"
	"github.com/hocs-app/hocs/internal/property"
	"github.com/hocs-app/hocs/internal/storage"
	"github.com/hocs-app/hocs/internal/utility"
)

func newTestMux(t *testing.T) (*http.ServeMux, *storage.Memory) {
	t.Helper()
	st := storage.NewMemory()
	resolver := utility.NewResolver(utility.NewDirectory())
	mux := NewMux(Deps{
		Storage:    st,
		Resolver:   resolver,
		Catalog:    programs.NewCatalog(),
		Generator:  property.NewGenerator(resolver),
		Engine:     opportunity.NewEngine(),
		Notifier:   notification.NewService(st),
		SessionTTL: time.Hour,
	})
	return mux, st
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestRootAndHealth(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := doJSON(t, mux, http.MethodGet, "/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("root status %d", rec.Code)
	}
	var root map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &root); err != nil {
		t.Fatalf("decode root: %v", err)
	}
	if root["message"] != "HOCS Backend API" || root["version"] == "" {
		t.Fatalf("root = %v", root)
	}

	rec = doJSON(t, mux, http.MethodGet, "/healthz", nil)
	var health map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
		t.Fatalf("decode healthz: %v", err)
	}
	if health["status"] != "ok" || health["database"] != "connected" {
		t.Fatalf("healthz = %v", health)
	}

	if rec := doJSON(t, mux, http.MethodGet, "/readyz", nil); rec.Code != http.StatusOK {
		t.Fatalf("readyz status %d", rec.Code)
	}
	if rec := doJSON(t, mux, http.MethodGet, "/livez", nil); rec.Code != http.StatusOK {
		t.Fatalf("livez status %d", rec.Code)
	}

	if rec := doJSON(t, mux, http.MethodGet, "/nope", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown path status %d", rec.Code)
	}
}

func TestPropertyLookupFlow(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/api/property/lookup", map[string]string{
		"address": "123 Main St, Pasadena, CA 91101",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("lookup status %d: %s", rec.Code, rec.Body.String())
	}

	var res lookupResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode lookup: %v", err)
	}
	if res.SessionID == "" {
		t.Fatal("missing session id")
	}
	if res.Property.UtilityProvider != "Pasadena Water & Power" {
		t.Fatalf("provider = %q", res.Property.UtilityProvider)
	}
	if len(res.Opportunities) == 0 {
		t.Fatal("no opportunities")
	}
	if res.TotalAnnualSavings <= 0 {
		t.Fatalf("total savings = %v", res.TotalAnnualSavings)
	}

	// The stored session serves the same data back.
	rec = doJSON(t, mux, http.MethodGet, "/api/sessions/"+res.SessionID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get session status %d: %s", rec.Code, rec.Body.String())
	}
	var sess sessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &sess); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	if sess.Address != "123 Main St, Pasadena, CA 91101" {
		t.Fatalf("session address = %q", sess.Address)
	}
	if len(sess.Opportunities) != len(res.Opportunities) {
		t.Fatalf("session has %d opportunities, lookup had %d", len(sess.Opportunities), len(res.Opportunities))
	}

	// And renders to a PDF attachment.
	rec = doJSON(t, mux, http.MethodGet, "/api/sessions/"+res.SessionID+"/pdf", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("pdf status %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("pdf content type %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "HOCS_Action_Plan.pdf") {
		t.Fatalf("content disposition %q", cd)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Fatal("body is not a PDF")
	}
}

func TestPropertyLookupValidation(t *testing.T) {
	mux, _ := newTestMux(t)

	if rec := doJSON(t, mux, http.MethodGet, "/api/property/lookup", nil); rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("GET lookup status %d", rec.Code)
	}
	if rec := doJSON(t, mux, http.MethodPost, "/api/property/lookup", map[string]string{"address": "   "}); rec.Code != http.StatusBadRequest {
		t.Fatalf("blank address status %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/property/lookup", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad json status %d", rec.Code)
	}
}

func TestGetSessionNotFound(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := doJSON(t, mux, http.MethodGet, "/api/sessions/does-not-exist", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestExpiredSessionNotFound(t *testing.T) {
	mux, st := newTestMux(t)

	err := st.CreateSession(context.Background(), storage.Session{
		SessionID:         "expired",
		PropertyJSON:      []byte("{}"),
		OpportunitiesJSON: []byte("[]"),
		ExpiresAt:         time.Now().Add(-time.Minute),
	})
	if err != nil {
		t.Fatalf("seed session: %v", err)
	}

	rec := doJSON(t, mux, http.MethodGet, "/api/sessions/expired", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestSessionEmailValidation(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/api/sessions/whatever/email", map[string]string{"email": "not-an-email"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid email status %d", rec.Code)
	}
}

func TestSessionEmailUnconfiguredProvider(t *testing.T) {
	mux, _ := newTestMux(t)

	// Create a real session first.
	rec := doJSON(t, mux, http.MethodPost, "/api/property/lookup", map[string]string{
		"address": "456 Oak Ave, Los Angeles, CA 90012",
	})
	var res lookupResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode lookup: %v", err)
	}

	// No email config saved anywhere, so delivery fails upstream.
	rec = doJSON(t, mux, http.MethodPost, "/api/sessions/"+res.SessionID+"/email", map[string]interface{}{
		"email":  "user@example.com",
		"opt_in": true,
	})
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAutocompleteEndpoint(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := doJSON(t, mux, http.MethodGet, "/api/addresses/autocomplete?q=pasadena", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var res struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.Suggestions) != 1 || !strings.Contains(res.Suggestions[0], "Pasadena") {
		t.Fatalf("suggestions = %v", res.Suggestions)
	}

	// Empty query returns an empty list, not null.
	rec = doJSON(t, mux, http.MethodGet, "/api/addresses/autocomplete", nil)
	if !strings.Contains(rec.Body.String(), `"suggestions":[]`) {
		t.Fatalf("empty query body = %s", rec.Body.String())
	}
}

func TestUtilitiesLookupEndpoint(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := doJSON(t, mux, http.MethodGet, "/api/utilities/lookup?lat=34.05&lon=-118.25&city=Los+Angeles&state=CA", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var res struct {
		Reason    string                       `json:"reason"`
		Utilities map[string]map[string]string `json:"utilities"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Reason != "matched" {
		t.Fatalf("reason = %q", res.Reason)
	}
	if res.Utilities["electric"]["name"] != "Los Angeles Department of Water and Power" {
		t.Fatalf("electric = %v", res.Utilities["electric"])
	}

	if rec := doJSON(t, mux, http.MethodGet, "/api/utilities/lookup?lon=-118.25", nil); rec.Code != http.StatusBadRequest {
		t.Fatalf("missing lat status %d", rec.Code)
	}
}

func TestUtilitiesProgramsEndpoint(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := doJSON(t, mux, http.MethodGet, "/api/utilities/programs?provider=LADWP", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var res struct {
		Provider string                   `json:"provider"`
		Programs []map[string]interface{} `json:"programs"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Provider != "LADWP" || len(res.Programs) == 0 {
		t.Fatalf("response = %+v", res)
	}

	rec = doJSON(t, mux, http.MethodGet, "/api/utilities/programs?provider=LADWP&category=energy_efficiency", nil)
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode filtered: %v", err)
	}
	for _, p := range res.Programs {
		if p["category"] != "energy_efficiency" {
			t.Fatalf("unfiltered program %v", p)
		}
	}

	if rec := doJSON(t, mux, http.MethodGet, "/api/utilities/programs", nil); rec.Code != http.StatusBadRequest {
		t.Fatalf("missing provider status %d", rec.Code)
	}
}
