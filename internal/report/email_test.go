package report

import (
	"strings"
	"testing"
	"time"
)

func TestEmailBody(t *testing.T) {
	ts := time.Date(2026, time.March, 14, 15, 4, 0, 0, time.UTC)

	body, err := EmailBody("abc-123", false, ts)
	if err != nil {
		t.Fatalf("EmailBody: %v", err)
	}
	for _, want := range []string{
		"Your HOCS Action Plan is Ready!",
		"Session ID: abc-123",
		"Generated: March 14, 2026 at 3:04 PM",
		"Complete Tier 1 first",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	if strings.Contains(body, "You're subscribed!") {
		t.Error("opt-out body should not contain the subscription note")
	}
}

func TestEmailBodyOptIn(t *testing.T) {
	body, err := EmailBody("abc-123", true, time.Now())
	if err != nil {
		t.Fatalf("EmailBody: %v", err)
	}
	if !strings.Contains(body, "subscribed!") {
		t.Error("opt-in body should contain the subscription note")
	}
}
