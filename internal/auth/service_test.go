package auth

import (
	"context"
	"testing"
	"time"

	"github.com/hocs-app/hocs/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(storage.NewMemory())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestRegisterAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	u, err := svc.Register(ctx, "admin", "s3cret", "admin")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.ID == "" || u.PasswordHash == "s3cret" {
		t.Fatalf("user = %+v", u)
	}

	if _, err := svc.Register(ctx, "admin", "other", "viewer"); err == nil {
		t.Fatal("duplicate username should fail")
	}

	got, err := svc.Authenticate(ctx, "admin", "s3cret")
	if err != nil || got.ID != u.ID {
		t.Fatalf("Authenticate: %+v, %v", got, err)
	}
	if _, err := svc.Authenticate(ctx, "admin", "wrong"); err == nil {
		t.Fatal("wrong password should fail")
	}
	if _, err := svc.Authenticate(ctx, "nobody", "s3cret"); err == nil {
		t.Fatal("unknown user should fail")
	}
}

func TestTokenLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	tok, raw, err := svc.CreateToken(ctx, "u1", "ci", "editor", nil)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	if raw == "" || tok.TokenHash == raw {
		t.Fatal("raw token should not be stored")
	}

	got, err := svc.ValidateToken(ctx, raw)
	if err != nil || got.ID != tok.ID {
		t.Fatalf("ValidateToken: %+v, %v", got, err)
	}
	if _, err := svc.ValidateToken(ctx, "bogus"); err == nil {
		t.Fatal("bogus token should fail")
	}

	past := time.Now().Add(-time.Minute)
	_, rawExpired, err := svc.CreateToken(ctx, "u1", "old", "editor", &past)
	if err != nil {
		t.Fatalf("CreateToken expired: %v", err)
	}
	if _, err := svc.ValidateToken(ctx, rawExpired); err == nil {
		t.Fatal("expired token should fail")
	}
}

func TestEnforceDefaultPolicies(t *testing.T) {
	svc := newTestService(t)

	cases := []struct {
		sub, obj, act string
		want          bool
	}{
		{"admin", "email", "write", true},
		{"admin", "anything", "delete", true},
		{"editor", "email", "write", true},
		{"editor", "subscriptions", "read", true},
		{"viewer", "email", "read", true},
		{"viewer", "email", "write", false},
		{"viewer", "subscriptions", "write", false},
		{"stranger", "email", "read", false},
	}
	for _, tc := range cases {
		ok, err := svc.Enforce(tc.sub, tc.obj, tc.act)
		if err != nil {
			t.Fatalf("Enforce(%s,%s,%s): %v", tc.sub, tc.obj, tc.act, err)
		}
		if ok != tc.want {
			t.Errorf("Enforce(%s,%s,%s) = %v, want %v", tc.sub, tc.obj, tc.act, ok, tc.want)
		}
	}
}

func TestParseExpirationDuration(t *testing.T) {
	if exp, err := ParseExpirationDuration("never"); err != nil || exp != nil {
		t.Fatalf("never = %v, %v", exp, err)
	}
	if exp, err := ParseExpirationDuration(""); err != nil || exp != nil {
		t.Fatalf("empty = %v, %v", exp, err)
	}

	exp, err := ParseExpirationDuration("30d")
	if err != nil || exp == nil {
		t.Fatalf("30d: %v, %v", exp, err)
	}
	want := time.Now().Add(30 * 24 * time.Hour)
	if diff := exp.Sub(want); diff < -time.Minute || diff > time.Minute {
		t.Fatalf("30d off by %v", diff)
	}

	if exp, err := ParseExpirationDuration("2h30m"); err != nil || exp == nil {
		t.Fatalf("go duration: %v, %v", exp, err)
	}

	if exp, err := ParseExpirationDuration("12/25/2116 14:30"); err != nil || exp == nil {
		t.Fatalf("custom date: %v, %v", exp, err)
	} else if exp.Hour() != 14 || exp.Minute() != 30 {
		t.Fatalf("custom date time = %v", exp)
	}

	if _, err := ParseExpirationDuration("01/01/2001"); err == nil {
		t.Fatal("past date should fail")
	}
	if _, err := ParseExpirationDuration("banana"); err == nil {
		t.Fatal("garbage should fail")
	}
}
