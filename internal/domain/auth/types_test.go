package auth

import (
	"testing"
	"time"
)

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"admin":        RoleAdmin,
		" Power_User ": RolePowerUser,
		"USER":         RoleUser,
		"guest":        Role("guest"),
	}
	for raw, want := range cases {
		if got := ParseRole(raw); got != want {
			t.Fatalf("ParseRole(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestRole_Known(t *testing.T) {
	if !RolePowerUser.Known() {
		t.Fatalf("expected power_user to be known")
	}
	if Role("guest").Known() {
		t.Fatalf("did not expect guest to be known")
	}
}

func TestRole_Dashboard(t *testing.T) {
	if RoleAdmin.Dashboard() != DashboardAdmin {
		t.Fatalf("admin dashboard mismatch")
	}
	if RolePowerUser.Dashboard() != DashboardPowerUser {
		t.Fatalf("power user dashboard mismatch")
	}
	if RoleUser.Dashboard() != DashboardUser {
		t.Fatalf("user dashboard mismatch")
	}
	if Role("guest").Dashboard() != DashboardNone {
		t.Fatalf("unknown role should have no dashboard")
	}
}

func TestSession_Expired(t *testing.T) {
	now := time.Now()
	if (Session{}).Expired(now) {
		t.Fatalf("zero expiry never expires")
	}
	if !(Session{ExpiresAt: now.Add(-time.Second)}).Expired(now) {
		t.Fatalf("expected expired")
	}
	if (Session{ExpiresAt: now.Add(time.Hour)}).Expired(now) {
		t.Fatalf("did not expect expired")
	}
}
