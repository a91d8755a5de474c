package entity

import (
	"testing"
	"time"
)

func TestValidateUsername(t *testing.T) {
	cases := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"empty", "", true},
		{"one rune", "a", true},
		{"two runes", "ab", true},
		{"minimum length", "abc", false},
		{"typical", "reader_42", false},
		{"multibyte counted as runes", "ラー", true},
		{"three multibyte runes", "ラーメ", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateUsername(tc.value)
			if tc.wantErr && err == nil {
				t.Fatalf("ValidateUsername(%q) = nil, want error", tc.value)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("ValidateUsername(%q) = %v, want nil", tc.value, err)
			}
		})
	}
}

func TestValidateYear(t *testing.T) {
	current := time.Now().Year()

	if err := ValidateYear(current); err != nil {
		t.Fatalf("current year rejected: %v", err)
	}
	if err := ValidateYear(current - 100); err != nil {
		t.Fatalf("past year rejected: %v", err)
	}
	if err := ValidateYear(current + 1); err == nil {
		t.Fatal("future year accepted")
	}
}

func TestValidRole(t *testing.T) {
	for _, role := range []UserRole{RoleAdmin, RoleModerator, RoleUser} {
		if !ValidRole(string(role)) {
			t.Fatalf("ValidRole(%q) = false", role)
		}
	}
	if ValidRole("superhero") {
		t.Fatal("unknown role accepted")
	}
}

func TestUserCanModerate(t *testing.T) {
	cases := []struct {
		role      UserRole
		superuser bool
		want      bool
	}{
		{RoleAdmin, false, true},
		{RoleModerator, false, true},
		{RoleUser, false, false},
		{RoleUser, true, true},
	}

	for _, tc := range cases {
		u := User{Role: tc.role, IsSuperuser: tc.superuser}
		if got := u.CanModerate(); got != tc.want {
			t.Fatalf("CanModerate() role=%s superuser=%v = %v, want %v",
				tc.role, tc.superuser, got, tc.want)
		}
	}
}
