package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

const testSecret = "test-secret-key"

func TestGenerateAndParseToken(t *testing.T) {
	userID := uuid.New().String()

	token, err := GenerateToken(userID, "reviewer", "moderator", false, true, testSecret, 1)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(token, testSecret)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}

	if claims.UserID != userID {
		t.Errorf("UserID = %q, want %q", claims.UserID, userID)
	}
	if claims.Username != "reviewer" {
		t.Errorf("Username = %q, want reviewer", claims.Username)
	}
	if claims.Role != "moderator" {
		t.Errorf("Role = %q, want moderator", claims.Role)
	}
	if claims.Superuser {
		t.Error("Superuser = true, want false")
	}
	if !claims.Active {
		t.Error("Active = false, want true")
	}
	if claims.Subject != userID {
		t.Errorf("Subject = %q, want %q", claims.Subject, userID)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(uuid.New().String(), "reviewer", "user", false, true, testSecret, 1)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ParseToken(token, "other-secret"); err == nil {
		t.Fatal("token accepted with wrong secret")
	}
}

func TestParseTokenGarbage(t *testing.T) {
	if _, err := ParseToken("not.a.token", testSecret); err == nil {
		t.Fatal("garbage token accepted")
	}
}

func TestGenerateTokenEmptySecret(t *testing.T) {
	if _, err := GenerateToken(uuid.New().String(), "reviewer", "user", false, true, "", 1); err == nil {
		t.Fatal("token minted without a secret")
	}
}

func TestGenerateConfirmationCode(t *testing.T) {
	code, err := GenerateConfirmationCode(5)
	if err != nil {
		t.Fatalf("GenerateConfirmationCode: %v", err)
	}
	if len(code) != 5 {
		t.Fatalf("code length = %d, want 5", len(code))
	}
	if strings.Trim(code, "0123456789") != "" {
		t.Fatalf("code %q contains non-digits", code)
	}
}

func TestCodeHashRoundTrip(t *testing.T) {
	hash, err := HashCode("12345")
	if err != nil {
		t.Fatalf("HashCode: %v", err)
	}

	if !CheckCodeHash("12345", hash) {
		t.Error("correct code rejected")
	}
	if CheckCodeHash("54321", hash) {
		t.Error("wrong code accepted")
	}
}
