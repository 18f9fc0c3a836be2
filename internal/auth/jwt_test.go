package auth

import (
	"testing"
	"time"
)

func TestMintAndParseToken(t *testing.T) {
	token, err := MintToken(42, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("MintToken failed: %v", err)
	}

	claims, err := ParseClaims(token, "test-secret")
	if err != nil {
		t.Fatalf("ParseClaims failed: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("Expected user ID 42, got %d", claims.UserID)
	}
}

func TestParseClaimsRejections(t *testing.T) {
	valid, err := MintToken(1, "secret", time.Hour)
	if err != nil {
		t.Fatalf("MintToken failed: %v", err)
	}

	expired, err := MintToken(1, "secret", -time.Minute)
	if err != nil {
		t.Fatalf("MintToken failed: %v", err)
	}

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{"wrong secret", valid, "other-secret"},
		{"expired token", expired, "secret"},
		{"malformed token", "not.a.token", "secret"},
		{"empty token", "", "secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseClaims(tt.token, tt.secret); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}
