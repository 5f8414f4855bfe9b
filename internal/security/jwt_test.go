package security_test

import (
	"testing"
	"time"

	"github.com/nvales/watchdex/internal/security"
)

const (
	testAccessSecret  = "access-secret-key-with-32-chars!"
	testRefreshSecret = "refresh-secret-key-with-32-char!"
)

func newTestManager() *security.JWTManager {
	return security.NewJWTManager(testAccessSecret, testRefreshSecret, 15*time.Minute, 7*24*time.Hour)
}

func TestJWTManager_GenerateAndValidate(t *testing.T) {
	manager := newTestManager()
	subject := "64f1c0ffee0ddba11ca7a1e5"

	accessToken, err := manager.GenerateAccessToken(subject)
	if err != nil {
		t.Fatalf("failed to generate access token: %v", err)
	}

	if accessToken == "" {
		t.Error("access token is empty")
	}

	got, err := manager.ValidateAccessToken(accessToken)
	if err != nil {
		t.Fatalf("failed to validate access token: %v", err)
	}

	if got != subject {
		t.Errorf("subject mismatch: got %v, want %v", got, subject)
	}
}

func TestJWTManager_GenerateTokenPair(t *testing.T) {
	manager := newTestManager()
	subject := "64f1c0ffee0ddba11ca7a1e5"

	accessToken, refreshToken, err := manager.GenerateTokenPair(subject)
	if err != nil {
		t.Fatalf("failed to generate token pair: %v", err)
	}

	if accessToken == "" {
		t.Error("access token is empty")
	}

	if refreshToken == "" {
		t.Error("refresh token is empty")
	}

	got, err := manager.ValidateRefreshToken(refreshToken)
	if err != nil {
		t.Fatalf("failed to validate refresh token: %v", err)
	}

	if got != subject {
		t.Errorf("subject from refresh token mismatch: got %v, want %v", got, subject)
	}
}

func TestJWTManager_PurposeMismatch(t *testing.T) {
	manager := newTestManager()
	subject := "64f1c0ffee0ddba11ca7a1e5"

	accessToken, refreshToken, err := manager.GenerateTokenPair(subject)
	if err != nil {
		t.Fatalf("failed to generate token pair: %v", err)
	}

	// A refresh token must never pass access validation, and vice versa.
	if _, err := manager.ValidateAccessToken(refreshToken); err == nil {
		t.Error("expected error validating refresh token as access token, got nil")
	}

	if _, err := manager.ValidateRefreshToken(accessToken); err == nil {
		t.Error("expected error validating access token as refresh token, got nil")
	}
}

func TestJWTManager_InvalidToken(t *testing.T) {
	manager := newTestManager()

	// Invalid token format
	if _, err := manager.ValidateAccessToken("invalid-token"); err == nil {
		t.Error("expected error for invalid token, got nil")
	}

	// Empty token
	if _, err := manager.ValidateAccessToken(""); err == nil {
		t.Error("expected error for empty token, got nil")
	}

	// Token signed with different secrets
	otherManager := security.NewJWTManager(
		"different-access-key-32-chars!!!",
		"different-refresh-key-32-chars!!",
		15*time.Minute,
		7*24*time.Hour,
	)
	token, _ := otherManager.GenerateAccessToken("64f1c0ffee0ddba11ca7a1e5")

	if _, err := manager.ValidateAccessToken(token); err == nil {
		t.Error("expected error for token signed with different secret, got nil")
	}
}

func TestJWTManager_ExpiredToken(t *testing.T) {
	manager := security.NewJWTManager(testAccessSecret, testRefreshSecret, -time.Minute, -time.Minute)

	accessToken, refreshToken, err := manager.GenerateTokenPair("64f1c0ffee0ddba11ca7a1e5")
	if err != nil {
		t.Fatalf("failed to generate token pair: %v", err)
	}

	if _, err := manager.ValidateAccessToken(accessToken); err == nil {
		t.Error("expected error for expired access token, got nil")
	}

	if _, err := manager.ValidateRefreshToken(refreshToken); err == nil {
		t.Error("expected error for expired refresh token, got nil")
	}
}

func TestJWTManager_AccessTokenTTL(t *testing.T) {
	accessTTL := 30 * time.Minute
	manager := security.NewJWTManager(testAccessSecret, testRefreshSecret, accessTTL, 7*24*time.Hour)

	if manager.AccessTokenTTL() != accessTTL {
		t.Errorf("access token TTL mismatch: got %v, want %v", manager.AccessTokenTTL(), accessTTL)
	}
}
