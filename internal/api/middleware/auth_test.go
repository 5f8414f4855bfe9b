package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nvales/watchdex/internal/api/middleware"
	"github.com/nvales/watchdex/internal/domain"
	"github.com/nvales/watchdex/internal/security"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubResolver struct {
	user *domain.User
	err  error
}

func (s *stubResolver) ResolvePrincipal(ctx context.Context, subject string) (*domain.User, error) {
	return s.user, s.err
}

func newManager() *security.JWTManager {
	return security.NewJWTManager(
		"access-secret-key-with-32-chars!",
		"refresh-secret-key-with-32-char!",
		15*time.Minute,
		7*24*time.Hour,
	)
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Success {
		t.Error("expected success to be false")
	}
	return body.Error
}

func TestAuthenticate_NoToken(t *testing.T) {
	m := middleware.NewAuthMiddleware(newManager(), &stubResolver{})

	called := false
	h := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
	if got := errorBody(t, rec); got != "No token provided" {
		t.Errorf("error mismatch: got %q, want %q", got, "No token provided")
	}
	if called {
		t.Error("handler should not have been called")
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	manager := newManager()
	m := middleware.NewAuthMiddleware(manager, &stubResolver{})

	other := security.NewJWTManager(
		"other-access-key-with-32-chars!!",
		"other-refresh-key-with-32-chars!",
		15*time.Minute,
		7*24*time.Hour,
	)
	wrongSecret, _ := other.GenerateAccessToken(primitive.NewObjectID().Hex())

	for name, token := range map[string]string{
		"garbage":      "not-a-jwt",
		"wrong secret": wrongSecret,
	} {
		t.Run(name, func(t *testing.T) {
			called := false
			h := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			}))

			req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
			}
			if got := errorBody(t, rec); got != "Invalid token" {
				t.Errorf("error mismatch: got %q, want %q", got, "Invalid token")
			}
			if called {
				t.Error("handler should not have been called")
			}
		})
	}
}

func TestAuthenticate_UserNotFound(t *testing.T) {
	manager := newManager()
	m := middleware.NewAuthMiddleware(manager, &stubResolver{err: domain.ErrUserNotFound})

	token, err := manager.GenerateAccessToken(primitive.NewObjectID().Hex())
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	called := false
	h := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
	if got := errorBody(t, rec); got != "User not found" {
		t.Errorf("error mismatch: got %q, want %q", got, "User not found")
	}
	if called {
		t.Error("handler should not have been called")
	}
}

func TestAuthenticate_AttachesPrincipal(t *testing.T) {
	manager := newManager()
	user := &domain.User{
		ID:    primitive.NewObjectID(),
		Email: "test@example.com",
		Name:  "Test User",
	}
	m := middleware.NewAuthMiddleware(manager, &stubResolver{user: user})

	token, err := manager.GenerateAccessToken(user.ID.Hex())
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	called := false
	h := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		principal, ok := middleware.Principal(r.Context())
		if !ok {
			t.Fatal("principal missing from context")
		}
		if principal.ID != user.ID {
			t.Errorf("principal mismatch: got %v, want %v", principal.ID, user.ID)
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if !called {
		t.Fatal("handler was not called")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}
