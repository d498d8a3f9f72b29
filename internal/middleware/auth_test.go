package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"popfix-backend/internal/auth"
	"popfix-backend/internal/config"

	"github.com/gofiber/fiber/v2"
)

func newAuthTestApp(t *testing.T) (*fiber.App, *auth.TokenManager) {
	t.Helper()
	tokens, err := auth.NewTokenManager(&config.JWTConfig{
		Secret:        "middleware-test-secret",
		TokenTTL:      time.Hour,
		ResetTokenTTL: 15 * time.Minute,
	})
	if err != nil {
		t.Fatalf("NewTokenManager: %v", err)
	}

	app := fiber.New()
	app.Get("/protected", RequireAuth(tokens), func(c *fiber.Ctx) error {
		claims := ClaimsFrom(c)
		if claims == nil {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendString(claims.UserID)
	})
	return app, tokens
}

func TestRequireAuthAcceptsBearerToken(t *testing.T) {
	app, tokens := newAuthTestApp(t)

	token, err := tokens.GenerateToken("u1", "ana@example.com", "Ana")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestRequireAuthRejectsMalformedHeaders(t *testing.T) {
	app, tokens := newAuthTestApp(t)

	token, err := tokens.GenerateToken("u1", "ana@example.com", "Ana")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"bare token without scheme", token},
		{"scheme glued to token", "Bearer" + token},
		{"wrong scheme", "Basic " + token},
		{"scheme only", "Bearer "},
		{"garbage token", "Bearer not.a.token"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest("GET", "/protected", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s: app.Test: %v", tc.name, err)
		}
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Errorf("%s: status = %d, want 401", tc.name, resp.StatusCode)
		}
	}
}
