package handlers

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"popfix-backend/internal/auth"
	"popfix-backend/internal/middleware"
	"popfix-backend/internal/models"
	"popfix-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

type fakeUserService struct {
	changeUserID string
	changeOld    string
	changeNew    string
	changeErr    error
}

func (f *fakeUserService) Register(_ context.Context, _ services.RegisterInput) (*models.User, error) {
	return nil, nil
}

func (f *fakeUserService) Login(_ context.Context, _, _ string) (*services.LoginResult, error) {
	return nil, nil
}

func (f *fakeUserService) GetUser(_ context.Context, _ string) (*models.User, error) {
	return nil, nil
}

func (f *fakeUserService) ListUsers(_ context.Context) ([]models.User, error) {
	return nil, nil
}

func (f *fakeUserService) UpdateUser(_ context.Context, _ string, _ services.UpdateUserInput) (*models.User, error) {
	return nil, nil
}

func (f *fakeUserService) DeleteUser(_ context.Context, _ string) error {
	return nil
}

func (f *fakeUserService) ChangePassword(_ context.Context, id, oldPassword, newPassword string) error {
	f.changeUserID = id
	f.changeOld = oldPassword
	f.changeNew = newPassword
	if f.changeErr != nil {
		return f.changeErr
	}
	return nil
}

func (f *fakeUserService) ForgotPassword(_ context.Context, _ string) error {
	return nil
}

func (f *fakeUserService) ResetPassword(_ context.Context, _, _ string) error {
	return nil
}

func newChangePasswordTestApp(svc services.UserService) *fiber.App {
	app := fiber.New()
	h := NewUserHandler(svc, handlerTestLogger())
	app.Post("/users/change-password", func(c *fiber.Ctx) error {
		c.Locals(middleware.ClaimsKey, &auth.Claims{UserID: "u1"})
		return c.Next()
	}, h.ChangePassword)
	return app
}

func TestChangePasswordForwardsOldPasswordField(t *testing.T) {
	svc := &fakeUserService{}
	app := newChangePasswordTestApp(svc)

	body := `{"oldPassword":"segura123","newPassword":"renovada456"}`
	req := httptest.NewRequest("POST", "/users/change-password", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	if svc.changeUserID != "u1" {
		t.Fatalf("user id = %q, want u1", svc.changeUserID)
	}
	if svc.changeOld != "segura123" || svc.changeNew != "renovada456" {
		t.Fatalf("passwords = (%q, %q), want (segura123, renovada456)", svc.changeOld, svc.changeNew)
	}
}

func TestChangePasswordIgnoresUnknownFieldNames(t *testing.T) {
	svc := &fakeUserService{changeErr: services.NewValidationError("old and new passwords are required")}
	app := newChangePasswordTestApp(svc)

	body := `{"currentPassword":"segura123","newPassword":"renovada456"}`
	req := httptest.NewRequest("POST", "/users/change-password", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	if svc.changeOld != "" {
		t.Fatalf("old password = %q, want empty for an unknown field name", svc.changeOld)
	}
}
