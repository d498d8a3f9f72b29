package services

import (
	"context"
	"testing"
	"time"

	"popfix-backend/internal/auth"
	"popfix-backend/internal/config"
	"popfix-backend/internal/models"
)

type fakeUserRepo struct {
	byID    map[string]*models.User
	byEmail map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*models.User),
		byEmail: make(map[string]*models.User),
	}
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	f.byID[user.ID] = user
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	return f.byID[id], nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) FindAll(_ context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range f.byID {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	f.byID[user.ID] = user
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) UpdatePasswordByEmail(_ context.Context, email, hashedPassword string) error {
	if u, ok := f.byEmail[email]; ok {
		u.Password = hashedPassword
	}
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	if u, ok := f.byID[id]; ok {
		delete(f.byEmail, u.Email)
		delete(f.byID, id)
	}
	return nil
}

type fakeMailer struct {
	sentTo     []string
	sentTokens []string
}

func (f *fakeMailer) SendResetPasswordEmail(_ context.Context, to, token string) error {
	f.sentTo = append(f.sentTo, to)
	f.sentTokens = append(f.sentTokens, token)
	return nil
}

func testTokenManager(t *testing.T) *auth.TokenManager {
	t.Helper()
	tokens, err := auth.NewTokenManager(&config.JWTConfig{
		Secret:        "test-secret-key",
		TokenTTL:      time.Hour,
		ResetTokenTTL: 15 * time.Minute,
	})
	if err != nil {
		t.Fatalf("NewTokenManager: %v", err)
	}
	return tokens
}

func newUserServiceForTest(t *testing.T) (UserService, *fakeUserRepo, *fakeMailer) {
	t.Helper()
	repo := newFakeUserRepo()
	mailer := &fakeMailer{}
	svc := NewUserService(repo, testTokenManager(t), mailer, testLogger())
	return svc, repo, mailer
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _, _ := newUserServiceForTest(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{
		Email:    "ana@example.com",
		Name:     "Ana",
		Surname:  "Lopez",
		Age:      28,
		Password: "segura123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == "" {
		t.Fatal("Register did not assign an id")
	}
	if user.Password == "segura123" {
		t.Fatal("Register stored the password in plain text")
	}

	result, err := svc.Login(ctx, "ana@example.com", "segura123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result == nil || result.Token == "" {
		t.Fatalf("Login result = %+v, want token", result)
	}

	if _, err := svc.Login(ctx, "ana@example.com", "wrongpass1"); !IsValidationError(err) {
		t.Fatalf("Login with wrong password returned %v, want validation error", err)
	}

	unknown, err := svc.Login(ctx, "nobody@example.com", "segura123")
	if err != nil || unknown != nil {
		t.Fatalf("Login with unknown email = (%+v, %v), want (nil, nil)", unknown, err)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _, _ := newUserServiceForTest(t)
	ctx := context.Background()

	input := RegisterInput{
		Email:    "ana@example.com",
		Name:     "Ana",
		Password: "segura123",
	}
	if _, err := svc.Register(ctx, input); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Register(ctx, input); !IsValidationError(err) {
		t.Fatalf("second Register returned %v, want validation error", err)
	}
}

func TestRegisterPasswordRules(t *testing.T) {
	svc, _, _ := newUserServiceForTest(t)
	ctx := context.Background()

	cases := []struct {
		name     string
		password string
	}{
		{"too short", "ab1"},
		{"no digit", "soloespalabras"},
		{"no letter", "12345678"},
		{"sql keyword", "DROP tabla99"},
		{"quote char", "pass'word1"},
	}
	for _, tc := range cases {
		_, err := svc.Register(ctx, RegisterInput{
			Email:    "ana@example.com",
			Name:     "Ana",
			Password: tc.password,
		})
		if !IsValidationError(err) {
			t.Errorf("%s: Register returned %v, want validation error", tc.name, err)
		}
	}
}

func TestForgotAndResetPassword(t *testing.T) {
	svc, _, mailer := newUserServiceForTest(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{
		Email:    "ana@example.com",
		Name:     "Ana",
		Password: "segura123",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := svc.ForgotPassword(ctx, "ana@example.com"); err != nil {
		t.Fatalf("ForgotPassword: %v", err)
	}
	if len(mailer.sentTokens) != 1 {
		t.Fatalf("ForgotPassword sent %d emails, want 1", len(mailer.sentTokens))
	}

	if err := svc.ResetPassword(ctx, mailer.sentTokens[0], "renovada456"); err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}

	result, err := svc.Login(ctx, "ana@example.com", "renovada456")
	if err != nil || result == nil {
		t.Fatalf("Login after reset = (%+v, %v), want success", result, err)
	}

	if err := svc.ResetPassword(ctx, "not-a-token", "renovada456"); !IsValidationError(err) {
		t.Fatalf("ResetPassword with bogus token returned %v, want validation error", err)
	}
}

func TestChangePassword(t *testing.T) {
	svc, _, _ := newUserServiceForTest(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{
		Email:    "ana@example.com",
		Name:     "Ana",
		Password: "segura123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := svc.ChangePassword(ctx, user.ID, "equivocada9", "renovada456"); !IsValidationError(err) {
		t.Fatalf("ChangePassword with wrong old password returned %v, want validation error", err)
	}

	if err := svc.ChangePassword(ctx, user.ID, "segura123", "renovada456"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
	if result, err := svc.Login(ctx, "ana@example.com", "renovada456"); err != nil || result == nil {
		t.Fatalf("Login after change = (%+v, %v), want success", result, err)
	}
}
