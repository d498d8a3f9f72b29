package services

import (
	"context"
	"regexp"

	"popfix-backend/internal/auth"
	"popfix-backend/internal/models"
	"popfix-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

var (
	emailPattern        = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	letterPattern       = regexp.MustCompile(`[a-zA-Z]`)
	digitPattern        = regexp.MustCompile(`[0-9]`)
	forbiddenSQLPattern = regexp.MustCompile(`(?i)\b(SELECT|INSERT|UPDATE|DELETE|DROP|CREATE|UNION)\b`)
	forbiddenCharset    = regexp.MustCompile("['\"`;\\\\]")
)

type RegisterInput struct {
	Email    string
	Name     string
	Surname  string
	Age      int
	Password string
}

type UpdateUserInput struct {
	Name     *string
	Email    *string
	Age      *int
	Password *string
}

// LoginResult bundles the issued token with the safe view of the user.
type LoginResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
	ChangePassword(ctx context.Context, id, oldPassword, newPassword string) error

	// ForgotPassword emails a short-lived reset token to the user.
	ForgotPassword(ctx context.Context, email string) error
	// ResetPassword consumes a reset token and stores the new password.
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type userService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
	mailer   Mailer
	logger   *logrus.Logger
}

func NewUserService(userRepo repository.UserRepository, tokens *auth.TokenManager, mailer Mailer, logger *logrus.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		tokens:   tokens,
		mailer:   mailer,
		logger:   logger,
	}
}

func (s *userService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	if input.Email == "" || input.Name == "" || input.Password == "" {
		return nil, NewValidationError("name, email and password are required")
	}
	if !emailPattern.MatchString(input.Email) {
		return nil, NewValidationError("invalid email")
	}
	if input.Age < 0 || input.Age > 120 {
		return nil, NewValidationError("invalid age")
	}
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, NewValidationError("email is already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:       uuid.New().String(),
		Email:    input.Email,
		Name:     input.Name,
		Surname:  input.Surname,
		Age:      input.Age,
		Password: string(hashed),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.WithField("user_id", user.ID).Info("User registered")
	return user, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, NewValidationError("email and password are required")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, NewValidationError("incorrect password")
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, User: user}, nil
}

func (s *userService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.FindAll(ctx)
}

func (s *userService) UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	if input.Name != nil && *input.Name != "" {
		user.Name = *input.Name
	}
	if input.Email != nil && *input.Email != "" {
		if !emailPattern.MatchString(*input.Email) {
			return nil, NewValidationError("invalid email")
		}
		user.Email = *input.Email
	}
	if input.Age != nil {
		if *input.Age < 0 || *input.Age > 120 {
			return nil, NewValidationError("invalid age")
		}
		user.Age = *input.Age
	}
	if input.Password != nil && *input.Password != "" {
		if err := validatePassword(*input.Password); err != nil {
			return nil, err
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return NewValidationError("user not found")
	}
	return s.userRepo.Delete(ctx, id)
}

func (s *userService) ChangePassword(ctx context.Context, id, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return NewValidationError("old and new passwords are required")
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return NewValidationError("user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return NewValidationError("incorrect password")
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePasswordByEmail(ctx, user.Email, string(hashed))
}

func (s *userService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return NewValidationError("user not found")
	}

	token, err := s.tokens.GenerateResetToken(email)
	if err != nil {
		return err
	}

	if err := s.mailer.SendResetPasswordEmail(ctx, email, token); err != nil {
		return err
	}

	s.logger.WithField("email", email).Info("Password reset email sent")
	return nil
}

func (s *userService) ResetPassword(ctx context.Context, token, newPassword string) error {
	email, err := s.tokens.ValidateResetToken(token)
	if err != nil {
		return NewValidationError("invalid or expired token")
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePasswordByEmail(ctx, email, string(hashed))
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return NewValidationError("password must be at least 8 characters long")
	}
	if forbiddenSQLPattern.MatchString(password) || forbiddenCharset.MatchString(password) {
		return NewValidationError("password contains forbidden characters or patterns")
	}
	if !letterPattern.MatchString(password) || !digitPattern.MatchString(password) {
		return NewValidationError("password must contain at least one letter and one digit")
	}
	return nil
}
