package handlers

import (
	"popfix-backend/internal/middleware"
	"popfix-backend/internal/services"
	"popfix-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UserHandler struct {
	service services.UserService
	logger  *logrus.Logger
}

func NewUserHandler(service services.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Create a user account with a bcrypt-hashed password
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration payload"
// @Success 201 {object} utils.StandardResponse "Created user"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /users/register [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	ctx := c.Context()

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := h.service.Register(ctx, services.RegisterInput{
		Email:    req.Email,
		Name:     req.Name,
		Surname:  req.Surname,
		Age:      req.Age,
		Password: req.Password,
	})
	if err != nil {
		if services.IsValidationError(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		h.logger.WithError(err).WithField("email", req.Email).Error("Failed to register user")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to register user")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "User registered successfully", user)
}

// Login godoc
// @Summary Log in
// @Description Verify credentials and return a signed JWT
// @Tags users
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} utils.StandardResponse "Token and user"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 401 {object} utils.StandardResponse "Invalid credentials"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /users/login [post]
func (h *UserHandler) Login(c *fiber.Ctx) error {
	ctx := c.Context()

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Email and password are required")
	}

	result, err := h.service.Login(ctx, req.Email, req.Password)
	if err != nil {
		if services.IsValidationError(err) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		h.logger.WithError(err).WithField("email", req.Email).Error("Failed to log in user")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to log in")
	}
	if result == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Login successful", result)
}

// Logout godoc
// @Summary Log out
// @Description Acknowledge logout; tokens are stateless, so the client just discards its copy
// @Tags users
// @Produce json
// @Success 200 {object} utils.StandardResponse "Logged out"
// @Router /users/logout [post]
func (h *UserHandler) Logout(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, "Logout successful", nil)
}

// GetUser godoc
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} utils.StandardResponse "User"
// @Failure 404 {object} utils.StandardResponse "User not found"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	ctx := c.Context()

	id := c.Params("id")
	user, err := h.service.GetUser(ctx, id)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to get user")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve user")
	}
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "User retrieved successfully", user)
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {object} utils.StandardResponse "Users"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	ctx := c.Context()

	users, err := h.service.ListUsers(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list users")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve users")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Users retrieved successfully", users)
}

// UpdateUser godoc
// @Summary Update a user
// @Description Update profile fields; only the fields present in the body change
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body UpdateUserRequest true "Fields to update"
// @Success 200 {object} utils.StandardResponse "Updated user"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 404 {object} utils.StandardResponse "User not found"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	ctx := c.Context()

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	id := c.Params("id")
	user, err := h.service.UpdateUser(ctx, id, services.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Age:      req.Age,
		Password: req.Password,
	})
	if err != nil {
		if services.IsValidationError(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to update user")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update user")
	}
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "User updated successfully", user)
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} utils.StandardResponse "User deleted"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	ctx := c.Context()

	id := c.Params("id")
	if err := h.service.DeleteUser(ctx, id); err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to delete user")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete user")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "User deleted successfully", nil)
}

// ChangePassword godoc
// @Summary Change password
// @Description Change the authenticated user's password after verifying the current one
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "Old and new passwords"
// @Success 200 {object} utils.StandardResponse "Password changed"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 401 {object} utils.StandardResponse "Missing or invalid token"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /users/change-password [post]
func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	ctx := c.Context()

	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.service.ChangePassword(ctx, claims.UserID, req.OldPassword, req.NewPassword); err != nil {
		if services.IsValidationError(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		h.logger.WithError(err).WithField("user_id", claims.UserID).Error("Failed to change password")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to change password")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Password changed successfully", nil)
}
