package handlers

import (
	"popfix-backend/internal/services"
	"popfix-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// AuthHandler serves the password reset flow.
type AuthHandler struct {
	service services.UserService
	logger  *logrus.Logger
}

func NewAuthHandler(service services.UserService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger,
	}
}

// ForgotPassword godoc
// @Summary Request a password reset
// @Description Email the user a short-lived reset token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ForgotPasswordRequest true "Account email"
// @Success 200 {object} utils.StandardResponse "Reset email sent"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	ctx := c.Context()

	var req ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Email == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Email is required")
	}

	if err := h.service.ForgotPassword(ctx, req.Email); err != nil {
		if services.IsValidationError(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		h.logger.WithError(err).WithField("email", req.Email).Error("Failed to send reset email")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to send reset email")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Reset email sent successfully", nil)
}

// ResetPassword godoc
// @Summary Reset password
// @Description Consume a reset token and store the new password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ResetPasswordRequest true "Reset token and new password"
// @Success 200 {object} utils.StandardResponse "Password reset"
// @Failure 400 {object} utils.StandardResponse "Invalid token or password"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	ctx := c.Context()

	var req ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Token == "" || req.NewPassword == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Token and new password are required")
	}

	if err := h.service.ResetPassword(ctx, req.Token, req.NewPassword); err != nil {
		if services.IsValidationError(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		h.logger.WithError(err).Error("Failed to reset password")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to reset password")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Password reset successfully", nil)
}
