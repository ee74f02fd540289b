package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/samaladyasa/spice-and-soul-backend/internal/api/dto"
	"github.com/samaladyasa/spice-and-soul-backend/internal/service"
	apperrors "github.com/samaladyasa/spice-and-soul-backend/pkg/util"
)

// CognitoHandler exposes the federated (user pool) auth endpoints.
type CognitoHandler struct {
	cognito  *service.CognitoService
	validate *validator.Validate
}

// NewCognitoHandler constructs handler.
func NewCognitoHandler(cognitoService *service.CognitoService, validate *validator.Validate) *CognitoHandler {
	return &CognitoHandler{cognito: cognitoService, validate: validate}
}

// Signup handles POST /auth/cognito/signup.
func (h *CognitoHandler) Signup(c *fiber.Ctx) error {
	var req dto.CognitoSignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.NewValidationError("Email and password required", nil)
	}

	if err := h.cognito.SignUp(c.UserContext(), req.Email, req.Password, req.Name); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Verification code sent to email",
	})
}

// ConfirmSignup handles POST /auth/cognito/confirm.
func (h *CognitoHandler) ConfirmSignup(c *fiber.Ctx) error {
	var req dto.CognitoConfirmRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.NewValidationError("Email and code required", nil)
	}

	if err := h.cognito.ConfirmSignUp(c.UserContext(), req.Email, req.Code); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Account verified. You can now log in.",
	})
}

// Login handles POST /auth/cognito/login.
func (h *CognitoHandler) Login(c *fiber.Ctx) error {
	var req dto.CognitoLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.NewValidationError("Email and password required", nil)
	}

	tokens, err := h.cognito.SignIn(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success":      true,
		"token":        tokens.IDToken,
		"accessToken":  tokens.AccessToken,
		"refreshToken": tokens.RefreshToken,
	})
}

// ForgotPassword handles POST /auth/cognito/forgot-password.
func (h *CognitoHandler) ForgotPassword(c *fiber.Ctx) error {
	var req dto.CognitoForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.NewValidationError("Email required", nil)
	}

	if err := h.cognito.ForgotPassword(c.UserContext(), req.Email); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Password reset code sent to your email",
	})
}

// ConfirmForgotPassword handles POST /auth/cognito/confirm-forgot-password.
func (h *CognitoHandler) ConfirmForgotPassword(c *fiber.Ctx) error {
	var req dto.CognitoConfirmForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.NewValidationError("Email, code, and newPassword are required", nil)
	}

	if err := h.cognito.ConfirmForgotPassword(c.UserContext(), req.Email, req.Code, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Password reset successfully. You can now log in.",
	})
}
