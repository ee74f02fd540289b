package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/samaladyasa/spice-and-soul-backend/internal/api/dto"
	"github.com/samaladyasa/spice-and-soul-backend/internal/service"
	apperrors "github.com/samaladyasa/spice-and-soul-backend/pkg/util"
)

// AuthHandler exposes the custom signup/login and password-reset endpoints.
type AuthHandler struct {
	auth     *service.AuthService
	validate *validator.Validate
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{auth: authService, validate: validate}
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.NewValidationError(signupValidationMessage(err), nil)
	}

	user, token, exp, err := h.auth.Signup(c.UserContext(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Account created successfully",
		"user": dto.UserResponse{
			UserID: user.UserID,
			Email:  user.Email,
			Name:   user.Name,
		},
		"token":     token,
		"expiresIn": h.expiresIn(),
		"expiresAt": exp,
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.NewValidationError("Email and password are required", nil)
	}

	user, token, exp, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"user": dto.UserResponse{
			UserID: user.UserID,
			Email:  user.Email,
			Name:   user.Name,
		},
		"token":     token,
		"expiresIn": h.expiresIn(),
		"expiresAt": exp,
	})
}

// SendResetCode handles POST /auth/send-reset-code.
func (h *AuthHandler) SendResetCode(c *fiber.Ctx) error {
	var req dto.SendResetCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.NewValidationError("Email is required", nil)
	}

	if err := h.auth.SendResetCode(c.UserContext(), req.Email); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Verification code sent to your email",
	})
}

// VerifyResetCode handles POST /auth/verify-reset-code.
func (h *AuthHandler) VerifyResetCode(c *fiber.Ctx) error {
	var req dto.VerifyResetCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.NewValidationError("Email and code are required", nil)
	}

	if err := h.auth.VerifyResetCode(c.UserContext(), req.Email, req.Code); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Code verified successfully",
	})
}

// ResetPassword handles POST /auth/reset-password.
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.NewValidationError(resetPasswordValidationMessage(err), nil)
	}

	if err := h.auth.ResetPassword(c.UserContext(), req.Email, req.Code, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Password reset successfully",
	})
}

func (h *AuthHandler) expiresIn() string {
	return fmt.Sprintf("%dh", int(h.auth.TokenService().TTL().Hours()))
}

// signupValidationMessage maps field failures to the storefront's messages.
func signupValidationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "invalid payload"
	}
	fe := fieldErrs[0]
	switch {
	case fe.Tag() == "required":
		return "Name, email, and password are required"
	case fe.Field() == "Email":
		return "Invalid email format"
	case fe.Field() == "Password":
		return "Password must be at least 8 characters long"
	}
	return "invalid payload"
}

func resetPasswordValidationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "invalid payload"
	}
	fe := fieldErrs[0]
	if fe.Tag() == "required" {
		return "Email, code, and new password are required"
	}
	return "Password must be at least 6 characters"
}
