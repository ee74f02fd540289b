package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/samaladyasa/spice-and-soul-backend/pkg/util"
)

const claimsKey = "auth_claims"

// AuthResult is the outcome of an authorization decision.
type AuthResult struct {
	Valid  bool
	Claims *Claims
	Err    error
}

// AuthGate guards requests behind bearer-token verification.
type AuthGate struct {
	tokens *TokenService
}

// NewAuthGate constructs the gate.
func NewAuthGate(tokens *TokenService) *AuthGate {
	return &AuthGate{tokens: tokens}
}

// Authorize inspects an Authorization header value and decides whether the
// request may proceed. Pure function of its input: no shared mutable state.
func (g *AuthGate) Authorize(authHeader string) AuthResult {
	token, ok := ExtractToken(authHeader)
	if !ok {
		return AuthResult{Err: ErrNoToken}
	}

	claims, err := g.tokens.Verify(token)
	if err != nil {
		return AuthResult{Err: ErrInvalidToken}
	}
	return AuthResult{Valid: true, Claims: claims}
}

// Handle enforces authentication for protected routes and attaches the
// caller's claims to the request context.
func (g *AuthGate) Handle(c *fiber.Ctx) error {
	result := g.Authorize(c.Get("Authorization"))
	if !result.Valid {
		return apperrors.NewUnauthorized(result.Err.Error())
	}
	c.Locals(claimsKey, result.Claims)
	return c.Next()
}

// ClaimsFromContext retrieves the authenticated identity.
func ClaimsFromContext(c *fiber.Ctx) (*Claims, bool) {
	val := c.Locals(claimsKey)
	if val == nil {
		return nil, false
	}
	claims, ok := val.(*Claims)
	return claims, ok
}
