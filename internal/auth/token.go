package auth

import (
	"errors"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// Errors returned by token verification. Callers see only these two; the
// underlying reason (bad signature, expired, wrong issuer) is logged but
// deliberately not distinguishable from the error text.
var (
	ErrNoToken      = errors.New("no authorization token provided")
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Claims is the identity payload carried by both first-party and federated
// tokens once verified.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues first-party HS256 tokens and verifies both first-party
// tokens and Cognito-issued RS256 tokens.
//
// Federated tokens are not signature-verified: the pool's public keys are
// never fetched. Claims are trusted after the issuer, email and expiry
// checks pass.
type TokenService struct {
	secret        []byte
	ttl           time.Duration
	cognitoIssuer string
	logger        *zap.Logger
}

// NewTokenService builds a token service. cognitoIssuer is the full
// https://cognito-idp.<region>.amazonaws.com/<poolID> string; when empty the
// federated fallback is disabled.
func NewTokenService(secret string, ttl time.Duration, cognitoIssuer string, logger *zap.Logger) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TokenService{
		secret:        []byte(secret),
		ttl:           ttl,
		cognitoIssuer: cognitoIssuer,
		logger:        logger,
	}
}

// TTL returns the configured first-party token lifetime.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue builds and signs a first-party token for the given identity.
func (s *TokenService) Issue(userID, email, name string) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.ttl)
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Verify validates a token and returns its claims. First-party HS256
// validation runs first; on failure the token is re-examined as a federated
// Cognito token. The signing-method check on the first path prevents a
// token declaring another algorithm from being verified against the shared
// secret. Every failure collapses to ErrInvalidToken.
func (s *TokenService) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err == nil && parsed.Valid {
		return claims, nil
	}
	firstPartyErr := err

	federated, fedErr := s.verifyFederated(tokenStr)
	if fedErr != nil {
		s.logger.Debug("token verification failed",
			zap.NamedError("first_party", firstPartyErr),
			zap.NamedError("federated", fedErr))
		return nil, ErrInvalidToken
	}
	return federated, nil
}

// verifyFederated decodes the token without signature verification and
// accepts its claims only when the declared algorithm is RS256, the issuer
// matches the configured user pool, an email claim is present and the
// expiry lies in the future.
func (s *TokenService) verifyFederated(tokenStr string) (*Claims, error) {
	if s.cognitoIssuer == "" {
		return nil, errors.New("no federated issuer configured")
	}

	parser := jwt.NewParser()
	mapClaims := jwt.MapClaims{}
	token, _, err := parser.ParseUnverified(tokenStr, mapClaims)
	if err != nil {
		return nil, err
	}
	if alg, _ := token.Header["alg"].(string); alg != "RS256" {
		return nil, errors.New("not a federated token")
	}

	issuer, _ := mapClaims["iss"].(string)
	if issuer != s.cognitoIssuer {
		return nil, errors.New("federated token issuer mismatch")
	}
	email, _ := mapClaims["email"].(string)
	if email == "" {
		return nil, errors.New("federated token missing email claim")
	}
	exp, err := mapClaims.GetExpirationTime()
	if err != nil || exp == nil || !exp.After(time.Now()) {
		return nil, errors.New("federated token expired")
	}

	sub, _ := mapClaims["sub"].(string)
	name, _ := mapClaims["name"].(string)
	return &Claims{UserID: sub, Email: email, Name: name}, nil
}

// ExtractToken pulls the bearer token out of an Authorization header value.
// Only the exact two-part "Bearer <token>" form is accepted.
func ExtractToken(authHeader string) (string, bool) {
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}
