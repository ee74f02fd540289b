package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	cognitotypes "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"go.uber.org/zap"

	"github.com/samaladyasa/spice-and-soul-backend/internal/config"
	apperrors "github.com/samaladyasa/spice-and-soul-backend/pkg/util"
)

// CognitoClient is the slice of the identity-provider API this service uses.
type CognitoClient interface {
	SignUp(ctx context.Context, params *cognitoidentityprovider.SignUpInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.SignUpOutput, error)
	ConfirmSignUp(ctx context.Context, params *cognitoidentityprovider.ConfirmSignUpInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.ConfirmSignUpOutput, error)
	InitiateAuth(ctx context.Context, params *cognitoidentityprovider.InitiateAuthInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.InitiateAuthOutput, error)
	ForgotPassword(ctx context.Context, params *cognitoidentityprovider.ForgotPasswordInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.ForgotPasswordOutput, error)
	ConfirmForgotPassword(ctx context.Context, params *cognitoidentityprovider.ConfirmForgotPasswordInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.ConfirmForgotPasswordOutput, error)
}

// CognitoTokens are the pool-issued session tokens returned on login.
type CognitoTokens struct {
	IDToken      string
	AccessToken  string
	RefreshToken string
}

// CognitoService wraps the federated identity-provider flows: signup with
// emailed verification, login and forgot-password.
type CognitoService struct {
	client CognitoClient
	cfg    config.CognitoConfig
	logger *zap.Logger
}

// NewCognitoService builds the service.
func NewCognitoService(client CognitoClient, cfg config.CognitoConfig, logger *zap.Logger) *CognitoService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CognitoService{client: client, cfg: cfg, logger: logger}
}

// SecretHash computes the pool client secret hash for a username:
// base64(HMAC-SHA256(username+clientID, clientSecret)). Returns "" when no
// client secret is configured, in which case the parameter is omitted.
func SecretHash(username, clientID, clientSecret string) string {
	if clientSecret == "" {
		return ""
	}
	mac := hmac.New(sha256.New, []byte(clientSecret))
	mac.Write([]byte(username + clientID))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func (s *CognitoService) secretHash(username string) *string {
	hash := SecretHash(username, s.cfg.ClientID, s.cfg.ClientSecret)
	if hash == "" {
		return nil
	}
	return aws.String(hash)
}

// SignUp registers a user with the pool; Cognito emails the verification code.
func (s *CognitoService) SignUp(ctx context.Context, email, password, name string) error {
	attrs := []cognitotypes.AttributeType{
		{Name: aws.String("email"), Value: aws.String(email)},
	}
	if name != "" {
		attrs = append(attrs, cognitotypes.AttributeType{Name: aws.String("name"), Value: aws.String(name)})
	}

	input := &cognitoidentityprovider.SignUpInput{
		ClientId:       aws.String(s.cfg.ClientID),
		Username:       aws.String(email),
		Password:       aws.String(password),
		UserAttributes: attrs,
		SecretHash:     s.secretHash(email),
	}
	if _, err := s.client.SignUp(ctx, input); err != nil {
		s.logger.Error("cognito signup failed", zap.Error(err))
		return apperrors.NewInternalError(err)
	}
	return nil
}

// ConfirmSignUp submits the emailed verification code.
func (s *CognitoService) ConfirmSignUp(ctx context.Context, email, code string) error {
	input := &cognitoidentityprovider.ConfirmSignUpInput{
		ClientId:         aws.String(s.cfg.ClientID),
		Username:         aws.String(email),
		ConfirmationCode: aws.String(code),
		SecretHash:       s.secretHash(email),
	}
	if _, err := s.client.ConfirmSignUp(ctx, input); err != nil {
		s.logger.Error("cognito confirm signup failed", zap.Error(err))
		return apperrors.NewInternalError(err)
	}
	return nil
}

// SignIn authenticates against the pool and returns its JWT tokens.
func (s *CognitoService) SignIn(ctx context.Context, email, password string) (*CognitoTokens, error) {
	authParams := map[string]string{
		"USERNAME": email,
		"PASSWORD": password,
	}
	if hash := s.secretHash(email); hash != nil {
		authParams["SECRET_HASH"] = *hash
	}

	input := &cognitoidentityprovider.InitiateAuthInput{
		AuthFlow:       cognitotypes.AuthFlowTypeUserPasswordAuth,
		ClientId:       aws.String(s.cfg.ClientID),
		AuthParameters: authParams,
	}
	out, err := s.client.InitiateAuth(ctx, input)
	if err != nil {
		s.logger.Warn("cognito login failed", zap.Error(err))
		return nil, apperrors.NewUnauthorized(invalidCredentialsMsg)
	}
	if out.AuthenticationResult == nil {
		return nil, apperrors.NewUnauthorized(invalidCredentialsMsg)
	}

	return &CognitoTokens{
		IDToken:      aws.ToString(out.AuthenticationResult.IdToken),
		AccessToken:  aws.ToString(out.AuthenticationResult.AccessToken),
		RefreshToken: aws.ToString(out.AuthenticationResult.RefreshToken),
	}, nil
}

// ForgotPassword asks the pool to email a reset code.
func (s *CognitoService) ForgotPassword(ctx context.Context, email string) error {
	input := &cognitoidentityprovider.ForgotPasswordInput{
		ClientId:   aws.String(s.cfg.ClientID),
		Username:   aws.String(email),
		SecretHash: s.secretHash(email),
	}
	if _, err := s.client.ForgotPassword(ctx, input); err != nil {
		s.logger.Error("cognito forgot password failed", zap.Error(err))
		return apperrors.NewInternalError(err)
	}
	return nil
}

// ConfirmForgotPassword submits the reset code plus the new password.
func (s *CognitoService) ConfirmForgotPassword(ctx context.Context, email, code, newPassword string) error {
	input := &cognitoidentityprovider.ConfirmForgotPasswordInput{
		ClientId:         aws.String(s.cfg.ClientID),
		Username:         aws.String(email),
		ConfirmationCode: aws.String(code),
		Password:         aws.String(newPassword),
		SecretHash:       s.secretHash(email),
	}
	if _, err := s.client.ConfirmForgotPassword(ctx, input); err != nil {
		s.logger.Error("cognito confirm forgot password failed", zap.Error(err))
		return apperrors.NewInternalError(err)
	}
	return nil
}
