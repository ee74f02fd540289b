package service

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	cognitotypes "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samaladyasa/spice-and-soul-backend/internal/config"
)

type fakeCognitoClient struct {
	signUpInput   *cognitoidentityprovider.SignUpInput
	initiateInput *cognitoidentityprovider.InitiateAuthInput
	initiateOut   *cognitoidentityprovider.InitiateAuthOutput
	initiateErr   error
}

func (f *fakeCognitoClient) SignUp(ctx context.Context, params *cognitoidentityprovider.SignUpInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.SignUpOutput, error) {
	f.signUpInput = params
	return &cognitoidentityprovider.SignUpOutput{}, nil
}

func (f *fakeCognitoClient) ConfirmSignUp(ctx context.Context, params *cognitoidentityprovider.ConfirmSignUpInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.ConfirmSignUpOutput, error) {
	return &cognitoidentityprovider.ConfirmSignUpOutput{}, nil
}

func (f *fakeCognitoClient) InitiateAuth(ctx context.Context, params *cognitoidentityprovider.InitiateAuthInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.InitiateAuthOutput, error) {
	f.initiateInput = params
	return f.initiateOut, f.initiateErr
}

func (f *fakeCognitoClient) ForgotPassword(ctx context.Context, params *cognitoidentityprovider.ForgotPasswordInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.ForgotPasswordOutput, error) {
	return &cognitoidentityprovider.ForgotPasswordOutput{}, nil
}

func (f *fakeCognitoClient) ConfirmForgotPassword(ctx context.Context, params *cognitoidentityprovider.ConfirmForgotPasswordInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.ConfirmForgotPasswordOutput, error) {
	return &cognitoidentityprovider.ConfirmForgotPasswordOutput{}, nil
}

func TestSecretHash(t *testing.T) {
	hash := SecretHash("user@example.com", "client123", "secret456")
	assert.Equal(t, "PpKB0wfYaiBUDlYl0/IQS6lnjsXvFOl+t05sclORLrM=", hash)
}

func TestSecretHashEmptyWithoutSecret(t *testing.T) {
	assert.Empty(t, SecretHash("user@example.com", "client123", ""))
}

func TestSignUpSendsAttributesAndHash(t *testing.T) {
	client := &fakeCognitoClient{}
	svc := NewCognitoService(client, config.CognitoConfig{
		ClientID:     "client123",
		ClientSecret: "secret456",
	}, nil)

	require.NoError(t, svc.SignUp(context.Background(), "user@example.com", "Password1!", "Asha"))

	input := client.signUpInput
	require.NotNil(t, input)
	assert.Equal(t, "client123", aws.ToString(input.ClientId))
	assert.Equal(t, "user@example.com", aws.ToString(input.Username))
	assert.Equal(t, "PpKB0wfYaiBUDlYl0/IQS6lnjsXvFOl+t05sclORLrM=", aws.ToString(input.SecretHash))

	attrs := map[string]string{}
	for _, a := range input.UserAttributes {
		attrs[aws.ToString(a.Name)] = aws.ToString(a.Value)
	}
	assert.Equal(t, "user@example.com", attrs["email"])
	assert.Equal(t, "Asha", attrs["name"])
}

func TestSignUpOmitsSecretHashWithoutSecret(t *testing.T) {
	client := &fakeCognitoClient{}
	svc := NewCognitoService(client, config.CognitoConfig{ClientID: "client123"}, nil)

	require.NoError(t, svc.SignUp(context.Background(), "user@example.com", "Password1!", ""))
	require.NotNil(t, client.signUpInput)
	assert.Nil(t, client.signUpInput.SecretHash)
	assert.Len(t, client.signUpInput.UserAttributes, 1)
}

func TestSignInReturnsPoolTokens(t *testing.T) {
	client := &fakeCognitoClient{
		initiateOut: &cognitoidentityprovider.InitiateAuthOutput{
			AuthenticationResult: &cognitotypes.AuthenticationResultType{
				IdToken:      aws.String("id-token"),
				AccessToken:  aws.String("access-token"),
				RefreshToken: aws.String("refresh-token"),
			},
		},
	}
	svc := NewCognitoService(client, config.CognitoConfig{ClientID: "client123"}, nil)

	tokens, err := svc.SignIn(context.Background(), "user@example.com", "Password1!")
	require.NoError(t, err)
	assert.Equal(t, "id-token", tokens.IDToken)
	assert.Equal(t, "access-token", tokens.AccessToken)
	assert.Equal(t, "refresh-token", tokens.RefreshToken)

	require.NotNil(t, client.initiateInput)
	assert.Equal(t, cognitotypes.AuthFlowTypeUserPasswordAuth, client.initiateInput.AuthFlow)
	assert.Equal(t, "user@example.com", client.initiateInput.AuthParameters["USERNAME"])
}

func TestSignInFailureMasksPoolError(t *testing.T) {
	client := &fakeCognitoClient{initiateErr: errors.New("NotAuthorizedException")}
	svc := NewCognitoService(client, config.CognitoConfig{ClientID: "client123"}, nil)

	_, err := svc.SignIn(context.Background(), "user@example.com", "wrong")
	de := domainErr(t, err)
	assert.Equal(t, "Invalid email or password", de.Message)
}
