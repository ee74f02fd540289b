package dto

// CognitoSignupRequest registers a user with the federated pool.
type CognitoSignupRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"`
}

// CognitoConfirmRequest submits the emailed verification code.
type CognitoConfirmRequest struct {
	Email string `json:"email" validate:"required"`
	Code  string `json:"code" validate:"required"`
}

// CognitoLoginRequest authenticates against the pool.
type CognitoLoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CognitoForgotPasswordRequest asks the pool to email a reset code.
type CognitoForgotPasswordRequest struct {
	Email string `json:"email" validate:"required"`
}

// CognitoConfirmForgotPasswordRequest completes a pool password reset.
type CognitoConfirmForgotPasswordRequest struct {
	Email       string `json:"email" validate:"required"`
	Code        string `json:"code" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}
