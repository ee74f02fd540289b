package domain

// VerificationCode is a one-time password-reset code. At most one live code
// exists per email; issuing a new one overwrites the old record. Expiry is
// unix seconds, CreatedAt is ISO-8601.
type VerificationCode struct {
	Email     string `dynamodbav:"email" json:"email"`
	Code      string `dynamodbav:"code" json:"code"`
	Expiry    int64  `dynamodbav:"expiry" json:"expiry"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
}
