package domain

// User is the domain model for storefront customers. The email address is
// the unique key and is always stored lowercased. PasswordHash is the bcrypt
// output; the plaintext is never persisted.
type User struct {
	Email        string `dynamodbav:"email" json:"email"`
	UserID       string `dynamodbav:"userId" json:"userId"`
	PasswordHash string `dynamodbav:"passwordHash" json:"-"`
	Name         string `dynamodbav:"name" json:"name"`
	IsActive     bool   `dynamodbav:"isActive" json:"isActive"`
	CreatedAt    string `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt    string `dynamodbav:"updatedAt" json:"updatedAt"`
}
