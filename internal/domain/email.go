package domain

import "strings"

// NormalizeEmail lowercases and trims an email address. Every store keys
// users and codes by the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
