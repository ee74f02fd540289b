// Package codes implements the time-boxed one-time verification codes used
// by the password-reset flow. At most one live code exists per email:
// issuing overwrites, checking never consumes, and the record is deleted on
// first detection of expiry or on explicit consumption after a completed
// reset.
package codes

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
	"time"

	"github.com/samaladyasa/spice-and-soul-backend/internal/domain"
	"github.com/samaladyasa/spice-and-soul-backend/internal/repository"
)

// CheckResult classifies the outcome of a code check.
type CheckResult string

const (
	CheckOK       CheckResult = "ok"
	CheckNoCode   CheckResult = "no_code"
	CheckExpired  CheckResult = "expired"
	CheckMismatch CheckResult = "mismatch"
)

// Store drives the verification-code lifecycle over a CodeRepository.
type Store struct {
	repo repository.CodeRepository
	ttl  time.Duration
}

// NewStore builds a store with the given code lifetime.
func NewStore(repo repository.CodeRepository, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Store{repo: repo, ttl: ttl}
}

// Issue generates a fresh 6-digit code for the email and persists it,
// overwriting any previous code. The code is returned for delivery.
func (s *Store) Issue(ctx context.Context, email string) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", err
	}

	record := &domain.VerificationCode{
		Email:     domain.NormalizeEmail(email),
		Code:      code,
		Expiry:    time.Now().Add(s.ttl).Unix(),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.repo.Save(ctx, record); err != nil {
		return "", err
	}
	return code, nil
}

// Check compares a submitted code against the stored record. An expired
// record is deleted on sight so a later check reports no_code. A matching
// check leaves the record in place: the code is re-checked at the final
// reset step and only consumed there.
func (s *Store) Check(ctx context.Context, email, submitted string) (CheckResult, error) {
	record, err := s.repo.Get(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return CheckNoCode, nil
	}
	if err != nil {
		return "", err
	}

	if time.Now().Unix() > record.Expiry {
		if err := s.repo.Delete(ctx, email); err != nil {
			return "", err
		}
		return CheckExpired, nil
	}

	if record.Code != strings.TrimSpace(submitted) {
		return CheckMismatch, nil
	}
	return CheckOK, nil
}

// Consume removes the code record. Called exactly once, after the password
// reset has completed.
func (s *Store) Consume(ctx context.Context, email string) error {
	return s.repo.Delete(ctx, email)
}

// generateCode returns a uniformly random 6-digit numeric string in
// [100000, 999999].
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return big.NewInt(0).Add(n, big.NewInt(100000)).String(), nil
}
