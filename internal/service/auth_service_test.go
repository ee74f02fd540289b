package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samaladyasa/spice-and-soul-backend/internal/auth"
	"github.com/samaladyasa/spice-and-soul-backend/internal/codes"
	"github.com/samaladyasa/spice-and-soul-backend/internal/config"
	"github.com/samaladyasa/spice-and-soul-backend/internal/events"
	"github.com/samaladyasa/spice-and-soul-backend/internal/repository"
	apperrors "github.com/samaladyasa/spice-and-soul-backend/pkg/util"
)

// capturingDispatcher records every published event.
type capturingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *capturingDispatcher) Publish(ctx context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

func (d *capturingDispatcher) Subscribe(eventType events.EventType, handler events.EventHandler) {}

func (d *capturingDispatcher) all() []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]events.Event, len(d.events))
	copy(out, d.events)
	return out
}

func newTestAuthService(t *testing.T) (*AuthService, *capturingDispatcher) {
	t.Helper()
	dispatcher := &capturingDispatcher{}
	cfg := config.AuthConfig{BcryptCost: 4}
	svc := NewAuthService(cfg, AuthDependencies{
		UserRepo:   repository.NewMemoryUserRepository(),
		CodeStore:  codes.NewStore(repository.NewMemoryCodeRepository(), time.Hour),
		Tokens:     auth.NewTokenService("test-secret", time.Hour, "", nil),
		Dispatcher: dispatcher,
	})
	return svc, dispatcher
}

func domainErr(t *testing.T, err error) *apperrors.DomainError {
	t.Helper()
	require.Error(t, err)
	de, ok := err.(*apperrors.DomainError)
	require.True(t, ok, "expected *DomainError, got %T", err)
	return de
}

func TestSignupAndLogin(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	user, token, exp, err := svc.Signup(ctx, "Asha", "Asha@Example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", user.Email)
	assert.NotEmpty(t, user.UserID)
	assert.NotEmpty(t, token)
	assert.True(t, exp.After(time.Now()))

	logged, loginToken, _, err := svc.Login(ctx, "asha@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.UserID, logged.UserID)
	assert.NotEmpty(t, loginToken)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, _, _, err := svc.Signup(ctx, "Asha", "asha@example.com", "password123")
	require.NoError(t, err)

	_, _, _, err = svc.Signup(ctx, "Other", "ASHA@example.com", "different1")
	de := domainErr(t, err)
	assert.Equal(t, "Email already registered", de.Message)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, _, _, err := svc.Signup(ctx, "Asha", "asha@example.com", "password123")
	require.NoError(t, err)

	_, _, _, unknownErr := svc.Login(ctx, "nobody@example.com", "password123")
	_, _, _, wrongPassErr := svc.Login(ctx, "asha@example.com", "wrongpassword")

	unknown := domainErr(t, unknownErr)
	wrongPass := domainErr(t, wrongPassErr)
	assert.Equal(t, unknown.Message, wrongPass.Message)
	assert.Equal(t, "Invalid email or password", unknown.Message)
}

func TestSendResetCodeUnknownEmail(t *testing.T) {
	svc, dispatcher := newTestAuthService(t)

	err := svc.SendResetCode(context.Background(), "nobody@example.com")
	de := domainErr(t, err)
	assert.Equal(t, "No account found with this email", de.Message)
	assert.Empty(t, dispatcher.all())
}

func TestPasswordResetFlow(t *testing.T) {
	svc, dispatcher := newTestAuthService(t)
	ctx := context.Background()

	_, _, _, err := svc.Signup(ctx, "Asha", "asha@example.com", "password123")
	require.NoError(t, err)

	require.NoError(t, svc.SendResetCode(ctx, "asha@example.com"))

	published := dispatcher.all()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventResetCodeIssued, published[0].Type)
	code, _ := published[0].Payload["code"].(string)
	require.Len(t, code, 6)

	// Verify does not consume: it can run more than once.
	require.NoError(t, svc.VerifyResetCode(ctx, "asha@example.com", code))
	require.NoError(t, svc.VerifyResetCode(ctx, "asha@example.com", code))

	require.NoError(t, svc.ResetPassword(ctx, "asha@example.com", code, "newpassword1"))

	// The code is spent.
	err = svc.ResetPassword(ctx, "asha@example.com", code, "anotherpass1")
	de := domainErr(t, err)
	assert.Equal(t, "No verification code found", de.Message)

	// Old password out, new password in.
	_, _, _, err = svc.Login(ctx, "asha@example.com", "password123")
	assert.Error(t, err)
	_, _, _, err = svc.Login(ctx, "asha@example.com", "newpassword1")
	assert.NoError(t, err)
}

func TestVerifyResetCodeMessages(t *testing.T) {
	svc, dispatcher := newTestAuthService(t)
	ctx := context.Background()

	_, _, _, err := svc.Signup(ctx, "Asha", "asha@example.com", "password123")
	require.NoError(t, err)

	err = svc.VerifyResetCode(ctx, "asha@example.com", "123456")
	de := domainErr(t, err)
	assert.Equal(t, "No verification code found. Please request a new code.", de.Message)

	require.NoError(t, svc.SendResetCode(ctx, "asha@example.com"))
	code, _ := dispatcher.all()[0].Payload["code"].(string)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	err = svc.VerifyResetCode(ctx, "asha@example.com", wrong)
	de = domainErr(t, err)
	assert.Equal(t, "Invalid verification code. Please try again.", de.Message)
}
