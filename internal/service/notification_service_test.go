package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samaladyasa/spice-and-soul-backend/internal/domain"
	"github.com/samaladyasa/spice-and-soul-backend/internal/events"
)

type fakeMailer struct {
	resetTo    string
	resetCode  string
	orderTo    string
	orderID    string
	orderItems []domain.OrderItem
	orderTotal float64
	err        error
}

func (f *fakeMailer) SendResetCode(to, code string) error {
	f.resetTo = to
	f.resetCode = code
	return f.err
}

func (f *fakeMailer) SendOrderConfirmation(to, orderID string, items []domain.OrderItem, total float64) error {
	f.orderTo = to
	f.orderID = orderID
	f.orderItems = items
	f.orderTotal = total
	return f.err
}

func TestResetCodeEventTriggersEmail(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	mail := &fakeMailer{}
	NewNotificationService(dispatcher, mail, nil).RegisterHandlers()

	err := dispatcher.Publish(context.Background(), events.Event{
		Type:    events.EventResetCodeIssued,
		Email:   "asha@example.com",
		Payload: map[string]any{"code": "654321"},
	})
	require.NoError(t, err)

	assert.Equal(t, "asha@example.com", mail.resetTo)
	assert.Equal(t, "654321", mail.resetCode)
}

func TestOrderCreatedEventTriggersEmail(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	mail := &fakeMailer{}
	NewNotificationService(dispatcher, mail, nil).RegisterHandlers()

	items := []domain.OrderItem{{Name: "Paneer Tikka", Quantity: 2, Price: 250}}
	err := dispatcher.Publish(context.Background(), events.Event{
		Type:  events.EventOrderCreated,
		Email: "asha@example.com",
		Payload: map[string]any{
			"orderId": "ORDER-1700000000000",
			"items":   items,
			"total":   500.0,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "asha@example.com", mail.orderTo)
	assert.Equal(t, "ORDER-1700000000000", mail.orderID)
	assert.Equal(t, items, mail.orderItems)
	assert.Equal(t, 500.0, mail.orderTotal)
}

func TestMailerFailureIsSwallowed(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	mail := &fakeMailer{err: errors.New("smtp down")}
	NewNotificationService(dispatcher, mail, nil).RegisterHandlers()

	err := dispatcher.Publish(context.Background(), events.Event{
		Type:    events.EventResetCodeIssued,
		Email:   "asha@example.com",
		Payload: map[string]any{"code": "654321"},
	})
	assert.NoError(t, err)
}
