package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/samaladyasa/spice-and-soul-backend/internal/domain"
	"github.com/samaladyasa/spice-and-soul-backend/internal/events"
	"github.com/samaladyasa/spice-and-soul-backend/internal/mailer"
)

// NotificationService turns domain events into customer emails. Every send
// is best-effort: a failure is logged and swallowed because the primary
// operation already committed before the event was published.
type NotificationService struct {
	dispatcher events.Dispatcher
	mail       mailer.Mailer
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, mail mailer.Mailer, logger *zap.Logger) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{dispatcher: dispatcher, mail: mail, logger: logger}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventResetCodeIssued, n.handleResetCodeIssued)
	n.dispatcher.Subscribe(events.EventOrderCreated, n.handleOrderCreated)
}

func (n *NotificationService) handleResetCodeIssued(ctx context.Context, event events.Event) error {
	code, _ := event.Payload["code"].(string)
	if code == "" || n.mail == nil {
		return nil
	}
	if err := n.mail.SendResetCode(event.Email, code); err != nil {
		// Code is already stored; the user can retry from the UI.
		n.logger.Warn("reset code email failed", zap.String("email", event.Email), zap.Error(err))
	}
	return nil
}

func (n *NotificationService) handleOrderCreated(ctx context.Context, event events.Event) error {
	if n.mail == nil {
		return nil
	}
	orderID, _ := event.Payload["orderId"].(string)
	items, _ := event.Payload["items"].([]domain.OrderItem)
	total, _ := event.Payload["total"].(float64)

	if err := n.mail.SendOrderConfirmation(event.Email, orderID, items, total); err != nil {
		n.logger.Warn("order confirmation email failed",
			zap.String("order_id", orderID),
			zap.String("email", event.Email),
			zap.Error(err))
	}
	return nil
}
