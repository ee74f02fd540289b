package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/samaladyasa/spice-and-soul-backend/internal/domain"
	"github.com/samaladyasa/spice-and-soul-backend/internal/events"
	"github.com/samaladyasa/spice-and-soul-backend/internal/repository"
	apperrors "github.com/samaladyasa/spice-and-soul-backend/pkg/util"
)

// OrderService handles order creation and retrieval.
type OrderService struct {
	orders     repository.OrderRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewOrderService builds the service.
func NewOrderService(orders repository.OrderRepository, users repository.UserRepository, dispatcher events.Dispatcher, logger *zap.Logger) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{orders: orders, users: users, dispatcher: dispatcher, logger: logger}
}

// Create verifies the ordering account exists, persists the order and
// publishes the event behind the confirmation email. The email is
// best-effort: a delivery failure never fails the order.
func (s *OrderService) Create(ctx context.Context, userEmail string, items []domain.OrderItem, total float64) (*domain.Order, error) {
	if _, err := s.users.GetByEmail(ctx, userEmail); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, err
	}

	order := &domain.Order{
		UserEmail: userEmail,
		Items:     items,
		Total:     total,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			Type:  events.EventOrderCreated,
			Email: order.UserEmail,
			Payload: map[string]any{
				"orderId": order.OrderID,
				"items":   order.Items,
				"total":   order.Total,
			},
		})
	}

	s.logger.Info("order created",
		zap.String("order_id", order.OrderID),
		zap.String("email", order.UserEmail))
	return order, nil
}

// ListForUser returns every order belonging to the email.
func (s *OrderService) ListForUser(ctx context.Context, email string) ([]domain.Order, error) {
	return s.orders.ListByEmail(ctx, email)
}

// ListAll returns every order, for the admin listing.
func (s *OrderService) ListAll(ctx context.Context) ([]domain.Order, error) {
	return s.orders.ListAll(ctx)
}
