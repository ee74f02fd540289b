package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samaladyasa/spice-and-soul-backend/internal/domain"
	"github.com/samaladyasa/spice-and-soul-backend/internal/events"
	"github.com/samaladyasa/spice-and-soul-backend/internal/repository"
)

func TestCreateOrderRequiresAccount(t *testing.T) {
	svc := NewOrderService(repository.NewMemoryOrderRepository(), repository.NewMemoryUserRepository(), nil, nil)

	_, err := svc.Create(context.Background(), "nobody@example.com", nil, 0)
	de := domainErr(t, err)
	assert.Equal(t, "user not found", de.Message)
}

func TestCreateOrderPersistsAndPublishes(t *testing.T) {
	users := repository.NewMemoryUserRepository()
	ctx := context.Background()
	require.NoError(t, users.Create(ctx, &domain.User{Email: "asha@example.com", UserID: "u-1"}))

	dispatcher := &capturingDispatcher{}
	svc := NewOrderService(repository.NewMemoryOrderRepository(), users, dispatcher, nil)

	items := []domain.OrderItem{
		{Name: "Butter Naan", Quantity: 3, Price: 60},
		{Name: "Dal Makhani", Quantity: 1, Price: 320},
	}
	order, err := svc.Create(ctx, "asha@example.com", items, 500)
	require.NoError(t, err)

	assert.NotEmpty(t, order.OrderID)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.NotEmpty(t, order.CreatedAt)

	published := dispatcher.all()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventOrderCreated, published[0].Type)
	assert.Equal(t, order.OrderID, published[0].Payload["orderId"])

	listed, err := svc.ListForUser(ctx, "asha@example.com")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, order.OrderID, listed[0].OrderID)
}

func TestListForUserScopedByEmail(t *testing.T) {
	users := repository.NewMemoryUserRepository()
	ctx := context.Background()
	require.NoError(t, users.Create(ctx, &domain.User{Email: "asha@example.com", UserID: "u-1"}))
	require.NoError(t, users.Create(ctx, &domain.User{Email: "ravi@example.com", UserID: "u-2"}))

	svc := NewOrderService(repository.NewMemoryOrderRepository(), users, nil, nil)

	_, err := svc.Create(ctx, "asha@example.com", []domain.OrderItem{{Name: "Samosa", Quantity: 2, Price: 40}}, 80)
	require.NoError(t, err)
	_, err = svc.Create(ctx, "ravi@example.com", []domain.OrderItem{{Name: "Jalebi", Quantity: 1, Price: 90}}, 90)
	require.NoError(t, err)

	mine, err := svc.ListForUser(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
