package service

import (
	"fmt"
	"time"

	razorpay "github.com/razorpay/razorpay-go"
	"go.uber.org/zap"

	"github.com/samaladyasa/spice-and-soul-backend/internal/config"
)

// PaymentOrder is the gateway order handed back to the checkout page.
type PaymentOrder struct {
	OrderID  string
	Amount   int64
	Currency string
	KeyID    string
}

// OrderCreator is the slice of the Razorpay client the service uses.
type OrderCreator interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

// PaymentService creates payment orders through the Razorpay gateway.
type PaymentService struct {
	orders OrderCreator
	keyID  string
	logger *zap.Logger
}

// NewPaymentService builds the service from gateway credentials.
func NewPaymentService(cfg config.PaymentConfig, logger *zap.Logger) *PaymentService {
	client := razorpay.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	return NewPaymentServiceWithClient(client.Order, cfg.RazorpayKeyID, logger)
}

// NewPaymentServiceWithClient allows substituting the gateway client.
func NewPaymentServiceWithClient(orders OrderCreator, keyID string, logger *zap.Logger) *PaymentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentService{orders: orders, keyID: keyID, logger: logger}
}

// CreateOrder registers a gateway order for the given rupee amount. The
// gateway expects paise, hence the x100. Payment is auto-captured.
func (s *PaymentService) CreateOrder(amount int64, currency, receipt string) (*PaymentOrder, error) {
	if currency == "" {
		currency = "INR"
	}
	if receipt == "" {
		receipt = fmt.Sprintf("receipt_%d", time.Now().UnixMilli())
	}

	data := map[string]interface{}{
		"amount":          amount * 100,
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}
	body, err := s.orders.Create(data, nil)
	if err != nil {
		return nil, err
	}

	order := &PaymentOrder{Currency: currency, KeyID: s.keyID}
	if id, ok := body["id"].(string); ok {
		order.OrderID = id
	}
	switch amt := body["amount"].(type) {
	case float64:
		order.Amount = int64(amt)
	case int64:
		order.Amount = amt
	}
	if cur, ok := body["currency"].(string); ok && cur != "" {
		order.Currency = cur
	}

	s.logger.Info("payment order created", zap.String("order_id", order.OrderID))
	return order, nil
}
