package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/samaladyasa/spice-and-soul-backend/internal/api/dto"
	"github.com/samaladyasa/spice-and-soul-backend/internal/service"
	apperrors "github.com/samaladyasa/spice-and-soul-backend/pkg/util"
)

// PaymentsHandler exposes the payment gateway endpoint.
type PaymentsHandler struct {
	payments *service.PaymentService
	validate *validator.Validate
}

// NewPaymentsHandler constructs handler.
func NewPaymentsHandler(paymentService *service.PaymentService, validate *validator.Validate) *PaymentsHandler {
	return &PaymentsHandler{payments: paymentService, validate: validate}
}

// CreateOrder handles POST /payments/order.
func (h *PaymentsHandler) CreateOrder(c *fiber.Ctx) error {
	var req dto.CreatePaymentOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.NewValidationError("Amount is required", nil)
	}

	order, err := h.payments.CreateOrder(req.Amount, req.Currency, req.Receipt)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"orderId":  order.OrderID,
		"amount":   order.Amount,
		"currency": order.Currency,
		"keyId":    order.KeyID,
	})
}
