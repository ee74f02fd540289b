package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/samaladyasa/spice-and-soul-backend/internal/api/dto"
	"github.com/samaladyasa/spice-and-soul-backend/internal/auth"
	"github.com/samaladyasa/spice-and-soul-backend/internal/domain"
	"github.com/samaladyasa/spice-and-soul-backend/internal/service"
	apperrors "github.com/samaladyasa/spice-and-soul-backend/pkg/util"
)

// OrdersHandler exposes the order endpoints. All routes sit behind the
// auth gate.
type OrdersHandler struct {
	orders   *service.OrderService
	validate *validator.Validate
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orderService *service.OrderService, validate *validator.Validate) *OrdersHandler {
	return &OrdersHandler{orders: orderService, validate: validate}
}

// Create handles POST /orders.
func (h *OrdersHandler) Create(c *fiber.Ctx) error {
	if _, ok := auth.ClaimsFromContext(c); !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.NewValidationError("Missing required fields: userEmail, items, total", nil)
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, domain.OrderItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	order, err := h.orders.Create(c.UserContext(), req.UserEmail, items, req.Total)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Order created successfully",
		"order":   order,
	})
}

// ListForUser handles GET /orders/:email. A caller may only read their own
// orders; the token email is the authority.
func (h *OrdersHandler) ListForUser(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	email := c.Params("email")
	if email == "" {
		return apperrors.NewValidationError("Email is required", nil)
	}
	if domain.NormalizeEmail(email) != domain.NormalizeEmail(claims.Email) {
		return apperrors.NewForbidden("You can only view your own orders")
	}

	orders, err := h.orders.ListForUser(c.UserContext(), email)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"orders":  orders,
	})
}
