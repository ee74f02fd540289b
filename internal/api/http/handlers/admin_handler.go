package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/samaladyasa/spice-and-soul-backend/internal/repository"
	"github.com/samaladyasa/spice-and-soul-backend/internal/service"
)

// AdminHandler exposes the back-office listings.
type AdminHandler struct {
	users  repository.UserRepository
	orders *service.OrderService
	codes  repository.CodeRepository
}

// NewAdminHandler constructs handler.
func NewAdminHandler(users repository.UserRepository, orders *service.OrderService, codeRepo repository.CodeRepository) *AdminHandler {
	return &AdminHandler{users: users, orders: orders, codes: codeRepo}
}

type adminUser struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt"`
}

// ListUsers handles GET /admin/users. Password hashes never leave the
// repository layer.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.users.List(c.UserContext())
	if err != nil {
		return err
	}

	out := make([]adminUser, 0, len(users))
	for _, u := range users {
		out = append(out, adminUser{
			Email:     u.Email,
			Name:      u.Name,
			IsActive:  u.IsActive,
			CreatedAt: u.CreatedAt,
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"users":   out,
		"count":   len(out),
	})
}

// ListOrders handles GET /admin/orders.
func (h *AdminHandler) ListOrders(c *fiber.Ctx) error {
	orders, err := h.orders.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"orders":  orders,
		"count":   len(orders),
	})
}

// ListCodes handles GET /admin/codes.
func (h *AdminHandler) ListCodes(c *fiber.Ctx) error {
	codes, err := h.codes.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"codes":   codes,
		"count":   len(codes),
	})
}
