package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/samaladyasa/spice-and-soul-backend/internal/api/http/handlers"
	"github.com/samaladyasa/spice-and-soul-backend/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health       *handlers.HealthHandler
	Auth         *handlers.AuthHandler
	Cognito      *handlers.CognitoHandler
	Orders       *handlers.OrdersHandler
	Reservations *handlers.ReservationsHandler
	Payments     *handlers.PaymentsHandler
	Admin        *handlers.AdminHandler
	AuthGate     *auth.AuthGate
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/signup", cfg.Auth.Signup)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/send-reset-code", cfg.Auth.SendResetCode)
	authGroup.Post("/verify-reset-code", cfg.Auth.VerifyResetCode)
	authGroup.Post("/reset-password", cfg.Auth.ResetPassword)

	cognitoGroup := authGroup.Group("/cognito")
	cognitoGroup.Post("/signup", cfg.Cognito.Signup)
	cognitoGroup.Post("/confirm", cfg.Cognito.ConfirmSignup)
	cognitoGroup.Post("/login", cfg.Cognito.Login)
	cognitoGroup.Post("/forgot-password", cfg.Cognito.ForgotPassword)
	cognitoGroup.Post("/confirm-forgot-password", cfg.Cognito.ConfirmForgotPassword)

	orders := app.Group("/orders", cfg.AuthGate.Handle)
	orders.Post("/", cfg.Orders.Create)
	orders.Get("/:email", cfg.Orders.ListForUser)

	app.Post("/reservations", cfg.Reservations.Create)
	app.Post("/payments/order", cfg.Payments.CreateOrder)

	admin := app.Group("/admin")
	admin.Get("/users", cfg.Admin.ListUsers)
	admin.Get("/orders", cfg.Admin.ListOrders)
	admin.Get("/codes", cfg.Admin.ListCodes)
}
