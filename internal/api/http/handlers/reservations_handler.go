package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/samaladyasa/spice-and-soul-backend/internal/api/dto"
	"github.com/samaladyasa/spice-and-soul-backend/internal/domain"
	"github.com/samaladyasa/spice-and-soul-backend/internal/service"
	apperrors "github.com/samaladyasa/spice-and-soul-backend/pkg/util"
)

// ReservationsHandler accepts table reservation requests.
type ReservationsHandler struct {
	reservations *service.ReservationService
	validate     *validator.Validate
}

// NewReservationsHandler constructs handler.
func NewReservationsHandler(reservationService *service.ReservationService, validate *validator.Validate) *ReservationsHandler {
	return &ReservationsHandler{reservations: reservationService, validate: validate}
}

// Create handles POST /reservations. The response is a success as long as
// the request is well-formed; the notification email is best-effort.
func (h *ReservationsHandler) Create(c *fiber.Ctx) error {
	var req dto.ReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.NewValidationError("Missing required fields", nil)
	}

	reservation := domain.Reservation{
		Name:     req.Name,
		Phone:    req.Phone,
		Date:     req.Date,
		Time:     req.Time,
		Guests:   req.Guests,
		Requests: req.Requests,
	}
	emailSent := h.reservations.Notify(c.UserContext(), reservation)

	message := "Reservation confirmed! We will contact you soon."
	if emailSent {
		message = "Reservation confirmed! We will call you shortly to confirm."
	}
	return c.JSON(fiber.Map{
		"success":   true,
		"message":   message,
		"emailSent": emailSent,
	})
}
