package dto

// ReservationRequest payload for table reservations.
type ReservationRequest struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Date     string `json:"date" validate:"required"`
	Time     string `json:"time" validate:"required"`
	Guests   string `json:"guests" validate:"required"`
	Requests string `json:"requests"`
}
