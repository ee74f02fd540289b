package dto

// CreatePaymentOrderRequest registers a gateway order. Amount is in rupees.
type CreatePaymentOrderRequest struct {
	Amount   int64  `json:"amount" validate:"required,gt=0"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}
