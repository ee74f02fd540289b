package dto

// OrderItemRequest is one line of a new order.
type OrderItemRequest struct {
	Name     string  `json:"name" validate:"required"`
	Quantity int     `json:"qty" validate:"required,gt=0"`
	Price    float64 `json:"price" validate:"gte=0"`
}

// CreateOrderRequest payload for new orders.
type CreateOrderRequest struct {
	UserEmail string             `json:"userEmail" validate:"required"`
	Items     []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Total     float64            `json:"total" validate:"required,gt=0"`
}
