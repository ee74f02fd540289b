package domain

// OrderStatus represents lifecycle states for an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderItem is one line of an order.
type OrderItem struct {
	Name     string  `dynamodbav:"name" json:"name"`
	Quantity int     `dynamodbav:"qty" json:"qty"`
	Price    float64 `dynamodbav:"price" json:"price"`
}

// Order is a customer food order, keyed by the owner's email plus the
// generated order id.
type Order struct {
	UserEmail string      `dynamodbav:"userEmail" json:"userEmail"`
	OrderID   string      `dynamodbav:"orderId" json:"orderId"`
	Items     []OrderItem `dynamodbav:"items" json:"items"`
	Total     float64     `dynamodbav:"total" json:"total"`
	Status    OrderStatus `dynamodbav:"status" json:"status"`
	CreatedAt string      `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt string      `dynamodbav:"updatedAt" json:"updatedAt"`
}
