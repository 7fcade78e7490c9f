package model

import "time"

// DeliveryType is how an order reaches the customer.
type DeliveryType string

const (
	DeliveryHome   DeliveryType = "Home Delivery"
	DeliveryDineIn DeliveryType = "Dine-In"
)

// Valid reports whether d is one of the known delivery types.
func (d DeliveryType) Valid() bool {
	return d == DeliveryHome || d == DeliveryDineIn
}

// Order represents a placed customer order.
type Order struct {
	ID           string       `json:"_id" bson:"_id,omitempty"`
	UserEmail    string       `json:"userEmail" bson:"userEmail"`
	Items        []OrderItem  `json:"items" bson:"items"`
	Total        float64      `json:"total" bson:"total"`
	DeliveryType DeliveryType `json:"deliveryType,omitempty" bson:"deliveryType,omitempty"`
	Phone        string       `json:"phone,omitempty" bson:"phone,omitempty"`
	Address      string       `json:"address,omitempty" bson:"address,omitempty"`
	CreatedAt    time.Time    `json:"date" bson:"date"`
}

// OrderItem represents a line item in an order.
type OrderItem struct {
	Name  string  `json:"name" bson:"name"`
	Price float64 `json:"price" bson:"price"`
	Qty   int     `json:"qty" bson:"qty"`
}

// OrderRequest represents the request payload for creating an order.
type OrderRequest struct {
	UserEmail    string       `json:"userEmail"`
	Items        []OrderItem  `json:"items"`
	Total        float64      `json:"total"`
	DeliveryType DeliveryType `json:"deliveryType,omitempty"`
	Phone        string       `json:"phone,omitempty"`
	Address      string       `json:"address,omitempty"`
}
