package models

import "gorm.io/gorm"

const (
	OrderStatusPending   = "pending"
	OrderStatusFulfilled = "fulfilled"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	gorm.Model
	UserID           uint        `json:"userId"`
	TotalAmount      float64     `json:"totalAmount"`
	PaymentMode      string      `json:"paymentMode"`
	DeliveryLocation string      `json:"deliveryLocation"`
	Status           string      `json:"status"`
	OrderItems       []OrderItem `json:"orderItems" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem snapshots the item name and final price at checkout time. It is
// never updated after the order is written.
type OrderItem struct {
	gorm.Model
	OrderID  uint    `json:"orderId"`
	ItemType string  `json:"itemType"`
	ItemID   uint    `json:"itemId"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// ValidOrderTransition reports whether an order may move between the two
// statuses. Only pending orders transition; fulfilled and cancelled are final.
func ValidOrderTransition(from, to string) bool {
	return from == OrderStatusPending &&
		(to == OrderStatusFulfilled || to == OrderStatusCancelled)
}

func ValidPaymentMode(mode string) bool {
	switch mode {
	case "COD", "UPI", "Card":
		return true
	}
	return false
}
