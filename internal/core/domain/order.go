package domain

import (
	"math"
	"time"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// Address is a free-form shipping address.
type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// Order is a placed purchase.
type Order struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	Products  []LineItem  `json:"products"`
	Amount    float64     `json:"amount"`
	Address   Address     `json:"address"`
	Status    OrderStatus `json:"status"`
	PaymentID string      `json:"paymentId,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// AmountMinor is the order total in minor currency units, the unit payments
// are charged in.
func (o Order) AmountMinor() int64 {
	return int64(math.Round(o.Amount * 100))
}

// OrderPatch lists the order fields an admin update may change.
type OrderPatch struct {
	Products *[]LineItem
	Amount   *float64
	Address  *Address
	Status   *OrderStatus
}

// MonthlyIncome is the order amount summed for one calendar month.
type MonthlyIncome struct {
	Year  int     `json:"year"  bson:"year"`
	Month int     `json:"month" bson:"month"`
	Total float64 `json:"total" bson:"total"`
}
