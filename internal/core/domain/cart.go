package domain

import "time"

// LineItem references a product and how many units of it.
type LineItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Cart holds the items a user intends to buy.
type Cart struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Products  []LineItem `json:"products"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
