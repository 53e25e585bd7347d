package domain

import "time"

// Product is an item of the catalogue.
type Product struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"desc"`
	Image       string    `json:"img"`
	Categories  []string  `json:"categories"`
	Size        string    `json:"size,omitempty"`
	Color       string    `json:"color,omitempty"`
	Price       float64   `json:"price"`
	InStock     bool      `json:"inStock"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProductPatch lists the product fields an update may change.
type ProductPatch struct {
	Title       *string
	Description *string
	Image       *string
	Categories  *[]string
	Size        *string
	Color       *string
	Price       *float64
	InStock     *bool
}
