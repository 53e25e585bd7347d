package domain

// Charge is the outcome of a captured payment.
type Charge struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
	Paid     bool   `json:"paid"`
	OrderID  string `json:"orderId,omitempty"`
}
