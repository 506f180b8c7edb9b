package dto

// OrderResponse is one order row as shown on the board.
type OrderResponse struct {
	ID            string `json:"id"`
	CustomerName  string `json:"customerName"`
	Phone         string `json:"phone"`
	Type          string `json:"type"`
	Items         string `json:"items"`
	TotalAmount   string `json:"totalAmount"`
	PaymentStatus string `json:"paymentStatus"`
	Status        string `json:"status"`
	NextStatus    string `json:"nextStatus,omitempty"`
	CreatedAt     string `json:"createdAt"`
	IsNew         bool   `json:"isNew"`
}

// StatusRequest sets an order status directly.
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}
