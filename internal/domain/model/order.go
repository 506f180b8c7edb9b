package model

// OrderStatus describes kitchen workflow position of an order.
type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "new"
	OrderStatusAccepted  OrderStatus = "accepted"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
)

// OrderStatusFlow lists statuses in workflow order.
var OrderStatusFlow = []OrderStatus{
	OrderStatusNew,
	OrderStatusAccepted,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusCompleted,
}

// Valid reports whether s is one of the workflow statuses.
func (s OrderStatus) Valid() bool {
	return s.position() >= 0
}

// Next returns the following workflow status. ok is false for completed or unknown statuses.
func (s OrderStatus) Next() (OrderStatus, bool) {
	pos := s.position()
	if pos < 0 || pos == len(OrderStatusFlow)-1 {
		return s, false
	}
	return OrderStatusFlow[pos+1], true
}

func (s OrderStatus) position() int {
	for i, st := range OrderStatusFlow {
		if st == s {
			return i
		}
	}
	return -1
}

// FulfillmentType tells whether the customer collects the order or gets it delivered.
type FulfillmentType string

const (
	FulfillmentPickup   FulfillmentType = "pickup"
	FulfillmentDelivery FulfillmentType = "delivery"
)

// Order mirrors one row of the Orders sheet.
type Order struct {
	ID            string
	CustomerName  string
	Phone         string
	Type          FulfillmentType
	Items         string
	TotalAmount   string
	PaymentStatus string
	Status        OrderStatus
	CreatedAt     string
}
