package ledger

// PaymentMethodCash is the only payment method recorded.
const PaymentMethodCash = "Cash"

// WalkInCustomerName is the customer snapshot for sales without a customer.
const WalkInCustomerName = "Walk-in Customer"

// Sale is an immutable sales record. ProductName and CustomerName are
// snapshots taken at sale time and survive later renames or deletions.
type Sale struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"`
	ProductID     string  `json:"productId"`
	ProductName   string  `json:"productName"`
	Quantity      int     `json:"quantity"`
	CustomerID    string  `json:"customerId"`
	CustomerName  string  `json:"customerName"`
	TotalPrice    float64 `json:"totalPrice"`
	PaymentMethod string  `json:"paymentMethod"`
}

// IsWalkIn reports whether the sale has no customer attached.
func (s Sale) IsWalkIn() bool {
	return s.CustomerID == ""
}
