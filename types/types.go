package types

// Book is a single record in the book ledger, keyed by BookID.
type Book struct {
	BookID   string
	Quantity int
	Price    float64
}

// User is a single record in the user ledger, keyed by UserID.
type User struct {
	UserID string
	Points int
}

// Order is the immutable context a fulfillment workflow carries between steps.
// Steps never mutate it; each step returns its own result value instead.
type Order struct {
	OrderID  string
	BookID   string
	UserID   string
	Quantity int
}

// Total accumulates the order price across the pricing and redemption steps.
// Points holds the balance consumed by redemption so a later compensation can
// put it back; it stays zero when no points were spent.
type Total struct {
	TotalPrice float64
	Points     int
}

// CourierDispatch is the message published for the asynchronous
// courier-assignment step. TaskToken is the orchestrator's correlation token;
// Quantity is the new stock value the worker writes verbatim.
type CourierDispatch struct {
	BookID    string `json:"bookId"`
	Quantity  int    `json:"quantity"`
	TaskToken []byte `json:"taskToken"`
}

// CourierAssignment identifies the courier assigned to deliver an order.
type CourierAssignment struct {
	Email string `json:"email"`
}

// FulfillmentResult is the terminal output of a successful order workflow.
type FulfillmentResult struct {
	OrderID    string
	TotalPrice float64
	Courier    string
}
