package types

import "fmt"

// The error types below cross the activity boundary; Temporal records them as
// application errors carrying the type name, which the workflow's retry policy
// lists as non-retryable.

// BookNotFoundError indicates there is no book record for the given key.
type BookNotFoundError struct {
	BookID string
}

func (e *BookNotFoundError) Error() string {
	return fmt.Sprintf("book %q not found", e.BookID)
}

// UserNotFoundError indicates there is no user record for the given key.
type UserNotFoundError struct {
	UserID string
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("user %q not found", e.UserID)
}

// BookOutOfStockError indicates the requested quantity would not leave any
// stock. Exact exhaustion counts as out of stock.
type BookOutOfStockError struct {
	BookID    string
	Requested int
	Available int
}

func (e *BookOutOfStockError) Error() string {
	return fmt.Sprintf("book %q out of stock: requested %d, available %d", e.BookID, e.Requested, e.Available)
}

// InvalidRedemptionError indicates the order total does not exceed the user's
// points balance, so the all-or-nothing redemption cannot apply.
type InvalidRedemptionError struct {
	TotalPrice float64
	Points     int
}

func (e *InvalidRedemptionError) Error() string {
	return fmt.Sprintf("cannot redeem points: total %.2f does not exceed balance %d", e.TotalPrice, e.Points)
}

// MalformedMessageError indicates a dispatch message is missing a required
// field. The message is not retried.
type MalformedMessageError struct {
	Field string
}

func (e *MalformedMessageError) Error() string {
	return fmt.Sprintf("malformed dispatch message: missing or invalid %s", e.Field)
}
