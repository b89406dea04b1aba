// Package ledger owns the two keyed record stores (books and users) and the
// business operations on them. All access is point read or point write by
// primary key; per-key atomicity comes from the underlying store.
package ledger

import (
	"context"

	"bookstore-fulfillment/types"
)

// BookStore is the keyed store backing the inventory ledger.
type BookStore interface {
	// GetBook returns the record for bookID, or a BookNotFoundError.
	GetBook(ctx context.Context, bookID string) (*types.Book, error)
	// SetQuantity overwrites the stored quantity field.
	SetQuantity(ctx context.Context, bookID string, quantity int) error
	// IncrQuantity atomically adds delta to the stored quantity field.
	IncrQuantity(ctx context.Context, bookID string, delta int) error
}

// UserStore is the keyed store backing the loyalty ledger.
type UserStore interface {
	// GetUser returns the record for userID, or a UserNotFoundError.
	GetUser(ctx context.Context, userID string) (*types.User, error)
	// SetPoints overwrites the stored points field.
	SetPoints(ctx context.Context, userID string, points int) error
}
