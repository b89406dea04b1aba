package ledger

import (
	"context"

	"bookstore-fulfillment/types"
)

// InventoryLedger owns stock-quantity reads and writes for book records.
type InventoryLedger struct {
	store BookStore
}

func NewInventoryLedger(store BookStore) *InventoryLedger {
	return &InventoryLedger{store: store}
}

// CheckAvailability fetches the book and verifies the requested quantity
// leaves strictly positive stock. An order that would exhaust stock exactly
// is rejected as out of stock.
func (l *InventoryLedger) CheckAvailability(ctx context.Context, bookID string, requested int) (*types.Book, error) {
	book, err := l.store.GetBook(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if book.Quantity-requested <= 0 {
		return nil, &types.BookOutOfStockError{
			BookID:    bookID,
			Requested: requested,
			Available: book.Quantity,
		}
	}
	return book, nil
}

// CommitDeduction overwrites the stored quantity with newQuantity. It is not
// a decrement; callers compute the new value themselves.
func (l *InventoryLedger) CommitDeduction(ctx context.Context, bookID string, newQuantity int) error {
	return l.store.SetQuantity(ctx, bookID, newQuantity)
}

// RestoreQuantity atomically adds quantityToRestore back to the stored
// quantity. Compensation for CommitDeduction.
func (l *InventoryLedger) RestoreQuantity(ctx context.Context, bookID string, quantityToRestore int) error {
	return l.store.IncrQuantity(ctx, bookID, quantityToRestore)
}
