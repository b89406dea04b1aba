package ledger

import (
	"context"
	"errors"
	"testing"

	"bookstore-fulfillment/types"
)

func newInventoryFixture(t *testing.T, book types.Book) (*InventoryLedger, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	if err := store.PutBook(context.Background(), book); err != nil {
		t.Fatalf("seed book: %v", err)
	}
	return NewInventoryLedger(store), store
}

func TestCheckAvailability(t *testing.T) {
	ledger, _ := newInventoryFixture(t, types.Book{BookID: "B1", Quantity: 5, Price: 10})

	book, err := ledger.CheckAvailability(context.Background(), "B1", 4)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if book.Quantity != 5 || book.Price != 10 {
		t.Errorf("unexpected book returned: %+v", book)
	}
}

func TestCheckAvailability_ExactExhaustionIsOutOfStock(t *testing.T) {
	ledger, _ := newInventoryFixture(t, types.Book{BookID: "B1", Quantity: 5, Price: 10})

	_, err := ledger.CheckAvailability(context.Background(), "B1", 5)
	var oos *types.BookOutOfStockError
	if !errors.As(err, &oos) {
		t.Fatalf("expected BookOutOfStockError, got: %v", err)
	}
	if oos.Requested != 5 || oos.Available != 5 {
		t.Errorf("unexpected error detail: %+v", oos)
	}
}

func TestCheckAvailability_InsufficientStock(t *testing.T) {
	ledger, _ := newInventoryFixture(t, types.Book{BookID: "B1", Quantity: 5, Price: 10})

	_, err := ledger.CheckAvailability(context.Background(), "B1", 6)
	var oos *types.BookOutOfStockError
	if !errors.As(err, &oos) {
		t.Fatalf("expected BookOutOfStockError, got: %v", err)
	}
}

func TestCheckAvailability_NotFound(t *testing.T) {
	ledger := NewInventoryLedger(NewMemoryStore())

	_, err := ledger.CheckAvailability(context.Background(), "missing", 1)
	var notFound *types.BookNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected BookNotFoundError, got: %v", err)
	}
}

func TestCommitDeduction_Overwrites(t *testing.T) {
	ledger, store := newInventoryFixture(t, types.Book{BookID: "B1", Quantity: 5, Price: 10})

	if err := ledger.CommitDeduction(context.Background(), "B1", 1); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	book, _ := store.GetBook(context.Background(), "B1")
	if book.Quantity != 1 {
		t.Errorf("expected quantity 1, got %d", book.Quantity)
	}
}

func TestRestoreQuantity_UndoesDeduction(t *testing.T) {
	ledger, store := newInventoryFixture(t, types.Book{BookID: "B1", Quantity: 5, Price: 10})

	if err := ledger.CommitDeduction(context.Background(), "B1", 1); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if err := ledger.RestoreQuantity(context.Background(), "B1", 4); err != nil {
		t.Fatalf("restore: %v", err)
	}

	book, _ := store.GetBook(context.Background(), "B1")
	if book.Quantity != 5 {
		t.Errorf("expected quantity back at 5, got %d", book.Quantity)
	}
}
