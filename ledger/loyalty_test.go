package ledger

import (
	"context"
	"errors"
	"testing"

	"bookstore-fulfillment/types"
)

func newLoyaltyFixture(t *testing.T, user types.User) (*LoyaltyLedger, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	if err := store.PutUser(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return NewLoyaltyLedger(store), store
}

func TestGetBalance(t *testing.T) {
	ledger, _ := newLoyaltyFixture(t, types.User{UserID: "U1", Points: 15})

	points, err := ledger.GetBalance(context.Background(), "U1")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if points != 15 {
		t.Errorf("expected 15 points, got %d", points)
	}
}

func TestGetBalance_NotFound(t *testing.T) {
	ledger := NewLoyaltyLedger(NewMemoryStore())

	_, err := ledger.GetBalance(context.Background(), "missing")
	var notFound *types.UserNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected UserNotFoundError, got: %v", err)
	}
}

func TestZeroOut(t *testing.T) {
	ledger, store := newLoyaltyFixture(t, types.User{UserID: "U1", Points: 15})

	if err := ledger.ZeroOut(context.Background(), "U1"); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	user, _ := store.GetUser(context.Background(), "U1")
	if user.Points != 0 {
		t.Errorf("expected 0 points after zero out, got %d", user.Points)
	}
}

func TestRestore_ExactPriorBalance(t *testing.T) {
	ledger, store := newLoyaltyFixture(t, types.User{UserID: "U1", Points: 15})

	if err := ledger.ZeroOut(context.Background(), "U1"); err != nil {
		t.Fatalf("zero out: %v", err)
	}
	if err := ledger.Restore(context.Background(), "U1", 15); err != nil {
		t.Fatalf("restore: %v", err)
	}

	user, _ := store.GetUser(context.Background(), "U1")
	if user.Points != 15 {
		t.Errorf("expected balance restored to 15, got %d", user.Points)
	}
}

func TestRestore_ZeroAmountIsNoOp(t *testing.T) {
	ledger, store := newLoyaltyFixture(t, types.User{UserID: "U1", Points: 7})

	if err := ledger.Restore(context.Background(), "U1", 0); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	user, _ := store.GetUser(context.Background(), "U1")
	if user.Points != 7 {
		t.Errorf("expected balance untouched at 7, got %d", user.Points)
	}
}
