package ledger

import "context"

// LoyaltyLedger owns points-balance reads and writes for user records.
type LoyaltyLedger struct {
	store UserStore
}

func NewLoyaltyLedger(store UserStore) *LoyaltyLedger {
	return &LoyaltyLedger{store: store}
}

// GetBalance returns the user's current points balance.
func (l *LoyaltyLedger) GetBalance(ctx context.Context, userID string) (int, error) {
	user, err := l.store.GetUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	return user.Points, nil
}

// ZeroOut sets the user's points to zero. Redemption is an all-or-nothing
// spend, never a partial decrement.
func (l *LoyaltyLedger) ZeroOut(ctx context.Context, userID string) error {
	return l.store.SetPoints(ctx, userID, 0)
}

// Restore sets the points back to amount. Compensation for ZeroOut; a restore
// of zero points is a no-op by contract.
func (l *LoyaltyLedger) Restore(ctx context.Context, userID string, amount int) error {
	if amount == 0 {
		return nil
	}
	return l.store.SetPoints(ctx, userID, amount)
}
