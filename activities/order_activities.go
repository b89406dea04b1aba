// Package activities holds the order-fulfillment step functions. The workflow
// engine invokes each step independently and persists intermediate results
// between steps; no step keeps state of its own.
package activities

import (
	"context"

	"go.temporal.io/sdk/activity"

	"bookstore-fulfillment/courier"
	"bookstore-fulfillment/ledger"
	"bookstore-fulfillment/pricing"
	"bookstore-fulfillment/types"
)

// InventoryActivities contains the stock check and its compensation.
type InventoryActivities struct {
	Ledger *ledger.InventoryLedger
}

// CheckInventory fetches the ordered book and verifies the requested quantity
// leaves stock. Fails with BookNotFoundError or BookOutOfStockError.
func (a *InventoryActivities) CheckInventory(ctx context.Context, order types.Order) (*types.Book, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Checking inventory", "bookID", order.BookID, "quantity", order.Quantity)

	book, err := a.Ledger.CheckAvailability(ctx, order.BookID, order.Quantity)
	if err != nil {
		logger.Warn("Inventory check failed", "bookID", order.BookID, "error", err)
		return nil, err
	}

	logger.Info("Book available", "bookID", book.BookID, "inStock", book.Quantity)
	return book, nil
}

// RestoreQuantity puts the ordered quantity back on the shelf (compensation).
func (a *InventoryActivities) RestoreQuantity(ctx context.Context, order types.Order) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Restoring quantity", "bookID", order.BookID, "quantity", order.Quantity)

	return a.Ledger.RestoreQuantity(ctx, order.BookID, order.Quantity)
}

// PricingActivities contains the total calculation step.
type PricingActivities struct{}

// CalculateTotal prices the order from the book's unit price.
func (a *PricingActivities) CalculateTotal(ctx context.Context, book types.Book, quantity int) (*types.Total, error) {
	logger := activity.GetLogger(ctx)

	total := pricing.ComputeTotal(book.Price, quantity)
	logger.Info("Order priced", "bookID", book.BookID, "quantity", quantity, "totalPrice", total)

	return &types.Total{TotalPrice: total}, nil
}

// LoyaltyActivities contains the points redemption step and its compensation.
type LoyaltyActivities struct {
	Ledger *ledger.LoyaltyLedger
}

// RedeemPoints spends the user's full points balance against the order total.
// The spend is all-or-nothing: when the total exceeds the balance, points drop
// to zero, the total is reduced by the spent amount, and the consumed balance
// is carried in the result for compensation. A total at or below the balance
// fails with InvalidRedemptionError.
func (a *LoyaltyActivities) RedeemPoints(ctx context.Context, userID string, total types.Total) (*types.Total, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Redeeming points", "userID", userID, "totalPrice", total.TotalPrice)

	points, err := a.Ledger.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}

	if total.TotalPrice <= float64(points) {
		return nil, &types.InvalidRedemptionError{TotalPrice: total.TotalPrice, Points: points}
	}

	if err := a.Ledger.ZeroOut(ctx, userID); err != nil {
		return nil, err
	}

	total.TotalPrice -= float64(points)
	total.Points = points

	logger.Info("Points redeemed", "userID", userID, "points", points, "remainingTotal", total.TotalPrice)
	return &total, nil
}

// RestoreRedeemPoints puts the consumed balance back (compensation). A zero
// amount means no points were spent and nothing is written.
func (a *LoyaltyActivities) RestoreRedeemPoints(ctx context.Context, userID string, points int) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Restoring points", "userID", userID, "points", points)

	return a.Ledger.Restore(ctx, userID, points)
}

// BillingActivities contains the billing step.
type BillingActivities struct{}

// BillCustomer acknowledges the charge. No payment gateway is wired in.
func (a *BillingActivities) BillCustomer(ctx context.Context, order types.Order, total types.Total) (string, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Billing customer", "orderID", order.OrderID, "userID", order.UserID, "amount", total.TotalPrice)

	return "Successfully billed", nil
}

// CourierActivities contains the asynchronous courier-assignment step.
type CourierActivities struct {
	Dispatcher courier.Dispatcher
}

// DispatchCourier publishes the stock-commit request for the courier worker
// and leaves the activity open; the worker completes it with the task token
// once the courier is assigned. newQuantity is the caller-computed stock value
// the worker writes verbatim.
func (a *CourierActivities) DispatchCourier(ctx context.Context, order types.Order, newQuantity int) (*types.CourierAssignment, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Dispatching courier request", "orderID", order.OrderID, "bookID", order.BookID, "newQuantity", newQuantity)

	msg := types.CourierDispatch{
		BookID:    order.BookID,
		Quantity:  newQuantity,
		TaskToken: activity.GetInfo(ctx).TaskToken,
	}
	if err := a.Dispatcher.Publish(ctx, order.OrderID, msg); err != nil {
		return nil, err
	}

	return nil, activity.ErrResultPending
}
