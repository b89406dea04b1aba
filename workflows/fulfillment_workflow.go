// Package workflows defines the order-fulfillment state machine executed by
// the workflow engine.
package workflows

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"bookstore-fulfillment/types"
)

// FulfillmentStatus is the queryable state of a running order workflow.
type FulfillmentStatus struct {
	OrderID   string
	Stage     string
	LastError string
}

// OrderFulfillmentWorkflow runs the forward sequence
// CheckInventory → CalculateTotal → RedeemPoints → BillCustomer → DispatchCourier
// and, when a step fails after points were redeemed, the compensations in
// reverse order: RestoreRedeemPoints, then RestoreQuantity.
func OrderFulfillmentWorkflow(ctx workflow.Context, order types.Order) (*types.FulfillmentResult, error) {
	logger := workflow.GetLogger(ctx)

	status := FulfillmentStatus{OrderID: order.OrderID, Stage: "start"}

	err := workflow.SetQueryHandler(ctx, "get-status", func() (FulfillmentStatus, error) {
		return status, nil
	})
	if err != nil {
		return nil, err
	}

	retryPolicy := &temporal.RetryPolicy{
		InitialInterval:    1 * time.Second,
		BackoffCoefficient: 2.0,
		MaximumInterval:    30 * time.Second,
		MaximumAttempts:    5,
		NonRetryableErrorTypes: []string{
			"BookNotFoundError",
			"BookOutOfStockError",
			"UserNotFoundError",
			"InvalidRedemptionError",
		},
	}
	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy:         retryPolicy,
	})

	// Step 1: stock check (read only, nothing to compensate).
	status.Stage = "check-inventory"
	var book types.Book
	if err := workflow.ExecuteActivity(ctx, "CheckInventory", order).Get(ctx, &book); err != nil {
		status.LastError = fmt.Sprintf("inventory check failed: %v", err)
		return nil, err
	}
	logger.Info("Inventory checked", "orderID", order.OrderID, "inStock", book.Quantity)

	// Step 2: pricing (pure).
	status.Stage = "calculate-total"
	var total types.Total
	if err := workflow.ExecuteActivity(ctx, "CalculateTotal", book, order.Quantity).Get(ctx, &total); err != nil {
		status.LastError = fmt.Sprintf("pricing failed: %v", err)
		return nil, err
	}

	// Step 3: point redemption. On failure nothing has been committed yet and
	// the error propagates as is.
	status.Stage = "redeem-points"
	if err := workflow.ExecuteActivity(ctx, "RedeemPoints", order.UserID, total).Get(ctx, &total); err != nil {
		status.LastError = fmt.Sprintf("redemption failed: %v", err)
		logger.Error("Point redemption failed", "orderID", order.OrderID, "error", err)
		return nil, err
	}
	logger.Info("Points redeemed", "orderID", order.OrderID, "points", total.Points, "remainingTotal", total.TotalPrice)

	// Step 4: billing. From here on a failure undoes the redemption and the
	// stock deduction.
	status.Stage = "bill-customer"
	var billAck string
	if err := workflow.ExecuteActivity(ctx, "BillCustomer", order, total).Get(ctx, &billAck); err != nil {
		status.LastError = fmt.Sprintf("billing failed: %v", err)
		logger.Error("Billing failed", "orderID", order.OrderID, "error", err)
		compensate(ctx, order, total)
		status.Stage = "compensated"
		return nil, err
	}

	// Step 5: courier assignment. The activity publishes the stock-commit
	// request and stays open until the courier worker completes it by token.
	status.Stage = "dispatch-courier"
	courierCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 10 * time.Minute,
		RetryPolicy:         retryPolicy,
	})
	newQuantity := book.Quantity - order.Quantity
	var assignment types.CourierAssignment
	if err := workflow.ExecuteActivity(courierCtx, "DispatchCourier", order, newQuantity).Get(ctx, &assignment); err != nil {
		status.LastError = fmt.Sprintf("courier dispatch failed: %v", err)
		logger.Error("Courier dispatch failed", "orderID", order.OrderID, "error", err)
		compensate(ctx, order, total)
		status.Stage = "compensated"
		return nil, err
	}

	status.Stage = "completed"
	logger.Info("Order fulfilled", "orderID", order.OrderID, "courier", assignment.Email)

	return &types.FulfillmentResult{
		OrderID:    order.OrderID,
		TotalPrice: total.TotalPrice,
		Courier:    assignment.Email,
	}, nil
}

// compensate undoes committed forward steps in reverse order: points first
// (skipped inside the ledger when none were spent), then the quantity, which
// is always restored.
func compensate(ctx workflow.Context, order types.Order, total types.Total) {
	logger := workflow.GetLogger(ctx)

	if err := workflow.ExecuteActivity(ctx, "RestoreRedeemPoints", order.UserID, total.Points).Get(ctx, nil); err != nil {
		logger.Error("Failed to restore points", "orderID", order.OrderID, "error", err)
	}
	if err := workflow.ExecuteActivity(ctx, "RestoreQuantity", order).Get(ctx, nil); err != nil {
		logger.Error("Failed to restore quantity", "orderID", order.OrderID, "error", err)
	}
}
