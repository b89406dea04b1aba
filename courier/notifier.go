package courier

import (
	"context"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"bookstore-fulfillment/types"
)

// Notifier reports the terminal outcome of the courier-assignment step back
// to the workflow instance waiting on the correlation token.
type Notifier interface {
	ReportSuccess(ctx context.Context, taskToken []byte, assignment types.CourierAssignment) error
	ReportFailure(ctx context.Context, taskToken []byte, errorCode, cause string) error
}

// TemporalNotifier completes the open DispatchCourier activity identified by
// the task token.
type TemporalNotifier struct {
	client client.Client
}

func NewTemporalNotifier(c client.Client) *TemporalNotifier {
	return &TemporalNotifier{client: c}
}

func (n *TemporalNotifier) ReportSuccess(ctx context.Context, taskToken []byte, assignment types.CourierAssignment) error {
	return n.client.CompleteActivity(ctx, taskToken, assignment, nil)
}

func (n *TemporalNotifier) ReportFailure(ctx context.Context, taskToken []byte, errorCode, cause string) error {
	return n.client.CompleteActivity(ctx, taskToken, nil,
		temporal.NewNonRetryableApplicationError(cause, errorCode, nil))
}
