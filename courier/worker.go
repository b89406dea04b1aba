package courier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"bookstore-fulfillment/ledger"
	"bookstore-fulfillment/types"
)

const (
	// Every failure after decoding is reported to the orchestrator with this
	// fixed code and cause, whatever the underlying error was.
	errorCodeNoCourier  = "NoCourierAvailable"
	errorCauseNoCourier = "No couriers are available"
)

// Reader is the slice of kafka.Reader the worker consumes.
type Reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Worker consumes courier dispatch messages: it commits the stock deduction
// for the order and reports the assigned courier (or failure) back to the
// waiting workflow.
type Worker struct {
	reader    Reader
	inventory *ledger.InventoryLedger
	notifier  Notifier
	courier   string
	logger    *zap.Logger
}

func NewWorker(reader Reader, inventory *ledger.InventoryLedger, notifier Notifier, courierEmail string, logger *zap.Logger) *Worker {
	return &Worker{
		reader:    reader,
		inventory: inventory,
		notifier:  notifier,
		courier:   courierEmail,
		logger:    logger,
	}
}

// Run consumes until ctx is cancelled. A message that fails to process is
// still committed; the failure has already been reported on the orchestration
// channel and there is no dead-letter path.
func (w *Worker) Run(ctx context.Context) error {
	w.logger.Info("Courier worker started. Waiting for dispatch messages...")

	for {
		msg, err := w.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				w.logger.Info("Context done, exiting dispatch read loop")
				return nil
			}
			w.logger.Error("Error reading dispatch message", zap.Error(err))
			continue
		}

		if err := w.handleMessage(ctx, msg.Value); err != nil {
			w.logger.Error("Failed to process dispatch message", zap.Error(err))
		}

		if err := w.reader.CommitMessages(ctx, msg); err != nil {
			w.logger.Error("Failed to commit offset", zap.Error(err))
		}
	}
}

// handleMessage decodes one dispatch, performs the stock commit and reports
// the outcome on the orchestration channel.
func (w *Worker) handleMessage(ctx context.Context, value []byte) error {
	var dispatch types.CourierDispatch
	if err := json.Unmarshal(value, &dispatch); err != nil {
		// No token to report on.
		return fmt.Errorf("decode dispatch message: %w", err)
	}

	if err := w.process(ctx, dispatch); err != nil {
		if len(dispatch.TaskToken) > 0 {
			if reportErr := w.notifier.ReportFailure(ctx, dispatch.TaskToken, errorCodeNoCourier, errorCauseNoCourier); reportErr != nil {
				w.logger.Error("Failed to report dispatch failure", zap.Error(reportErr))
			}
		}
		return err
	}

	return nil
}

func (w *Worker) process(ctx context.Context, dispatch types.CourierDispatch) error {
	if err := validateDispatch(dispatch); err != nil {
		return err
	}

	if err := w.inventory.CommitDeduction(ctx, dispatch.BookID, dispatch.Quantity); err != nil {
		return fmt.Errorf("commit deduction for book %s: %w", dispatch.BookID, err)
	}

	w.logger.Info("Stock committed, courier assigned",
		zap.String("bookID", dispatch.BookID),
		zap.Int("newQuantity", dispatch.Quantity),
		zap.String("courier", w.courier),
	)

	return w.notifier.ReportSuccess(ctx, dispatch.TaskToken, types.CourierAssignment{Email: w.courier})
}

func validateDispatch(dispatch types.CourierDispatch) error {
	if dispatch.BookID == "" {
		return &types.MalformedMessageError{Field: "bookId"}
	}
	if dispatch.Quantity <= 0 {
		return &types.MalformedMessageError{Field: "quantity"}
	}
	if len(dispatch.TaskToken) == 0 {
		return &types.MalformedMessageError{Field: "taskToken"}
	}
	return nil
}
