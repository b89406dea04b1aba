package courier

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go.uber.org/zap"

	"bookstore-fulfillment/ledger"
	"bookstore-fulfillment/types"
)

type reportedFailure struct {
	errorCode string
	cause     string
}

// fakeNotifier records outcome reports instead of completing activities.
type fakeNotifier struct {
	successToken []byte
	assignment   *types.CourierAssignment
	failureToken []byte
	failure      *reportedFailure
}

func (n *fakeNotifier) ReportSuccess(_ context.Context, taskToken []byte, assignment types.CourierAssignment) error {
	n.successToken = taskToken
	n.assignment = &assignment
	return nil
}

func (n *fakeNotifier) ReportFailure(_ context.Context, taskToken []byte, errorCode, cause string) error {
	n.failureToken = taskToken
	n.failure = &reportedFailure{errorCode: errorCode, cause: cause}
	return nil
}

func newWorkerFixture(t *testing.T) (*Worker, *ledger.MemoryStore, *fakeNotifier) {
	t.Helper()
	store := ledger.NewMemoryStore()
	if err := store.PutBook(context.Background(), types.Book{BookID: "B1", Quantity: 5, Price: 10}); err != nil {
		t.Fatalf("seed book: %v", err)
	}

	notifier := &fakeNotifier{}
	worker := NewWorker(nil, ledger.NewInventoryLedger(store), notifier, "courier@bookstore.example", zap.NewNop())
	return worker, store, notifier
}

func marshalDispatch(t *testing.T, dispatch types.CourierDispatch) []byte {
	t.Helper()
	value, err := json.Marshal(dispatch)
	if err != nil {
		t.Fatalf("marshal dispatch: %v", err)
	}
	return value
}

func TestHandleMessage_CommitsAndReportsCourier(t *testing.T) {
	worker, store, notifier := newWorkerFixture(t)
	token := []byte("token-1")

	value := marshalDispatch(t, types.CourierDispatch{BookID: "B1", Quantity: 1, TaskToken: token})
	if err := worker.handleMessage(context.Background(), value); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	book, _ := store.GetBook(context.Background(), "B1")
	if book.Quantity != 1 {
		t.Errorf("expected committed quantity 1, got %d", book.Quantity)
	}

	if notifier.assignment == nil || notifier.assignment.Email != "courier@bookstore.example" {
		t.Errorf("expected success report with courier identity, got %+v", notifier.assignment)
	}
	if string(notifier.successToken) != "token-1" {
		t.Errorf("expected success reported on the dispatch token, got %q", notifier.successToken)
	}
	if notifier.failure != nil {
		t.Errorf("unexpected failure report: %+v", notifier.failure)
	}
}

func TestHandleMessage_MissingBookID(t *testing.T) {
	worker, store, notifier := newWorkerFixture(t)

	value := marshalDispatch(t, types.CourierDispatch{Quantity: 1, TaskToken: []byte("token-2")})
	err := worker.handleMessage(context.Background(), value)

	var malformed *types.MalformedMessageError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedMessageError, got: %v", err)
	}

	// Whatever went wrong, the orchestrator sees the one fixed outcome.
	if notifier.failure == nil {
		t.Fatal("expected a failure report")
	}
	if notifier.failure.errorCode != "NoCourierAvailable" {
		t.Errorf("expected error code NoCourierAvailable, got %q", notifier.failure.errorCode)
	}
	if notifier.failure.cause != "No couriers are available" {
		t.Errorf("expected fixed cause string, got %q", notifier.failure.cause)
	}
	if string(notifier.failureToken) != "token-2" {
		t.Errorf("expected failure reported on the dispatch token, got %q", notifier.failureToken)
	}

	book, _ := store.GetBook(context.Background(), "B1")
	if book.Quantity != 5 {
		t.Errorf("expected ledger untouched at 5, got %d", book.Quantity)
	}
}

func TestHandleMessage_MissingToken(t *testing.T) {
	worker, _, notifier := newWorkerFixture(t)

	value := marshalDispatch(t, types.CourierDispatch{BookID: "B1", Quantity: 1})
	err := worker.handleMessage(context.Background(), value)

	var malformed *types.MalformedMessageError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedMessageError, got: %v", err)
	}
	// Without a token there is nothing to report on.
	if notifier.failure != nil {
		t.Errorf("unexpected failure report: %+v", notifier.failure)
	}
}

func TestHandleMessage_UndecodableBody(t *testing.T) {
	worker, _, notifier := newWorkerFixture(t)

	err := worker.handleMessage(context.Background(), []byte("not json"))
	if err == nil {
		t.Fatal("expected an error for an undecodable message")
	}
	if notifier.failure != nil || notifier.assignment != nil {
		t.Error("expected no outcome report for an undecodable message")
	}
}
