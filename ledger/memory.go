package ledger

import (
	"context"
	"sync"

	"bookstore-fulfillment/types"
)

// MemoryStore is a mutex-guarded in-memory implementation of BookStore and
// UserStore, used in tests and local runs without Redis.
type MemoryStore struct {
	mu    sync.RWMutex
	books map[string]types.Book
	users map[string]types.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		books: make(map[string]types.Book),
		users: make(map[string]types.User),
	}
}

func (s *MemoryStore) GetBook(_ context.Context, bookID string) (*types.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, ok := s.books[bookID]
	if !ok {
		return nil, &types.BookNotFoundError{BookID: bookID}
	}
	return &book, nil
}

func (s *MemoryStore) SetQuantity(_ context.Context, bookID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Overwrite creates the field when the record is absent, matching the
	// hash-store behavior.
	book := s.books[bookID]
	book.BookID = bookID
	book.Quantity = quantity
	s.books[bookID] = book
	return nil
}

func (s *MemoryStore) IncrQuantity(_ context.Context, bookID string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	book := s.books[bookID]
	book.BookID = bookID
	book.Quantity += delta
	s.books[bookID] = book
	return nil
}

func (s *MemoryStore) GetUser(_ context.Context, userID string) (*types.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, &types.UserNotFoundError{UserID: userID}
	}
	return &user, nil
}

func (s *MemoryStore) SetPoints(_ context.Context, userID string, points int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.users[userID]
	user.UserID = userID
	user.Points = points
	s.users[userID] = user
	return nil
}

// PutBook writes a full book record.
func (s *MemoryStore) PutBook(_ context.Context, book types.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.books[book.BookID] = book
	return nil
}

// PutUser writes a full user record.
func (s *MemoryStore) PutUser(_ context.Context, user types.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.UserID] = user
	return nil
}
