package ledger

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"bookstore-fulfillment/types"
)

// RedisStore keeps one hash per record: book:<id> with quantity and price
// fields, user:<id> with a points field. HIncrBy gives the atomic increment
// the restore path relies on.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func bookKey(bookID string) string { return "book:" + bookID }
func userKey(userID string) string { return "user:" + userID }

func (s *RedisStore) GetBook(ctx context.Context, bookID string) (*types.Book, error) {
	fields, err := s.client.HGetAll(ctx, bookKey(bookID)).Result()
	if err != nil {
		return nil, fmt.Errorf("read book %q: %w", bookID, err)
	}
	if len(fields) == 0 {
		return nil, &types.BookNotFoundError{BookID: bookID}
	}

	quantity, err := strconv.Atoi(fields["quantity"])
	if err != nil {
		return nil, fmt.Errorf("book %q has invalid quantity %q: %w", bookID, fields["quantity"], err)
	}
	price, err := strconv.ParseFloat(fields["price"], 64)
	if err != nil {
		return nil, fmt.Errorf("book %q has invalid price %q: %w", bookID, fields["price"], err)
	}

	return &types.Book{BookID: bookID, Quantity: quantity, Price: price}, nil
}

func (s *RedisStore) SetQuantity(ctx context.Context, bookID string, quantity int) error {
	if err := s.client.HSet(ctx, bookKey(bookID), "quantity", quantity).Err(); err != nil {
		return fmt.Errorf("write book %q quantity: %w", bookID, err)
	}
	return nil
}

func (s *RedisStore) IncrQuantity(ctx context.Context, bookID string, delta int) error {
	if err := s.client.HIncrBy(ctx, bookKey(bookID), "quantity", int64(delta)).Err(); err != nil {
		return fmt.Errorf("increment book %q quantity: %w", bookID, err)
	}
	return nil
}

func (s *RedisStore) GetUser(ctx context.Context, userID string) (*types.User, error) {
	fields, err := s.client.HGetAll(ctx, userKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("read user %q: %w", userID, err)
	}
	if len(fields) == 0 {
		return nil, &types.UserNotFoundError{UserID: userID}
	}

	points, err := strconv.Atoi(fields["points"])
	if err != nil {
		return nil, fmt.Errorf("user %q has invalid points %q: %w", userID, fields["points"], err)
	}

	return &types.User{UserID: userID, Points: points}, nil
}

func (s *RedisStore) SetPoints(ctx context.Context, userID string, points int) error {
	if err := s.client.HSet(ctx, userKey(userID), "points", points).Err(); err != nil {
		return fmt.Errorf("write user %q points: %w", userID, err)
	}
	return nil
}

// PutBook writes a full book record. Used for seeding, not by the ledgers.
func (s *RedisStore) PutBook(ctx context.Context, book types.Book) error {
	err := s.client.HSet(ctx, bookKey(book.BookID),
		"quantity", book.Quantity,
		"price", book.Price,
	).Err()
	if err != nil {
		return fmt.Errorf("put book %q: %w", book.BookID, err)
	}
	return nil
}

// PutUser writes a full user record. Used for seeding, not by the ledgers.
func (s *RedisStore) PutUser(ctx context.Context, user types.User) error {
	if err := s.client.HSet(ctx, userKey(user.UserID), "points", user.Points).Err(); err != nil {
		return fmt.Errorf("put user %q: %w", user.UserID, err)
	}
	return nil
}
