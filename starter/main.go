package main

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.temporal.io/sdk/client"

	"bookstore-fulfillment/config"
	"bookstore-fulfillment/ledger"
	"bookstore-fulfillment/types"
	"bookstore-fulfillment/workflows"
)

func main() {
	cfg := config.Load()

	c, err := client.Dial(client.Options{
		HostPort: cfg.TemporalHostPort,
	})
	if err != nil {
		log.Fatalln("Unable to create Temporal client", err)
	}
	defer c.Close()

	order := types.Order{
		OrderID:  getEnv("ORDER_ID", "ORDER-"+uuid.NewString()),
		BookID:   getEnv("BOOK_ID", "B1"),
		UserID:   getEnv("USER_ID", "U1"),
		Quantity: getEnvInt("QUANTITY", 4),
	}

	// Seed the ledgers for demo runs.
	if getEnv("SEED", "false") == "true" {
		seedLedgers(cfg, order)
	}

	workflowOptions := client.StartWorkflowOptions{
		ID:        "fulfillment-" + order.OrderID,
		TaskQueue: config.TaskQueue,
	}

	log.Printf("Starting OrderFulfillmentWorkflow for order %s (book %s x%d, user %s)\n",
		order.OrderID, order.BookID, order.Quantity, order.UserID)

	we, err := c.ExecuteWorkflow(context.Background(), workflowOptions, workflows.OrderFulfillmentWorkflow, order)
	if err != nil {
		log.Fatalln("Unable to start workflow", err)
	}

	log.Printf("Started workflow - WorkflowID: %s, RunID: %s\n", we.GetID(), we.GetRunID())

	var result types.FulfillmentResult
	if err := we.Get(context.Background(), &result); err != nil {
		log.Fatalf("Workflow execution failed: %v\n", err)
	}

	log.Printf("Order fulfilled. Total: %.2f, Courier: %s\n", result.TotalPrice, result.Courier)

	queryResp, err := c.QueryWorkflow(context.Background(), we.GetID(), "", "get-status")
	if err != nil {
		log.Printf("Failed to query status: %v\n", err)
		return
	}
	var status workflows.FulfillmentStatus
	if err := queryResp.Get(&status); err == nil {
		log.Printf("Final stage: %s\n", status.Stage)
	}
}

func seedLedgers(cfg config.Config, order types.Order) {
	ctx := context.Background()
	store := ledger.NewRedisStore(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))

	book := types.Book{
		BookID:   order.BookID,
		Quantity: getEnvInt("SEED_QUANTITY", 5),
		Price:    getEnvFloat("SEED_PRICE", 10),
	}
	user := types.User{
		UserID: order.UserID,
		Points: getEnvInt("SEED_POINTS", 15),
	}

	if err := store.PutBook(ctx, book); err != nil {
		log.Fatalln("Unable to seed book ledger", err)
	}
	if err := store.PutUser(ctx, user); err != nil {
		log.Fatalln("Unable to seed user ledger", err)
	}
	log.Printf("Seeded book %s (quantity %d, price %.2f) and user %s (points %d)\n",
		book.BookID, book.Quantity, book.Price, user.UserID, user.Points)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return value
}
