package main

import (
	"log"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"bookstore-fulfillment/activities"
	"bookstore-fulfillment/config"
	"bookstore-fulfillment/courier"
	"bookstore-fulfillment/ledger"
	"bookstore-fulfillment/workflows"
)

func main() {
	cfg := config.Load()

	// Create Temporal client
	c, err := client.Dial(client.Options{
		HostPort: cfg.TemporalHostPort,
	})
	if err != nil {
		log.Fatalln("Unable to create Temporal client", err)
	}
	defer c.Close()

	// Ledger stores
	store := ledger.NewRedisStore(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	inventory := ledger.NewInventoryLedger(store)
	loyalty := ledger.NewLoyaltyLedger(store)

	// Courier dispatch publisher
	writer := &kafka.Writer{
		Addr:     kafka.TCP(cfg.KafkaBroker),
		Topic:    config.DispatchTopic,
		Balancer: &kafka.LeastBytes{},
	}
	defer writer.Close()

	w := worker.New(c, config.TaskQueue, worker.Options{
		Identity: "fulfillment-worker-" + hostname(),
	})

	// Register workflow
	w.RegisterWorkflow(workflows.OrderFulfillmentWorkflow)

	// Register activities
	inventoryActivities := &activities.InventoryActivities{Ledger: inventory}
	w.RegisterActivity(inventoryActivities.CheckInventory)
	w.RegisterActivity(inventoryActivities.RestoreQuantity)

	pricingActivities := &activities.PricingActivities{}
	w.RegisterActivity(pricingActivities.CalculateTotal)

	loyaltyActivities := &activities.LoyaltyActivities{Ledger: loyalty}
	w.RegisterActivity(loyaltyActivities.RedeemPoints)
	w.RegisterActivity(loyaltyActivities.RestoreRedeemPoints)

	billingActivities := &activities.BillingActivities{}
	w.RegisterActivity(billingActivities.BillCustomer)

	courierActivities := &activities.CourierActivities{Dispatcher: courier.NewKafkaDispatcher(writer)}
	w.RegisterActivity(courierActivities.DispatchCourier)

	log.Println("Worker starting on task queue:", config.TaskQueue)

	err = w.Run(worker.InterruptCh())
	if err != nil {
		log.Fatalln("Unable to start worker", err)
	}
}

func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return h
}
