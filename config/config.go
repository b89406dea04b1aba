package config

import "os"

const (
	// TaskQueue is the workflow task queue shared by the starter and worker.
	TaskQueue = "fulfillment-task-queue"
	// DispatchTopic carries courier dispatch messages to the queue worker.
	DispatchTopic = "courier-dispatch"
	// DispatchGroupID is the consumer group of the courier worker.
	DispatchGroupID = "courier-worker-group"
)

// Config holds the addresses of the external collaborators. Everything has a
// local-development default.
type Config struct {
	TemporalHostPort string
	RedisAddr        string
	KafkaBroker      string
	CourierEmail     string
}

func Load() Config {
	return Config{
		TemporalHostPort: getEnv("TEMPORAL_HOST", "localhost:7233"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBroker:      getEnv("KAFKA_BROKER", "localhost:9092"),
		CourierEmail:     getEnv("COURIER_EMAIL", "courier@bookstore.example"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
