package kafka

import (
	"log"
	"os"
	"strings"

	"github.com/segmentio/kafka-go"
)

const DefaultTaskEventsTopic = "task_created_events"

// NewTaskEventProducer returns a writer for the task audit event stream, or
// nil when KAFKA_BROKERS is unset (publishing disabled).
func NewTaskEventProducer() *kafka.Writer {
	kafkaBrokers := os.Getenv("KAFKA_BROKERS")
	if kafkaBrokers == "" {
		log.Println("KAFKA_BROKERS not set; task event publishing disabled.")
		return nil
	}
	topic := os.Getenv("TASK_EVENTS_TOPIC")
	if topic == "" {
		topic = DefaultTaskEventsTopic
	}
	brokerList := strings.Split(kafkaBrokers, ",")
	producer := kafka.NewWriter(kafka.WriterConfig{
		Brokers:      brokerList,
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: int(kafka.RequireOne),
		Async:        false,
	})
	log.Printf("Task event Kafka producer configured for topic: %s", topic)
	return producer
}
