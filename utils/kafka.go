package utils

import (
	"log"
	"strings"

	"github.com/segmentio/kafka-go"

	"github.com/uniteam/uniteam-backend/config"
)

// NewKafkaWriter builds the producer for the email topic. Returns nil when
// no broker is configured, callers then send emails directly.
func NewKafkaWriter(cfg *config.Config) *kafka.Writer {
	if cfg.KafkaBrokers == "" || cfg.KafkaTopic == "" {
		log.Println("⚠️ Kafka not configured, emails will be sent synchronously")
		return nil
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(strings.Split(cfg.KafkaBrokers, ",")...),
		Topic:    cfg.KafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}

	log.Println("✅ Kafka writer ready on topic", cfg.KafkaTopic)
	return writer
}

// NewKafkaReader builds the consumer for the email topic.
func NewKafkaReader(cfg *config.Config) *kafka.Reader {
	if cfg.KafkaBrokers == "" || cfg.KafkaTopic == "" {
		return nil
	}

	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: strings.Split(cfg.KafkaBrokers, ","),
		Topic:   cfg.KafkaTopic,
		GroupID: "uniteam-email-consumer",
	})
}
