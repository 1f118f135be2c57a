package notification

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"
)

// StartKafkaConsumer drains the email topic and delivers each message over
// SMTP. Runs until the context is cancelled.
func StartKafkaConsumer(ctx context.Context, reader *kafka.Reader, email Channel) {
	log.Println("📨 Kafka email consumer started")

	for {
		m, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("📨 Kafka email consumer stopped")
				return
			}
			log.Printf("❌ Kafka read error: %v", err)
			continue
		}

		var msg EmailMessage
		if err := json.Unmarshal(m.Value, &msg); err != nil {
			log.Printf("❌ Invalid email message payload: %v", err)
			continue
		}

		if err := email.Send(msg.To, msg.Subject, msg.Body); err != nil {
			log.Printf("❌ Failed to deliver queued email: %v", err)
		}
	}
}
