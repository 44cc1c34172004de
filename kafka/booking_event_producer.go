package kafka

import (
	"context"
	"encoding/json"
	"log"

	"booking-service/models"

	"github.com/segmentio/kafka-go"
)

type BookingEventProducer struct {
	writer *kafka.Writer
	topic  string
}

func NewBookingEventProducer(brokers []string, topic string) *BookingEventProducer {
	w := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
	log.Printf("[BookingService][KafkaProducer] initialized topic=%s brokers=%v", topic, brokers)
	return &BookingEventProducer{writer: w, topic: topic}
}

// Publish writes a booking lifecycle event keyed by booking id so all events
// for one booking land on the same partition in order.
func (p *BookingEventProducer) Publish(ctx context.Context, event models.BookingEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.BookingID),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		log.Printf("[BookingService] ❌ Failed to send booking event: %v", err)
		return err
	}

	return nil
}

func (p *BookingEventProducer) Close() {
	_ = p.writer.Close()
	log.Println("[BookingService] 🔌 Kafka producer closed")
}
