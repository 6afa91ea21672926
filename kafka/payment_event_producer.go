package kafka

import (
	"context"
	"encoding/json"
	"log"

	"course-marketplace/models"

	"github.com/segmentio/kafka-go"
)

type PaymentEventProducer struct {
	writer *kafka.Writer
	topic  string
}

func NewPaymentEventProducer(brokers []string, topic string) *PaymentEventProducer {
	w := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
	log.Printf("[CourseMarketplace][KafkaProducer] initialized topic=%s brokers=%v", topic, brokers)
	return &PaymentEventProducer{writer: w, topic: topic}
}

func (p *PaymentEventProducer) Publish(event models.PaymentEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.TransactionID),
		Value: data,
	}
	return p.writer.WriteMessages(context.Background(), msg)
}

func (p *PaymentEventProducer) Close() {
	_ = p.writer.Close()
	log.Println("[CourseMarketplace] 🔌 Kafka producer closed")
}
