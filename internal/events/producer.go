package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
)

// IProducer defines the interface for publishing order events.
type IProducer interface {
	PublishOrderCreated(event OrderCreatedEvent) error
	Close() error
}

// KafkaProducer implements IProducer using Sarama.
type KafkaProducer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaProducer creates a new KafkaProducer instance.
func NewKafkaProducer(brokers []string, topic string) (*KafkaProducer, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to start Sarama producer: %w", err)
	}

	return &KafkaProducer{producer: producer, topic: topic}, nil
}

// PublishOrderCreated sends the event to the configured topic.
func (p *KafkaProducer) PublishOrderCreated(event OrderCreatedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.EventID),
		Value: sarama.ByteEncoder(payload),
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("failed to send order event: %w", err)
	}
	return nil
}

// Close shuts down the underlying producer.
func (p *KafkaProducer) Close() error {
	return p.producer.Close()
}
