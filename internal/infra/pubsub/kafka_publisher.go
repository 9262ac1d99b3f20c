package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"zakaz/internal/domain/service"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
)

const kafkaRetryMax = 5

// kafkaPublisher implements EventPublisher on top of a synchronous Kafka producer.
// Messages are keyed by recipient so one user's events stay on one partition.
type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewKafkaPublisher connects a producer to brokers and publishes to topic.
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) (service.EventPublisher, error) {
	cfg := sarama.NewConfig()
	cfg.ClientID = "zakaz"
	cfg.Producer.RequiredAcks = sarama.WaitForLocal
	cfg.Producer.Compression = sarama.CompressionSnappy
	cfg.Producer.Retry.Max = kafkaRetryMax
	cfg.Producer.Return.Successes = true
	cfg.Producer.Timeout = 10 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to start Kafka producer")
	}

	return newKafkaPublisher(producer, topic, logger), nil
}

func newKafkaPublisher(producer sarama.SyncProducer, topic string, logger *slog.Logger) *kafkaPublisher {
	return &kafkaPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}
}

// PublishNotificationEvent sends the event and waits for the broker acknowledgement.
func (p *kafkaPublisher) PublishNotificationEvent(ctx context.Context, event *service.NotificationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	attributes := eventAttributes(event)
	headers := make([]sarama.RecordHeader, 0, len(attributes))
	for key, value := range attributes {
		headers = append(headers, sarama.RecordHeader{Key: []byte(key), Value: []byte(value)})
	}

	msg := &sarama.ProducerMessage{
		Topic:   p.topic,
		Key:     sarama.StringEncoder(event.UserID),
		Value:   sarama.ByteEncoder(data),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return errors.Wrap(err, "failed to send Kafka message")
	}

	p.logger.DebugContext(ctx, "[Kafka] Event published successfully",
		slog.String("notification_id", event.NotificationID),
		slog.Int("partition", int(partition)),
		slog.Int64("offset", offset),
	)

	return nil
}

func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.producer.Close())
}
