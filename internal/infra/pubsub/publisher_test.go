package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"zakaz/config"
	"zakaz/internal/domain/constants"
	"zakaz/internal/domain/service"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEvent() *service.NotificationEvent {
	return &service.NotificationEvent{
		RequestID:      "req-1",
		NotificationID: "5d1f3c2e-8a51-4d49-9d0e-0a4b8f7c1e11",
		UserID:         "0b9e6a7c-2f4d-4c1a-8e5b-3d7f9a1c2e44",
		Type:           "new_order",
		Title:          "Yangi buyurtma",
		Message:        "Sizga yangi buyurtma keldi.",
		OrderID:        "7c4e2a1b-9d3f-4e5a-8b6c-1f2e3d4c5b66",
		CreatedAt:      "2026-10-17T09:00:00Z",
	}
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	event := newTestEvent()

	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	require.NoError(t, publisher.PublishNotificationEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, event.NotificationID, received.Message.MessageID)
	assert.Equal(t, event.UserID, received.Message.Attributes["user_id"])
	assert.Equal(t, event.OrderID, received.Message.Attributes["order_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.NotificationEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	err := publisher.PublishNotificationEvent(context.Background(), newTestEvent())
	assert.ErrorContains(t, err, "503")
}

func TestKafkaPublisher_SendsKeyedMessage(t *testing.T) {
	event := newTestEvent()
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != "notification-events" {
			return errors.Errorf("unexpected topic %s", msg.Topic)
		}
		key, err := msg.Key.Encode()
		if err != nil {
			return err
		}
		if string(key) != event.UserID {
			return errors.Errorf("unexpected key %s", key)
		}

		return nil
	})

	publisher := newKafkaPublisher(producer, "notification-events", newDiscardLogger())
	require.NoError(t, publisher.PublishNotificationEvent(context.Background(), event))
	require.NoError(t, publisher.Close())
}

func TestKafkaPublisher_SendFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	publisher := newKafkaPublisher(producer, "notification-events", newDiscardLogger())
	err := publisher.PublishNotificationEvent(context.Background(), newTestEvent())
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, publisher.Close())
}

func TestEventAttributes_OmitsEmptyOptionalFields(t *testing.T) {
	event := newTestEvent()
	event.OrderID = ""
	event.RequestID = ""

	attributes := eventAttributes(event)
	assert.Equal(t, map[string]string{
		"notification_id": event.NotificationID,
		"user_id":         event.UserID,
		"type":            event.Type,
	}, attributes)
}

func TestNewEventPublisher_ProviderSelection(t *testing.T) {
	tests := []struct {
		name     string
		pubsub   *config.PubSubConfig
		wantErr  bool
		wantNoop bool
	}{
		{name: "not configured", pubsub: nil, wantNoop: true},
		{name: "empty provider", pubsub: &config.PubSubConfig{}, wantNoop: true},
		{name: "local", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/events"}},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}, wantErr: true},
		{name: "kafka without brokers", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderKafka, TopicID: "t"}, wantErr: true},
		{name: "kafka without topic", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderKafka, Brokers: []string{"localhost:9092"}}, wantErr: true},
		{name: "unknown provider", pubsub: &config.PubSubConfig{Provider: "sqs"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: newDiscardLogger(),
			})

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, publisher)

				return
			}

			require.NoError(t, err)
			_, isNoop := publisher.(*noopPublisher)
			assert.Equal(t, tt.wantNoop, isNoop)
			if isNoop {
				assert.NoError(t, publisher.PublishNotificationEvent(context.Background(), newTestEvent()))
			}
		})
	}
}
