package order_events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"dispatch/internal/entities"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var eventsPublished = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "order_events_published_total",
		Help: "Order lifecycle events sent to Kafka",
	},
	[]string{"type", "result"},
)

// Publisher пишет события жизненного цикла заказа, ключ сообщения = id заказа.
type Publisher struct {
	producer producer
	topic    string
}

func New(producer producer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
	}
}

func (p *Publisher) Publish(ctx context.Context, event entities.OrderEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	raw, err := json.Marshal(toMessage(event))
	if err != nil {
		return fmt.Errorf("encode order event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(event.OrderID, 10)),
		Value: sarama.ByteEncoder(raw),
		Headers: []sarama.RecordHeader{
			{Key: []byte(headerEventType), Value: []byte(event.Type.String())},
		},
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		eventsPublished.WithLabelValues(event.Type.String(), "error").Inc()
		return fmt.Errorf("publish %s for order %d: %w", event.Type, event.OrderID, err)
	}

	eventsPublished.WithLabelValues(event.Type.String(), "ok").Inc()
	return nil
}

func toMessage(event entities.OrderEvent) orderEventMessage {
	return orderEventMessage{
		EventID:    event.ID,
		Type:       event.Type.String(),
		OrderID:    event.OrderID,
		CustomerID: event.CustomerID,
		DriverID:   event.DriverID,
		Status:     event.Status.String(),
		OccurredAt: event.OccurredAt,
	}
}
