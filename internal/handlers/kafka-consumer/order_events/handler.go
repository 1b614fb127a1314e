package order_events

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	orderservice "dispatch/internal/service/order"
	"dispatch/pkg/logger"

	"github.com/IBM/sarama"
)

type Handler struct {
	orderService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, orderService Service, timeout time.Duration) *Handler {
	return &Handler{
		orderService:             orderService,
		log:                      log,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order events: claim closed")
				return nil
			}

			if stop := h.processMessage(sess, message); stop {
				return nil
			}

		case <-sess.Context().Done():
			// ребаланс или остановка группы
			h.log.Info("order events: session done")
			return nil
		}
	}
}

// processMessage true - прервать claim без коммита, сообщение придет снова.
func (h *Handler) processMessage(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var payload orderEvent
	if err := json.Unmarshal(message.Value, &payload); err != nil {
		h.log.Error("order events: bad message",
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		)
		sess.MarkMessage(message, "")
		return false
	}

	event := payload.toDomain()
	fields := []logger.Field{
		logger.NewField("event_id", event.ID),
		logger.NewField("type", event.Type.String()),
		logger.NewField("order", event.OrderID),
		logger.NewField("offset", message.Offset),
	}

	order, err := h.orderService.ProcessOrderEvent(ctx, event)
	if err != nil {
		fields = append(fields, logger.NewField("error", err))

		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			h.log.Warn("order events: processing interrupted, message will be redelivered", fields...)
			return true

		case errors.Is(err, orderservice.ErrInvalidEvent):
			h.log.Error("order events: invalid event", fields...)

		case errors.Is(err, orderservice.ErrStatusMismatch):
			h.log.Warn("order events: stale status event", fields...)

		case errors.Is(err, orderservice.ErrOrderNotFound):
			h.log.Warn("order events: order not found", fields...)

		default:
			h.log.Error("order events: processing failed", fields...)
		}
		sess.MarkMessage(message, "")
		return false
	}

	h.log.Info("order events: processed",
		append(fields, logger.NewField("current_status", order.Status.String()))...,
	)
	sess.MarkMessage(message, "")
	return false
}
