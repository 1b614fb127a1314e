package fcm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/service/notification"
	retrierconfig "dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"

	"firebase.google.com/go/v4/errorutils"
	"firebase.google.com/go/v4/messaging"
)

const (
	provider = "fcm"

	androidPriorityHigh = "high"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = time.Second
	maxElapsedTime  = 3 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

const (
	codeOK              = "OK"
	codeUnregistered    = "UNREGISTERED"
	codeInvalidArgument = "INVALID_ARGUMENT"
	codeUnavailable     = "UNAVAILABLE"
	codeInternal        = "INTERNAL"
	codeQuotaExceeded   = "QUOTA_EXCEEDED"
	codeCanceled        = "CANCELED"
	codeUnknown         = "UNKNOWN"
)

// PushGateway отправляет push через Firebase Cloud Messaging.
type PushGateway struct {
	client  client
	retrier retrier
}

func New(client client) *PushGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &PushGateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (g *PushGateway) Send(ctx context.Context, token string, message entities.PushMessage) error {
	msg := toMessage(token, message)

	err := g.executeWithMetrics(ctx, func(ctx context.Context) error {
		_, err := g.client.Send(ctx, msg)
		return err
	})
	if err == nil {
		return nil
	}

	if isTokenRejected(err) {
		return fmt.Errorf("fcm send: %w", errors.Join(notification.ErrInvalidToken, err))
	}
	return fmt.Errorf("fcm send: %w", err)
}

func toMessage(token string, message entities.PushMessage) *messaging.Message {
	return &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: message.Title,
			Body:  message.Body,
		},
		Data: message.Data,
		Android: &messaging.AndroidConfig{
			Priority: androidPriorityHigh,
		},
	}
}

func (g *PushGateway) executeWithMetrics(ctx context.Context, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	code := errorCode(err)
	GatewayRequestDuration.WithLabelValues(provider, code).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(provider, code).Inc()
	}

	return err
}

// isTokenRejected токен больше не принимается FCM, его нужно удалить.
func isTokenRejected(err error) bool {
	return messaging.IsUnregistered(err) || errorutils.IsInvalidArgument(err)
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return errorutils.IsUnavailable(err) ||
		errorutils.IsInternal(err) ||
		messaging.IsQuotaExceeded(err)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return codeOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return codeCanceled
	case messaging.IsUnregistered(err):
		return codeUnregistered
	case errorutils.IsInvalidArgument(err):
		return codeInvalidArgument
	case errorutils.IsUnavailable(err):
		return codeUnavailable
	case errorutils.IsInternal(err):
		return codeInternal
	case messaging.IsQuotaExceeded(err):
		return codeQuotaExceeded
	default:
		return codeUnknown
	}
}
