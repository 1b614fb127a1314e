package customer

import (
	"context"
	"fmt"
	"strings"
)

type Customer struct {
	repository Repository
}

func New(repository Repository) *Customer {
	return &Customer{
		repository: repository,
	}
}

// SetNotificationToken регистрирует клиента как получателя push при первом вызове.
func (s *Customer) SetNotificationToken(ctx context.Context, customerID int64, token string) error {
	if customerID <= 0 {
		return ErrInvalidCustomerID
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return ErrInvalidToken
	}

	if err := s.repository.UpsertToken(ctx, customerID, token); err != nil {
		return fmt.Errorf("upsert customer token: %w", err)
	}
	return nil
}
