package customer

import (
	"context"
	"fmt"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// UpsertToken клиенты живут в другом сервисе, здесь хранится только push-токен.
func (r *Repository) UpsertToken(ctx context.Context, customerID int64, token string) error {
	query := `INSERT INTO customers (id, notification_token)
		VALUES ($1, NULLIF($2, ''))
		ON CONFLICT (id) DO UPDATE SET
			notification_token = EXCLUDED.notification_token,
			updated_at = NOW()`

	if _, err := r.querier.Exec(ctx, query, customerID, token); err != nil {
		return fmt.Errorf("unexpected customer repository upsert token error: %w", err)
	}
	return nil
}
