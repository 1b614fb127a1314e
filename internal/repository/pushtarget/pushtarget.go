package pushtarget

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"

	"github.com/jackc/pgx/v5"
)

var ErrUnknownTargetKind = errors.New("unknown push target kind")

// Repository хранилище токенов для водителей и клиентов.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func tableFor(kind entities.PushTargetKind) (string, error) {
	switch kind {
	case entities.PushTargetDriver:
		return "drivers", nil
	case entities.PushTargetCustomer:
		return "customers", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownTargetKind, kind)
	}
}

// GetToken nil без ошибки, если получателя или токена нет.
func (r *Repository) GetToken(ctx context.Context, target entities.PushTarget) (*string, error) {
	table, err := tableFor(target.Kind)
	if err != nil {
		return nil, err
	}

	query := `SELECT notification_token FROM ` + table + ` WHERE id = $1`

	var token *string
	err = r.querier.QueryRow(ctx, query, target.ID).Scan(&token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("unexpected push target repository get token error: %w", err)
	}

	return token, nil
}

// ClearToken снимает токен, только если он не успел смениться.
func (r *Repository) ClearToken(ctx context.Context, target entities.PushTarget, token string) error {
	table, err := tableFor(target.Kind)
	if err != nil {
		return err
	}

	query := `UPDATE ` + table + `
		SET notification_token = NULL, updated_at = NOW()
		WHERE id = $1 AND notification_token = $2`

	if _, err := r.querier.Exec(ctx, query, target.ID, token); err != nil {
		return fmt.Errorf("unexpected push target repository clear token error: %w", err)
	}
	return nil
}
