package driver

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"

	"github.com/jackc/pgx/v5"
)

// Методы ниже вызывает только машина состояний приостановки.

func (r *Repository) GetActivity(ctx context.Context, driverID int64) (bool, error) {
	query := `SELECT is_active FROM drivers WHERE id = $1`

	var active bool
	err := r.querier.QueryRow(ctx, query, driverID).Scan(&active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, entities.ErrDriverNotFound
		}
		return false, fmt.Errorf("unexpected driver repository get activity error: %w", err)
	}

	return active, nil
}

func (r *Repository) CompareAndSetActive(ctx context.Context, driverID int64, expected, next bool) (bool, error) {
	query := `UPDATE drivers
		SET is_active = $3, updated_at = NOW()
		WHERE id = $1 AND is_active = $2`

	tag, err := r.querier.Exec(ctx, query, driverID, expected, next)
	if err != nil {
		return false, fmt.Errorf("unexpected driver repository compare and set error: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

func (r *Repository) SetActive(ctx context.Context, driverID int64, active bool) (*entities.Driver, error) {
	query := `UPDATE drivers
		SET is_active = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + driverColumns

	driverModel, err := scanDriver(r.querier.QueryRow(ctx, query, driverID, active))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrDriverNotFound
		}
		return nil, fmt.Errorf("unexpected driver repository set active error: %w", err)
	}

	return ToDomain(driverModel), nil
}

func (r *Repository) ListDriverIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.querier.Query(ctx, `SELECT id FROM drivers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository list ids error: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository list ids error: %w", err)
	}

	return ids, nil
}
