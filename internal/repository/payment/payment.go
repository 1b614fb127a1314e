package payment

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/repository"

	"github.com/jackc/pgx/v5"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// GetTotals обе суммы считает база. Строка водителя нужна, чтобы отличить
// неизвестного водителя от водителя без истории.
func (r *Repository) GetTotals(ctx context.Context, driverID int64) (entities.BalanceTotals, error) {
	query := `SELECT
			COALESCE((SELECT SUM(o.price) FROM orders o
				WHERE o.driver_id = d.id AND o.status = 'delivered'), 0)::float8,
			COALESCE((SELECT SUM(p.amount) FROM payments p
				WHERE p.driver_id = d.id), 0)::float8
		FROM drivers d
		WHERE d.id = $1`

	var totals entities.BalanceTotals
	err := r.querier.QueryRow(ctx, query, driverID).Scan(&totals.DeliveredRevenue, &totals.TotalPaid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.BalanceTotals{}, entities.ErrDriverNotFound
		}
		return entities.BalanceTotals{}, fmt.Errorf("unexpected payment repository totals error: %w", err)
	}

	return totals, nil
}

func (r *Repository) CreatePayment(ctx context.Context, payment entities.Payment) (*entities.Payment, error) {
	query := `INSERT INTO payments (driver_id, amount, note, paid_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, driver_id, amount::float8, note, paid_at`

	var paymentModel PaymentDB
	err := r.querier.QueryRow(ctx, query, payment.DriverID, payment.Amount, payment.Note, payment.PaidAt).
		Scan(
			&paymentModel.ID,
			&paymentModel.DriverID,
			&paymentModel.Amount,
			&paymentModel.Note,
			&paymentModel.PaidAt,
		)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, entities.ErrDriverNotFound
		}
		return nil, fmt.Errorf("unexpected payment repository create error: %w", err)
	}

	return ToDomain(&paymentModel), nil
}

// ListPayments от новых к старым.
func (r *Repository) ListPayments(ctx context.Context, driverID int64, limit uint64) ([]entities.Payment, error) {
	query := `SELECT id, driver_id, amount::float8, note, paid_at
		FROM payments
		WHERE driver_id = $1
		ORDER BY paid_at DESC, id DESC
		LIMIT $2`

	rows, err := r.querier.Query(ctx, query, driverID, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository list error: %w", err)
	}
	defer rows.Close()

	paymentModels := make([]PaymentDB, 0, 8)
	for rows.Next() {
		var paymentModel PaymentDB
		err := rows.Scan(
			&paymentModel.ID,
			&paymentModel.DriverID,
			&paymentModel.Amount,
			&paymentModel.Note,
			&paymentModel.PaidAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected payment repository list error: %w", err)
		}
		paymentModels = append(paymentModels, paymentModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected payment repository list error: %w", err)
	}

	return ToDomainList(paymentModels), nil
}
