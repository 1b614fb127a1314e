package order

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/service/dispatch"

	"github.com/jackc/pgx/v5"
)

const orderColumns = `id, customer_id, driver_id, direction, vehicle_type, delivery_type, status,
	pickup_lat, pickup_lng, dropoff_lat, dropoff_lng, price::float8, created_at, updated_at, accepted_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	var orderModel OrderDB
	err := row.Scan(
		&orderModel.ID,
		&orderModel.CustomerID,
		&orderModel.DriverID,
		&orderModel.Direction,
		&orderModel.VehicleType,
		&orderModel.DeliveryType,
		&orderModel.Status,
		&orderModel.PickupLat,
		&orderModel.PickupLng,
		&orderModel.DropoffLat,
		&orderModel.DropoffLng,
		&orderModel.Price,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
		&orderModel.AcceptedAt,
	)
	if err != nil {
		return nil, err
	}
	return &orderModel, nil
}

func (r *Repository) Create(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	pickupLat, pickupLng := fromPoint(orderModify.Pickup)
	dropoffLat, dropoffLng := fromPoint(orderModify.Dropoff)

	query := `INSERT INTO orders (customer_id, direction, vehicle_type, delivery_type, status,
			pickup_lat, pickup_lng, dropoff_lat, dropoff_lng, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + orderColumns

	orderModel, err := scanOrder(r.querier.QueryRow(
		ctx,
		query,
		orderModify.CustomerID,
		orderModify.Direction.String(),
		orderModify.VehicleType.String(),
		orderModify.DeliveryType.String(),
		orderModify.Status.String(),
		pickupLat,
		pickupLng,
		dropoffLat,
		dropoffLng,
		orderModify.Price,
	))
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) ListPending(ctx context.Context, vehicleType entities.VehicleType) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE status = 'pending' AND vehicle_type = $1
		ORDER BY created_at, id`

	rows, err := r.querier.Query(ctx, query, vehicleType.String())
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list pending error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 16)
	for rows.Next() {
		orderModel, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list pending error: %w", err)
		}
		orderModels = append(orderModels, *orderModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list pending error: %w", err)
	}

	return ToDomainList(orderModels), nil
}

// Claim условный UPDATE: из двух параллельных запросов строку обновит только один.
func (r *Repository) Claim(ctx context.Context, orderID, driverID int64) (*entities.Order, error) {
	query := `UPDATE orders
		SET status = 'accepted', driver_id = $2, accepted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status = 'pending' AND driver_id IS NULL
		RETURNING ` + orderColumns

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, orderID, driverID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.missingOr(ctx, orderID, dispatch.ErrOrderNotPending)
		}
		return nil, fmt.Errorf("unexpected order repository claim error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) TransitionStatus(
	ctx context.Context,
	orderID int64,
	from, to entities.OrderStatusType,
) (*entities.Order, error) {
	query := `UPDATE orders
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING ` + orderColumns

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, orderID, from.String(), to.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.missingOr(ctx, orderID, dispatch.ErrStatusConflict)
		}
		return nil, fmt.Errorf("unexpected order repository transition error: %w", err)
	}

	return ToDomain(orderModel), nil
}

// missingOr отличает отсутствующий заказ от проигранного условного UPDATE.
func (r *Repository) missingOr(ctx context.Context, orderID int64, conflict error) error {
	var exists bool
	err := r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, orderID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("unexpected order repository exists error: %w", err)
	}
	if !exists {
		return entities.ErrOrderNotFound
	}
	return conflict
}
