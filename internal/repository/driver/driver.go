package driver

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/driver"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const driverColumns = `id, name, phone, vehicle_type, is_available, is_active,
	latitude, longitude, notification_token, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func scanDriver(row pgx.Row) (*DriverDB, error) {
	var driverModel DriverDB
	err := row.Scan(
		&driverModel.ID,
		&driverModel.Name,
		&driverModel.Phone,
		&driverModel.VehicleType,
		&driverModel.IsAvailable,
		&driverModel.IsActive,
		&driverModel.Latitude,
		&driverModel.Longitude,
		&driverModel.NotificationToken,
		&driverModel.CreatedAt,
		&driverModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &driverModel, nil
}

func (r *Repository) Create(ctx context.Context, driverModifyEntity entities.DriverModify) (int64, error) {
	driverModifyModel := FromDomainModify(&driverModifyEntity)
	query := `INSERT INTO drivers (name, phone, vehicle_type, is_available, latitude, longitude, notification_token)
		VALUES ($1, $2, $3, COALESCE($4, FALSE), $5, $6, $7)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		driverModifyModel.Name,
		driverModifyModel.Phone,
		driverModifyModel.VehicleType,
		driverModifyModel.IsAvailable,
		driverModifyModel.Latitude,
		driverModifyModel.Longitude,
		driverModifyModel.NotificationToken,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, driver.ErrConflict
		}
		return 0, fmt.Errorf("unexpected driver repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, driverModifyEntity entities.DriverModify) (*entities.Driver, error) {
	driverModifyModel := FromDomainModify(&driverModifyEntity)

	builder := qb.
		Update("drivers")

	// опциональные поля
	if driverModifyModel.Name != nil {
		builder = builder.Set("name", driverModifyModel.Name)
	}
	if driverModifyModel.Phone != nil {
		builder = builder.Set("phone", driverModifyModel.Phone)
	}
	if driverModifyModel.VehicleType != nil {
		builder = builder.Set("vehicle_type", driverModifyModel.VehicleType)
	}
	if driverModifyModel.IsAvailable != nil {
		builder = builder.Set("is_available", driverModifyModel.IsAvailable)
	}
	if driverModifyModel.Latitude != nil && driverModifyModel.Longitude != nil {
		builder = builder.
			Set("latitude", driverModifyModel.Latitude).
			Set("longitude", driverModifyModel.Longitude)
	}
	if driverModifyModel.NotificationToken != nil {
		// пустая строка снимает токен
		builder = builder.Set("notification_token", sq.Expr("NULLIF(?, '')", *driverModifyModel.NotificationToken))
	}

	builder = builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": driverModifyModel.ID}).
		Suffix("RETURNING " + driverColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	driverModel, err := scanDriver(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrDriverNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, driver.ErrConflict
		}

		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	return ToDomain(driverModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Driver, error) {
	query := `SELECT ` + driverColumns + `
		FROM drivers
		WHERE id = $1`

	driverModel, err := scanDriver(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrDriverNotFound
		}

		return nil, fmt.Errorf("unexpected driver repository getbyid error: %w", err)
	}

	return ToDomain(driverModel), nil
}

// ListDispatchCandidates водители, которым вообще можно отправить заказ: на линии,
// активны, с координатами и токеном. Радиус проверяется уже в сервисе.
func (r *Repository) ListDispatchCandidates(ctx context.Context, vehicleType entities.VehicleType) ([]entities.Driver, error) {
	query := `SELECT ` + driverColumns + `
		FROM drivers
		WHERE vehicle_type = $1
			AND is_available
			AND is_active
			AND latitude IS NOT NULL
			AND longitude IS NOT NULL
			AND notification_token IS NOT NULL
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, vehicleType.String())
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository list candidates error: %w", err)
	}
	defer rows.Close()

	driverModels := make([]DriverDB, 0, 16)
	for rows.Next() {
		driverModel, err := scanDriver(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected driver repository list candidates error: %w", err)
		}
		driverModels = append(driverModels, *driverModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected driver repository list candidates error: %w", err)
	}

	return ToDomainList(driverModels), nil
}
