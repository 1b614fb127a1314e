package settings

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// настройки хранятся одной строкой
const singletonID = 1

const settingsColumns = `internal_radius_km, external_min_radius_km, external_max_radius_km,
	commission_percentage, max_allowed_balance, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func scanSettings(row pgx.Row) (*SettingsDB, error) {
	var settingsModel SettingsDB
	err := row.Scan(
		&settingsModel.InternalRadiusKm,
		&settingsModel.ExternalMinRadiusKm,
		&settingsModel.ExternalMaxRadiusKm,
		&settingsModel.CommissionPercentage,
		&settingsModel.MaxAllowedBalance,
		&settingsModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &settingsModel, nil
}

// GetOrCreate при первом чтении создает строку со значениями по умолчанию.
func (r *Repository) GetOrCreate(ctx context.Context, defaults entities.DispatchSettings) (*entities.DispatchSettings, error) {
	values := FromDomain(defaults)
	values["id"] = singletonID

	insert, args, err := qb.
		Insert("dispatch_settings").
		SetMap(values).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected settings repository create error: %w", err)
	}

	if _, err := r.querier.Exec(ctx, insert, args...); err != nil {
		return nil, fmt.Errorf("unexpected settings repository create error: %w", err)
	}

	query := `SELECT ` + settingsColumns + `
		FROM dispatch_settings
		WHERE id = $1`

	settingsModel, err := scanSettings(r.querier.QueryRow(ctx, query, singletonID))
	if err != nil {
		return nil, fmt.Errorf("unexpected settings repository get error: %w", err)
	}

	return ToDomain(settingsModel), nil
}

func (r *Repository) Save(ctx context.Context, settings entities.DispatchSettings) (*entities.DispatchSettings, error) {
	query, args, err := qb.
		Update("dispatch_settings").
		SetMap(FromDomain(settings)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": singletonID}).
		Suffix("RETURNING " + settingsColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected settings repository save error: %w", err)
	}

	settingsModel, err := scanSettings(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("dispatch settings row is missing: %w", err)
		}
		return nil, fmt.Errorf("unexpected settings repository save error: %w", err)
	}

	return ToDomain(settingsModel), nil
}
