package servicearea

import (
	"context"
	"fmt"

	"dispatch/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const areaColumns = `region_id, name, center_lat, center_lng, is_active,
	internal_radius_km, external_min_radius_km, external_max_radius_km, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func scanArea(row pgx.Row) (*ServiceAreaDB, error) {
	var areaModel ServiceAreaDB
	err := row.Scan(
		&areaModel.RegionID,
		&areaModel.Name,
		&areaModel.CenterLat,
		&areaModel.CenterLng,
		&areaModel.IsActive,
		&areaModel.InternalRadiusKm,
		&areaModel.ExternalMinRadiusKm,
		&areaModel.ExternalMaxRadiusKm,
		&areaModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &areaModel, nil
}

func (r *Repository) GetActive(ctx context.Context) ([]entities.ServiceArea, error) {
	query := `SELECT ` + areaColumns + `
		FROM service_areas
		WHERE is_active
		ORDER BY region_id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected service area repository get active error: %w", err)
	}
	defer rows.Close()

	areaModels := make([]ServiceAreaDB, 0, 8)
	for rows.Next() {
		areaModel, err := scanArea(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected service area repository get active error: %w", err)
		}
		areaModels = append(areaModels, *areaModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected service area repository get active error: %w", err)
	}

	return ToDomainList(areaModels), nil
}

func (r *Repository) Upsert(ctx context.Context, area entities.ServiceArea) (*entities.ServiceArea, error) {
	query, args, err := qb.
		Insert("service_areas").
		SetMap(FromDomain(area)).
		Suffix(`ON CONFLICT (region_id) DO UPDATE SET
			name = EXCLUDED.name,
			center_lat = EXCLUDED.center_lat,
			center_lng = EXCLUDED.center_lng,
			is_active = EXCLUDED.is_active,
			internal_radius_km = EXCLUDED.internal_radius_km,
			external_min_radius_km = EXCLUDED.external_min_radius_km,
			external_max_radius_km = EXCLUDED.external_max_radius_km,
			updated_at = NOW()
		RETURNING ` + areaColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected service area repository upsert error: %w", err)
	}

	areaModel, err := scanArea(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("unexpected service area repository upsert error: %w", err)
	}

	return ToDomain(areaModel), nil
}
