package servicearea

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/geo"
	"dispatch/pkg/logger"
)

// Areas снимок активных зон, по которому считается Resolve.
type Areas []entities.ServiceArea

// Resolve выбирает зону с ближайшим центром. Попадание точки внутрь зоны не
// проверяется. Без подходящих зон возвращается fallback.
func (a Areas) Resolve(point entities.GeoPoint, fallback entities.RadiusConfig) entities.RadiusConfig {
	var (
		best  *entities.ServiceArea
		bestD float64
	)
	for i := range a {
		area := &a[i]
		if !area.IsResolvable() {
			continue
		}
		d := geo.DistanceKm(point, *area.Center)
		if best == nil || d < bestD {
			best = area
			bestD = d
		}
	}

	if best == nil {
		return fallback
	}
	return best.Radius
}

type Resolver struct {
	repository Repository
	cache      Cache
	log        serviceLogger
}

func New(repository Repository, cache Cache, log serviceLogger) *Resolver {
	return &Resolver{
		repository: repository,
		cache:      cache,
		log:        log,
	}
}

// Load читает активные зоны сначала из кеша, при промахе из БД.
func (r *Resolver) Load(ctx context.Context) (Areas, error) {
	areas, found, err := r.cache.GetServiceAreas(ctx)
	if err != nil {
		r.log.Warn("service areas cache read failed", logger.NewField("error", err))
	}
	if found {
		return areas, nil
	}

	areas, err = r.repository.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("get active service areas: %w", err)
	}

	if err := r.cache.SetServiceAreas(ctx, areas); err != nil {
		r.log.Warn("service areas cache write failed", logger.NewField("error", err))
	}
	return areas, nil
}

// Resolve никогда не падает: при недоступности зон используется fallback.
func (r *Resolver) Resolve(ctx context.Context, point entities.GeoPoint, fallback entities.RadiusConfig) entities.RadiusConfig {
	areas, err := r.Load(ctx)
	if err != nil {
		r.log.Warn("service areas unavailable, using global radius", logger.NewField("error", err))
		return fallback
	}
	return areas.Resolve(point, fallback)
}

func (r *Resolver) UpsertServiceArea(ctx context.Context, area entities.ServiceArea) (*entities.ServiceArea, error) {
	if err := validateArea(area); err != nil {
		return nil, err
	}

	saved, err := r.repository.Upsert(ctx, area)
	if err != nil {
		return nil, fmt.Errorf("upsert service area: %w", err)
	}

	if err := r.cache.InvalidateServiceAreas(ctx); err != nil {
		r.log.Warn("service areas cache invalidate failed",
			logger.NewField("region_id", area.RegionID),
			logger.NewField("error", err),
		)
	}
	return saved, nil
}
