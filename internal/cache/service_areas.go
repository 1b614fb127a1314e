package cache

import (
	"context"

	"dispatch/internal/entities"
)

func (c *Cache) GetServiceAreas(ctx context.Context) ([]entities.ServiceArea, bool, error) {
	var items []serviceAreaJSON
	ok, err := c.get(ctx, keyServiceAreas, &items)
	if err != nil || !ok {
		return nil, false, err
	}
	return areasToDomain(items), true, nil
}

func (c *Cache) SetServiceAreas(ctx context.Context, areas []entities.ServiceArea) error {
	return c.set(ctx, keyServiceAreas, areasToJSON(areas))
}

func (c *Cache) InvalidateServiceAreas(ctx context.Context) error {
	return c.del(ctx, keyServiceAreas)
}
