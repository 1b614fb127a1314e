package cache

import (
	"context"

	"dispatch/internal/entities"
)

func (c *Cache) GetSettings(ctx context.Context) (*entities.DispatchSettings, bool, error) {
	var item settingsJSON
	ok, err := c.get(ctx, keySettings, &item)
	if err != nil || !ok {
		return nil, false, err
	}

	settings := item.toDomain()
	return &settings, true, nil
}

func (c *Cache) SetSettings(ctx context.Context, settings entities.DispatchSettings) error {
	return c.set(ctx, keySettings, settingsToJSON(settings))
}

func (c *Cache) InvalidateSettings(ctx context.Context) error {
	return c.del(ctx, keySettings)
}
