package vehicle_catalog

import "dispatch/internal/entities"

type Catalog struct {
	types map[entities.VehicleType]entities.VehicleTypeInfo
}

// New каталог по умолчанию: cargo пока выключен.
func New() *Catalog {
	return NewWith([]entities.VehicleTypeInfo{
		{Type: entities.VehicleBike, Enabled: true, BasePrice: 5},
		{Type: entities.VehicleCar, Enabled: true, BasePrice: 10},
		{Type: entities.VehicleCargo, Enabled: false, BasePrice: 15},
	})
}

func NewWith(types []entities.VehicleTypeInfo) *Catalog {
	c := &Catalog{types: make(map[entities.VehicleType]entities.VehicleTypeInfo, len(types))}
	for _, t := range types {
		c.types[t.Type] = t
	}
	return c
}

func (c *Catalog) Lookup(vehicleType entities.VehicleType) (entities.VehicleTypeInfo, bool) {
	info, ok := c.types[vehicleType]
	return info, ok
}
