package entities

import "time"

// ServiceArea зона обслуживания региона. Без центра зона не участвует в выборе.
type ServiceArea struct {
	RegionID  int64
	Name      string
	Center    *GeoPoint
	IsActive  bool
	Radius    RadiusConfig
	UpdatedAt time.Time
}

func (a ServiceArea) IsResolvable() bool {
	return a.IsActive && a.Center != nil
}
