package servicearea

import "time"

type ServiceAreaDB struct {
	RegionID            int64
	Name                string
	CenterLat           *float64
	CenterLng           *float64
	IsActive            bool
	InternalRadiusKm    float64
	ExternalMinRadiusKm float64
	ExternalMaxRadiusKm float64
	UpdatedAt           time.Time
}
