package cache

import "time"

type radiusJSON struct {
	InternalKm    float64 `json:"internal_km"`
	ExternalMinKm float64 `json:"external_min_km"`
	ExternalMaxKm float64 `json:"external_max_km"`
}

type settingsJSON struct {
	Radius               radiusJSON `json:"radius"`
	CommissionPercentage float64    `json:"commission_percentage"`
	MaxAllowedBalance    float64    `json:"max_allowed_balance"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

type pointJSON struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type serviceAreaJSON struct {
	RegionID  int64      `json:"region_id"`
	Name      string     `json:"name"`
	Center    *pointJSON `json:"center,omitempty"`
	IsActive  bool       `json:"is_active"`
	Radius    radiusJSON `json:"radius"`
	UpdatedAt time.Time  `json:"updated_at"`
}
