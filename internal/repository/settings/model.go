package settings

import "time"

type SettingsDB struct {
	InternalRadiusKm     float64
	ExternalMinRadiusKm  float64
	ExternalMaxRadiusKm  float64
	CommissionPercentage float64
	MaxAllowedBalance    float64
	UpdatedAt            time.Time
}
