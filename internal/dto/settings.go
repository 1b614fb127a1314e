package dto

import "time"

type RadiusConfig struct {
	InternalRadiusKm    float64 `json:"internal_radius_km"`
	ExternalMinRadiusKm float64 `json:"external_min_radius_km"`
	ExternalMaxRadiusKm float64 `json:"external_max_radius_km"`
}

type Settings struct {
	RadiusConfig
	CommissionPercentage float64    `json:"commission_percentage"`
	MaxAllowedBalance    float64    `json:"max_allowed_balance"`
	UpdatedAt            *time.Time `json:"updated_at,omitempty"`
}

type SettingsUpdate struct {
	InternalRadiusKm     *float64 `json:"internal_radius_km" validate:"omitempty,radius_km"`
	ExternalMinRadiusKm  *float64 `json:"external_min_radius_km" validate:"omitempty,radius_km"`
	ExternalMaxRadiusKm  *float64 `json:"external_max_radius_km" validate:"omitempty,radius_km"`
	CommissionPercentage *float64 `json:"commission_percentage" validate:"omitempty,gte=0,lte=100"`
	MaxAllowedBalance    *float64 `json:"max_allowed_balance" validate:"omitempty,gte=0"`
}

type SettingsUpdateResponse struct {
	Settings Settings     `json:"settings"`
	Sweep    *SweepResult `json:"sweep,omitempty"`
}

type ServiceAreaUpsert struct {
	Name     string    `json:"name" validate:"max=255"`
	Center   *Location `json:"center" validate:"omitempty"`
	IsActive bool      `json:"is_active"`
	// радиусы зоны проверяются сервисом целиком
	InternalRadiusKm    float64 `json:"internal_radius_km"`
	ExternalMinRadiusKm float64 `json:"external_min_radius_km"`
	ExternalMaxRadiusKm float64 `json:"external_max_radius_km"`
}

type ServiceArea struct {
	RegionID int64     `json:"region_id"`
	Name     string    `json:"name"`
	Center   *Location `json:"center,omitempty"`
	IsActive bool      `json:"is_active"`
	RadiusConfig
	UpdatedAt time.Time `json:"updated_at"`
}

type CustomerToken struct {
	Token string `json:"token" validate:"required,max=4096"`
}
