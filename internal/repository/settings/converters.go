package settings

import "dispatch/internal/entities"

func ToDomain(s *SettingsDB) *entities.DispatchSettings {
	if s == nil {
		return nil
	}

	return &entities.DispatchSettings{
		Radius: entities.RadiusConfig{
			InternalRadiusKm:    s.InternalRadiusKm,
			ExternalMinRadiusKm: s.ExternalMinRadiusKm,
			ExternalMaxRadiusKm: s.ExternalMaxRadiusKm,
		},
		CommissionPercentage: s.CommissionPercentage,
		MaxAllowedBalance:    s.MaxAllowedBalance,
		UpdatedAt:            s.UpdatedAt,
	}
}

func FromDomain(s entities.DispatchSettings) map[string]any {
	return map[string]any{
		"internal_radius_km":     s.Radius.InternalRadiusKm,
		"external_min_radius_km": s.Radius.ExternalMinRadiusKm,
		"external_max_radius_km": s.Radius.ExternalMaxRadiusKm,
		"commission_percentage":  s.CommissionPercentage,
		"max_allowed_balance":    s.MaxAllowedBalance,
	}
}
