package cache

import "dispatch/internal/entities"

func radiusToJSON(r entities.RadiusConfig) radiusJSON {
	return radiusJSON{
		InternalKm:    r.InternalRadiusKm,
		ExternalMinKm: r.ExternalMinRadiusKm,
		ExternalMaxKm: r.ExternalMaxRadiusKm,
	}
}

func (r radiusJSON) toDomain() entities.RadiusConfig {
	return entities.RadiusConfig{
		InternalRadiusKm:    r.InternalKm,
		ExternalMinRadiusKm: r.ExternalMinKm,
		ExternalMaxRadiusKm: r.ExternalMaxKm,
	}
}

func settingsToJSON(s entities.DispatchSettings) settingsJSON {
	return settingsJSON{
		Radius:               radiusToJSON(s.Radius),
		CommissionPercentage: s.CommissionPercentage,
		MaxAllowedBalance:    s.MaxAllowedBalance,
		UpdatedAt:            s.UpdatedAt,
	}
}

func (s settingsJSON) toDomain() entities.DispatchSettings {
	return entities.DispatchSettings{
		Radius:               s.Radius.toDomain(),
		CommissionPercentage: s.CommissionPercentage,
		MaxAllowedBalance:    s.MaxAllowedBalance,
		UpdatedAt:            s.UpdatedAt,
	}
}

func areasToJSON(areas []entities.ServiceArea) []serviceAreaJSON {
	res := make([]serviceAreaJSON, 0, len(areas))
	for _, a := range areas {
		item := serviceAreaJSON{
			RegionID:  a.RegionID,
			Name:      a.Name,
			IsActive:  a.IsActive,
			Radius:    radiusToJSON(a.Radius),
			UpdatedAt: a.UpdatedAt,
		}
		if a.Center != nil {
			item.Center = &pointJSON{Lat: a.Center.Lat, Lng: a.Center.Lng}
		}
		res = append(res, item)
	}
	return res
}

func areasToDomain(items []serviceAreaJSON) []entities.ServiceArea {
	res := make([]entities.ServiceArea, 0, len(items))
	for _, item := range items {
		area := entities.ServiceArea{
			RegionID:  item.RegionID,
			Name:      item.Name,
			IsActive:  item.IsActive,
			Radius:    item.Radius.toDomain(),
			UpdatedAt: item.UpdatedAt,
		}
		if item.Center != nil {
			area.Center = &entities.GeoPoint{Lat: item.Center.Lat, Lng: item.Center.Lng}
		}
		res = append(res, area)
	}
	return res
}
