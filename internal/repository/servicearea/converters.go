package servicearea

import "dispatch/internal/entities"

func ToDomain(a *ServiceAreaDB) *entities.ServiceArea {
	if a == nil {
		return nil
	}

	area := &entities.ServiceArea{
		RegionID: a.RegionID,
		Name:     a.Name,
		IsActive: a.IsActive,
		Radius: entities.RadiusConfig{
			InternalRadiusKm:    a.InternalRadiusKm,
			ExternalMinRadiusKm: a.ExternalMinRadiusKm,
			ExternalMaxRadiusKm: a.ExternalMaxRadiusKm,
		},
		UpdatedAt: a.UpdatedAt,
	}
	if a.CenterLat != nil && a.CenterLng != nil {
		area.Center = &entities.GeoPoint{Lat: *a.CenterLat, Lng: *a.CenterLng}
	}
	return area
}

func FromDomain(a entities.ServiceArea) map[string]any {
	var lat, lng *float64
	if a.Center != nil {
		la, ln := a.Center.Lat, a.Center.Lng
		lat, lng = &la, &ln
	}

	return map[string]any{
		"region_id":              a.RegionID,
		"name":                   a.Name,
		"center_lat":             lat,
		"center_lng":             lng,
		"is_active":              a.IsActive,
		"internal_radius_km":     a.Radius.InternalRadiusKm,
		"external_min_radius_km": a.Radius.ExternalMinRadiusKm,
		"external_max_radius_km": a.Radius.ExternalMaxRadiusKm,
	}
}

func ToDomainList(areasDB []ServiceAreaDB) []entities.ServiceArea {
	if len(areasDB) == 0 {
		return []entities.ServiceArea{}
	}

	result := make([]entities.ServiceArea, len(areasDB))
	for i, areaDB := range areasDB {
		result[i] = *ToDomain(&areaDB)
	}
	return result
}
