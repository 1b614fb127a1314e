package entities

const (
	MinRadiusKm = 1.0
	MaxRadiusKm = 100.0
)

type GeoPoint struct {
	Lat float64
	Lng float64
}

func (p GeoPoint) IsValid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// RadiusConfig правила отбора водителей по расстоянию до точки клиента.
// internal: d <= InternalRadiusKm; external: ExternalMinRadiusKm <= d <= ExternalMaxRadiusKm.
type RadiusConfig struct {
	InternalRadiusKm    float64
	ExternalMinRadiusKm float64
	ExternalMaxRadiusKm float64
}

func (c RadiusConfig) IsValid() bool {
	return inRadiusBounds(c.InternalRadiusKm) &&
		inRadiusBounds(c.ExternalMinRadiusKm) &&
		inRadiusBounds(c.ExternalMaxRadiusKm) &&
		c.ExternalMinRadiusKm <= c.ExternalMaxRadiusKm
}

func inRadiusBounds(km float64) bool {
	return km >= MinRadiusKm && km <= MaxRadiusKm
}
