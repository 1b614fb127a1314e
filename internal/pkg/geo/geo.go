package geo

import (
	"math"
	"sort"

	"dispatch/internal/entities"
)

const EarthRadiusKm = 6371.0

// DistanceKm расстояние по большой окружности (haversine).
func DistanceKm(a, b entities.GeoPoint) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	// погрешность float может дать h чуть больше 1
	h = math.Min(1, math.Max(0, h))

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}

// IsEligible границы включительные.
func IsEligible(distanceKm float64, deliveryType entities.DeliveryType, radius entities.RadiusConfig) bool {
	switch deliveryType {
	case entities.DeliveryInternal:
		return distanceKm <= radius.InternalRadiusKm
	case entities.DeliveryExternal:
		return distanceKm >= radius.ExternalMinRadiusKm && distanceKm <= radius.ExternalMaxRadiusKm
	default:
		return false
	}
}

type Ranked[T any] struct {
	Item       T
	DistanceKm float64
}

// RankByDistance сортирует по возрастанию расстояния, при равенстве сохраняет
// исходный порядок. limit <= 0 без ограничения.
func RankByDistance[T any](items []Ranked[T], limit int) []Ranked[T] {
	ranked := make([]Ranked[T], len(items))
	copy(ranked, items)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
