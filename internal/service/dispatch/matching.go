package dispatch

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/geo"
)

// ListAvailableOrders pending заказы подходящего транспорта, которые проходят
// радиус зоны клиента, от ближайшего к дальнему.
func (c *Coordinator) ListAvailableOrders(ctx context.Context, driverID int64) ([]entities.AvailableOrder, error) {
	if driverID <= 0 {
		return nil, ErrInvalidDriverID
	}

	driver, err := c.drivers.GetByID(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("get driver: %w", err)
	}

	if err := checkListingPreconditions(*driver); err != nil {
		return nil, err
	}

	mc, err := c.loadMatchingContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dispatch settings: %w", err)
	}

	pending, err := c.orders.ListPending(ctx, driver.VehicleType)
	if err != nil {
		return nil, fmt.Errorf("list pending orders: %w", err)
	}

	candidates := make([]geo.Ranked[entities.Order], 0, len(pending))
	for _, order := range pending {
		ref, ok := order.CustomerReferencePoint()
		if !ok {
			continue
		}

		d := geo.DistanceKm(*driver.Location, ref)
		if !geo.IsEligible(d, order.DeliveryType, mc.radiusFor(ref)) {
			continue
		}
		candidates = append(candidates, geo.Ranked[entities.Order]{Item: order, DistanceKm: d})
	}

	ranked := geo.RankByDistance(candidates, c.config.ListLimit)

	result := make([]entities.AvailableOrder, 0, len(ranked))
	for _, r := range ranked {
		result = append(result, entities.AvailableOrder{Order: r.Item, DistanceKm: r.DistanceKm})
	}
	return result, nil
}

// eligibleDrivers отбирает кандидатов, прошедших радиус. Остальные считаются skipped.
func eligibleDrivers(
	candidates []entities.Driver,
	ref entities.GeoPoint,
	deliveryType entities.DeliveryType,
	radius entities.RadiusConfig,
) ([]geo.Ranked[entities.Driver], int) {
	eligible := make([]geo.Ranked[entities.Driver], 0, len(candidates))
	skipped := 0

	for _, driver := range candidates {
		if !driver.IsAvailable || !driver.IsActive || !driver.HasValidLocation() || !driver.HasPushTarget() {
			skipped++
			continue
		}

		d := geo.DistanceKm(*driver.Location, ref)
		if !geo.IsEligible(d, deliveryType, radius) {
			skipped++
			continue
		}
		eligible = append(eligible, geo.Ranked[entities.Driver]{Item: driver, DistanceKm: d})
	}

	return geo.RankByDistance(eligible, 0), skipped
}
