package dto

import "dispatch/internal/entities"

func (l *Location) ToEntity() *entities.GeoPoint {
	if l == nil {
		return nil
	}
	return &entities.GeoPoint{Lat: l.Lat, Lng: l.Lng}
}

func LocationFromEntity(p *entities.GeoPoint) *Location {
	if p == nil {
		return nil
	}
	return &Location{Lat: p.Lat, Lng: p.Lng}
}

func DriverFromEntity(d entities.Driver) Driver {
	return Driver{
		ID:                   d.ID,
		Name:                 d.Name,
		Phone:                d.Phone,
		VehicleType:          d.VehicleType.String(),
		IsAvailable:          d.IsAvailable,
		IsActive:             d.IsActive,
		Location:             LocationFromEntity(d.Location),
		HasNotificationToken: d.HasPushTarget(),
		CreatedAt:            d.CreatedAt,
		UpdatedAt:            d.UpdatedAt,
	}
}

func OrderFromEntity(o entities.Order) Order {
	return Order{
		ID:           o.ID,
		CustomerID:   o.CustomerID,
		DriverID:     o.DriverID,
		Direction:    o.Direction.String(),
		VehicleType:  o.VehicleType.String(),
		DeliveryType: o.DeliveryType.String(),
		Status:       o.Status.String(),
		Pickup:       LocationFromEntity(o.Pickup),
		Dropoff:      LocationFromEntity(o.Dropoff),
		Price:        o.Price,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
		AcceptedAt:   o.AcceptedAt,
	}
}

func AvailableOrdersFromEntity(orders []entities.AvailableOrder) []AvailableOrder {
	res := make([]AvailableOrder, 0, len(orders))
	for _, o := range orders {
		res = append(res, AvailableOrder{
			Order:      OrderFromEntity(o.Order),
			DistanceKm: o.DistanceKm,
		})
	}
	return res
}

func BalanceFromEntity(b entities.BalanceSnapshot) Balance {
	return Balance{
		DriverID:             b.DriverID,
		TotalDeliveryRevenue: b.TotalDeliveryRevenue,
		CommissionPercentage: b.CommissionPercentage,
		CommissionOwed:       b.CommissionOwed,
		TotalPaid:            b.TotalPaid,
		CurrentBalance:       b.CurrentBalance,
	}
}

func PaymentFromEntity(p entities.Payment) Payment {
	return Payment{
		ID:       p.ID,
		DriverID: p.DriverID,
		Amount:   p.Amount,
		Note:     p.Note,
		PaidAt:   p.PaidAt,
	}
}

func PaymentsFromEntity(payments []entities.Payment) []Payment {
	res := make([]Payment, 0, len(payments))
	for _, p := range payments {
		res = append(res, PaymentFromEntity(p))
	}
	return res
}

func PaymentReceiptFromEntity(r entities.PaymentReceipt) PaymentReceipt {
	return PaymentReceipt{
		Payment: PaymentFromEntity(r.Payment),
		Balance: BalanceFromEntity(r.Balance),
		Suspension: SuspensionEvaluation{
			Balance:           r.Suspension.Balance,
			MaxAllowedBalance: r.Suspension.MaxAllowedBalance,
			WasActive:         r.Suspension.WasActive,
			IsActive:          r.Suspension.IsActive,
			Transition:        r.Suspension.Transition.String(),
		},
	}
}

func SweepResultFromEntity(r entities.SweepResult) SweepResult {
	return SweepResult{
		Checked:     r.Checked,
		Suspended:   r.Suspended,
		Reactivated: r.Reactivated,
		Failed:      r.Failed,
	}
}

func radiusFromEntity(r entities.RadiusConfig) RadiusConfig {
	return RadiusConfig{
		InternalRadiusKm:    r.InternalRadiusKm,
		ExternalMinRadiusKm: r.ExternalMinRadiusKm,
		ExternalMaxRadiusKm: r.ExternalMaxRadiusKm,
	}
}

func SettingsFromEntity(s entities.DispatchSettings) Settings {
	res := Settings{
		RadiusConfig:         radiusFromEntity(s.Radius),
		CommissionPercentage: s.CommissionPercentage,
		MaxAllowedBalance:    s.MaxAllowedBalance,
	}
	// дефолтные настройки еще не сохранялись
	if !s.UpdatedAt.IsZero() {
		updatedAt := s.UpdatedAt
		res.UpdatedAt = &updatedAt
	}
	return res
}

func (u SettingsUpdate) ToEntity() entities.DispatchSettingsModify {
	return entities.DispatchSettingsModify{
		InternalRadiusKm:     u.InternalRadiusKm,
		ExternalMinRadiusKm:  u.ExternalMinRadiusKm,
		ExternalMaxRadiusKm:  u.ExternalMaxRadiusKm,
		CommissionPercentage: u.CommissionPercentage,
		MaxAllowedBalance:    u.MaxAllowedBalance,
	}
}

func SettingsUpdateFromEntity(u entities.SettingsUpdate) SettingsUpdateResponse {
	res := SettingsUpdateResponse{
		Settings: SettingsFromEntity(u.Settings),
	}
	if u.Sweep != nil {
		sweep := SweepResultFromEntity(*u.Sweep)
		res.Sweep = &sweep
	}
	return res
}

func (a ServiceAreaUpsert) ToEntity(regionID int64) entities.ServiceArea {
	return entities.ServiceArea{
		RegionID: regionID,
		Name:     a.Name,
		Center:   a.Center.ToEntity(),
		IsActive: a.IsActive,
		Radius: entities.RadiusConfig{
			InternalRadiusKm:    a.InternalRadiusKm,
			ExternalMinRadiusKm: a.ExternalMinRadiusKm,
			ExternalMaxRadiusKm: a.ExternalMaxRadiusKm,
		},
	}
}

func ServiceAreaFromEntity(a entities.ServiceArea) ServiceArea {
	return ServiceArea{
		RegionID:     a.RegionID,
		Name:         a.Name,
		Center:       LocationFromEntity(a.Center),
		IsActive:     a.IsActive,
		RadiusConfig: radiusFromEntity(a.Radius),
		UpdatedAt:    a.UpdatedAt,
	}
}
