package entities

import "time"

const (
	DefaultInternalRadiusKm     = 2.0
	DefaultExternalMinRadiusKm  = 10.0
	DefaultExternalMaxRadiusKm  = 15.0
	DefaultCommissionPercentage = 2.0
	DefaultMaxAllowedBalance    = 50.0
)

// DispatchSettings глобальные настройки. Передаются явно в резолвер, леджер и машину
// состояний приостановки.
type DispatchSettings struct {
	Radius               RadiusConfig
	CommissionPercentage float64
	MaxAllowedBalance    float64
	UpdatedAt            time.Time
}

func DefaultDispatchSettings() DispatchSettings {
	return DispatchSettings{
		Radius: RadiusConfig{
			InternalRadiusKm:    DefaultInternalRadiusKm,
			ExternalMinRadiusKm: DefaultExternalMinRadiusKm,
			ExternalMaxRadiusKm: DefaultExternalMaxRadiusKm,
		},
		CommissionPercentage: DefaultCommissionPercentage,
		MaxAllowedBalance:    DefaultMaxAllowedBalance,
	}
}

type DispatchSettingsModify struct {
	InternalRadiusKm     *float64
	ExternalMinRadiusKm  *float64
	ExternalMaxRadiusKm  *float64
	CommissionPercentage *float64
	MaxAllowedBalance    *float64
}

func (m DispatchSettingsModify) IsEmpty() bool {
	return m.InternalRadiusKm == nil &&
		m.ExternalMinRadiusKm == nil &&
		m.ExternalMaxRadiusKm == nil &&
		m.CommissionPercentage == nil &&
		m.MaxAllowedBalance == nil
}

// Apply возвращает копию настроек с примененными изменениями.
func (s DispatchSettings) Apply(m DispatchSettingsModify) DispatchSettings {
	if m.InternalRadiusKm != nil {
		s.Radius.InternalRadiusKm = *m.InternalRadiusKm
	}
	if m.ExternalMinRadiusKm != nil {
		s.Radius.ExternalMinRadiusKm = *m.ExternalMinRadiusKm
	}
	if m.ExternalMaxRadiusKm != nil {
		s.Radius.ExternalMaxRadiusKm = *m.ExternalMaxRadiusKm
	}
	if m.CommissionPercentage != nil {
		s.CommissionPercentage = *m.CommissionPercentage
	}
	if m.MaxAllowedBalance != nil {
		s.MaxAllowedBalance = *m.MaxAllowedBalance
	}
	return s
}

// BalanceRulesChanged true, если изменились параметры, от которых зависит приостановка.
func (s DispatchSettings) BalanceRulesChanged(next DispatchSettings) bool {
	return s.CommissionPercentage != next.CommissionPercentage ||
		s.MaxAllowedBalance != next.MaxAllowedBalance
}

type SettingsUpdate struct {
	Settings DispatchSettings
	Sweep    *SweepResult
}
