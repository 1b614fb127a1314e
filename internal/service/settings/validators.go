package settings

import "dispatch/internal/entities"

func validateSettings(s entities.DispatchSettings) error {
	if !s.Radius.IsValid() {
		return ErrInvalidRadius
	}
	if s.CommissionPercentage < 0 || s.CommissionPercentage > 100 {
		return ErrInvalidCommission
	}
	if s.MaxAllowedBalance < 0 {
		return ErrInvalidMaxBalance
	}
	return nil
}
