package servicearea

import "dispatch/internal/entities"

func validateArea(area entities.ServiceArea) error {
	if area.RegionID <= 0 {
		return ErrInvalidRegionID
	}
	if area.Center != nil && !area.Center.IsValid() {
		return ErrInvalidCenter
	}
	if !area.Radius.IsValid() {
		return ErrInvalidRadius
	}
	return nil
}
