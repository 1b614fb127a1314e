package driver

import (
	"strings"

	"dispatch/internal/entities"
)

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if len(phone) < 2 || !strings.HasPrefix(phone, "+") {
		return false
	}

	for _, char := range phone[1:] {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func validateModify(m entities.DriverModify) error {
	if m.Name != nil && !isValidName(*m.Name) {
		return ErrInvalidName
	}
	if m.Phone != nil && !isValidPhone(*m.Phone) {
		return ErrInvalidPhone
	}
	if m.VehicleType != nil && !m.VehicleType.IsValid() {
		return ErrInvalidVehicleType
	}
	if m.Location != nil && !m.Location.IsValid() {
		return ErrInvalidLocation
	}
	return nil
}
