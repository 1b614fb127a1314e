package dto

import "time"

type DriverCreate struct {
	Name              string    `json:"name" validate:"required,max=255"`
	Phone             string    `json:"phone" validate:"required,e164"`
	VehicleType       string    `json:"vehicle_type" validate:"required,vehicle_type"`
	IsAvailable       *bool     `json:"is_available"`
	Location          *Location `json:"location" validate:"omitempty"`
	NotificationToken *string   `json:"notification_token" validate:"omitempty,max=4096"`
}

type DriverCreateResponse struct {
	ID int64 `json:"id"`
}

// DriverUpdate все поля опциональны, но хотя бы одно должно быть передано.
type DriverUpdate struct {
	Name              *string   `json:"name" validate:"omitempty,max=255"`
	Phone             *string   `json:"phone" validate:"omitempty,e164"`
	VehicleType       *string   `json:"vehicle_type" validate:"omitempty,vehicle_type"`
	IsAvailable       *bool     `json:"is_available"`
	Location          *Location `json:"location" validate:"omitempty"`
	NotificationToken *string   `json:"notification_token" validate:"omitempty,max=4096"`
}

type Driver struct {
	ID                   int64     `json:"id"`
	Name                 string    `json:"name"`
	Phone                string    `json:"phone"`
	VehicleType          string    `json:"vehicle_type"`
	IsAvailable          bool      `json:"is_available"`
	IsActive             bool      `json:"is_active"`
	Location             *Location `json:"location,omitempty"`
	HasNotificationToken bool      `json:"has_notification_token"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}
