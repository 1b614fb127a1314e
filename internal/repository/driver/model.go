package driver

import "time"

type DriverDB struct {
	ID                int64
	Name              string
	Phone             string
	VehicleType       string
	IsAvailable       bool
	IsActive          bool
	Latitude          *float64
	Longitude         *float64
	NotificationToken *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type DriverModifyDB struct {
	ID                *int64
	Name              *string
	Phone             *string
	VehicleType       *string
	IsAvailable       *bool
	Latitude          *float64
	Longitude         *float64
	NotificationToken *string
}
