package entities

import "time"

type Driver struct {
	ID                int64
	Name              string
	Phone             string
	VehicleType       VehicleType
	IsAvailable       bool
	IsActive          bool
	Location          *GeoPoint
	NotificationToken *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (d Driver) HasPushTarget() bool {
	return d.NotificationToken != nil && *d.NotificationToken != ""
}

func (d Driver) HasValidLocation() bool {
	return d.Location != nil && d.Location.IsValid()
}

// DriverModify изменяемые водителем поля. IsActive сюда не входит, им владеет
// машина состояний приостановки.
type DriverModify struct {
	ID                *int64
	Name              *string
	Phone             *string
	VehicleType       *VehicleType
	IsAvailable       *bool
	Location          *GeoPoint
	NotificationToken *string
}
