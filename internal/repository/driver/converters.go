package driver

import (
	"dispatch/internal/entities"
)

func ToDomain(d *DriverDB) *entities.Driver {
	if d == nil {
		return nil
	}

	driver := &entities.Driver{
		ID:                d.ID,
		Name:              d.Name,
		Phone:             d.Phone,
		VehicleType:       entities.VehicleType(d.VehicleType),
		IsAvailable:       d.IsAvailable,
		IsActive:          d.IsActive,
		NotificationToken: d.NotificationToken,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
	if d.Latitude != nil && d.Longitude != nil {
		driver.Location = &entities.GeoPoint{Lat: *d.Latitude, Lng: *d.Longitude}
	}
	return driver
}

func FromDomainModify(driverModify *entities.DriverModify) *DriverModifyDB {
	if driverModify == nil {
		return nil
	}

	driverDB := &DriverModifyDB{
		ID:                driverModify.ID,
		Name:              driverModify.Name,
		Phone:             driverModify.Phone,
		IsAvailable:       driverModify.IsAvailable,
		NotificationToken: driverModify.NotificationToken,
	}
	if driverModify.VehicleType != nil {
		vehicleType := driverModify.VehicleType.String()
		driverDB.VehicleType = &vehicleType
	}
	if driverModify.Location != nil {
		lat, lng := driverModify.Location.Lat, driverModify.Location.Lng
		driverDB.Latitude = &lat
		driverDB.Longitude = &lng
	}
	return driverDB
}

func ToDomainList(driversDB []DriverDB) []entities.Driver {
	if len(driversDB) == 0 {
		return []entities.Driver{}
	}

	result := make([]entities.Driver, len(driversDB))
	for i, driverDB := range driversDB {
		result[i] = *ToDomain(&driverDB)
	}
	return result
}
