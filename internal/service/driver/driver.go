package driver

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
)

type Driver struct {
	repository Repository
}

func New(repository Repository) *Driver {
	return &Driver{
		repository: repository,
	}
}

func (s *Driver) RegisterDriver(ctx context.Context, driverModify entities.DriverModify) (int64, error) {
	if driverModify.Name == nil ||
		driverModify.Phone == nil ||
		driverModify.VehicleType == nil {
		return 0, ErrMissingRequiredFields
	}

	if err := validateModify(driverModify); err != nil {
		return 0, err
	}

	id, err := s.repository.Create(ctx, driverModify)
	if err != nil {
		return 0, fmt.Errorf("create driver: %w", err)
	}

	return id, nil
}

// UpdateDriver обновляет профиль, местоположение, доступность и push-токен.
func (s *Driver) UpdateDriver(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error) {
	if driverModify.ID == nil || *driverModify.ID <= 0 {
		return nil, ErrInvalidDriverID
	}

	if driverModify.Name == nil &&
		driverModify.Phone == nil &&
		driverModify.VehicleType == nil &&
		driverModify.IsAvailable == nil &&
		driverModify.Location == nil &&
		driverModify.NotificationToken == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if err := validateModify(driverModify); err != nil {
		return nil, err
	}

	driver, err := s.repository.Update(ctx, driverModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update driver: %w", err)
	}
	return driver, nil
}

func (s *Driver) GetDriver(ctx context.Context, id int64) (*entities.Driver, error) {
	if id <= 0 {
		return nil, ErrInvalidDriverID
	}

	driver, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}

	return driver, nil
}
