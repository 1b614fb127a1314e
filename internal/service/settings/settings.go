package settings

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type Service struct {
	repository Repository
	cache      Cache
	sweeper    Sweeper
	txManager  TxManager
	log        serviceLogger
}

func New(
	repository Repository,
	cache Cache,
	sweeper Sweeper,
	txManager TxManager,
	log serviceLogger,
) *Service {
	return &Service{
		repository: repository,
		cache:      cache,
		sweeper:    sweeper,
		txManager:  txManager,
		log:        log,
	}
}

// Get при первом чтении создает запись с настройками по умолчанию.
func (s *Service) Get(ctx context.Context) (*entities.DispatchSettings, error) {
	cached, found, err := s.cache.GetSettings(ctx)
	if err != nil {
		s.log.Warn("settings cache read failed", logger.NewField("error", err))
	}
	if found {
		return cached, nil
	}

	current, err := s.repository.GetOrCreate(ctx, entities.DefaultDispatchSettings())
	if err != nil {
		return nil, fmt.Errorf("get dispatch settings: %w", err)
	}

	if err := s.cache.SetSettings(ctx, *current); err != nil {
		s.log.Warn("settings cache write failed", logger.NewField("error", err))
	}
	return current, nil
}

// Update сохраняет изменения и, если поменялись комиссия или лимит баланса,
// прогоняет проверку приостановки по всем водителям.
func (s *Service) Update(ctx context.Context, modify entities.DispatchSettingsModify) (*entities.SettingsUpdate, error) {
	if modify.IsEmpty() {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	var previous, updated entities.DispatchSettings
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetOrCreate(ctx, entities.DefaultDispatchSettings())
		if err != nil {
			return fmt.Errorf("get dispatch settings: %w", err)
		}

		next := current.Apply(modify)
		if err := validateSettings(next); err != nil {
			return err
		}

		saved, err := s.repository.Save(ctx, next)
		if err != nil {
			return fmt.Errorf("save dispatch settings: %w", err)
		}

		// до коммита и повторно после: Get между ними мог вернуть в кеш старую строку
		s.invalidateCache(ctx)

		previous = *current
		updated = *saved
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)

	result := &entities.SettingsUpdate{Settings: updated}
	if !previous.BalanceRulesChanged(updated) {
		return result, nil
	}

	sweep, err := s.sweeper.EvaluateAll(ctx, updated)
	if err != nil {
		// настройки уже сохранены, периодическая проверка доберет остальных
		s.log.Error("suspension sweep after settings change failed", logger.NewField("error", err))
		return result, nil
	}
	result.Sweep = &sweep
	return result, nil
}

func (s *Service) invalidateCache(ctx context.Context) {
	if err := s.cache.InvalidateSettings(ctx); err != nil {
		s.log.Warn("settings cache invalidate failed", logger.NewField("error", err))
	}
}
