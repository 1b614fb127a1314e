package suspension_sweep

import (
	"context"
	"fmt"
	"time"

	"dispatch/pkg/logger"
)

// SuspensionSweep периодически прогоняет проверку баланса по всему парку.
// Догоняет водителей, чья проверка после платежа или доставки не прошла.
type SuspensionSweep struct {
	log      taskLogger
	service  Service
	interval time.Duration
}

func NewSuspensionSweep(log taskLogger, service Service, interval time.Duration) *SuspensionSweep {
	return &SuspensionSweep{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (s *SuspensionSweep) TTL() time.Duration {
	return s.interval
}

func (s *SuspensionSweep) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	result, err := s.service.CheckFleet(ctxWithTimeout)
	if err != nil {
		return fmt.Errorf("suspension sweep: %w", err)
	}

	if result.Suspended > 0 || result.Reactivated > 0 || result.Failed > 0 {
		s.log.Info("suspension sweep",
			logger.NewField("checked", result.Checked),
			logger.NewField("suspended", result.Suspended),
			logger.NewField("reactivated", result.Reactivated),
			logger.NewField("failed", result.Failed),
		)
	}
	return nil
}

func (s *SuspensionSweep) Info() string {
	return "suspension sweep"
}
