package accounting

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

// Service связывает журнал платежей с автоматом приостановки: любое изменение
// баланса заканчивается проверкой водителя.
type Service struct {
	ledger    Ledger
	evaluator Evaluator
	settings  SettingsProvider
	log       serviceLogger
}

func New(ledger Ledger, evaluator Evaluator, settings SettingsProvider, log serviceLogger) *Service {
	return &Service{
		ledger:    ledger,
		evaluator: evaluator,
		settings:  settings,
		log:       log,
	}
}

func (s *Service) Balance(ctx context.Context, driverID int64) (*entities.BalanceSnapshot, error) {
	if driverID <= 0 {
		return nil, ErrInvalidDriverID
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get dispatch settings: %w", err)
	}

	snapshot, err := s.ledger.ComputeBalance(ctx, driverID, *settings)
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// RecordPayment добавляет платеж, пересчитывает баланс и проверяет водителя.
// Платеж уже сохранен, поэтому сбой проверки не отменяет запись, его догонит
// периодическая проверка парка.
func (s *Service) RecordPayment(
	ctx context.Context,
	driverID int64,
	amount float64,
	note string,
) (*entities.PaymentReceipt, error) {
	if driverID <= 0 {
		return nil, ErrInvalidDriverID
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get dispatch settings: %w", err)
	}

	payment, err := s.ledger.AppendPayment(ctx, driverID, amount, note)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.ledger.ComputeBalance(ctx, driverID, *settings)
	if err != nil {
		return nil, err
	}

	receipt := &entities.PaymentReceipt{
		Payment: *payment,
		Balance: *snapshot,
		Suspension: entities.SuspensionEvaluation{
			DriverID:          driverID,
			Balance:           snapshot.CurrentBalance,
			MaxAllowedBalance: settings.MaxAllowedBalance,
			Transition:        entities.TransitionNone,
		},
	}

	evaluation, err := s.evaluator.Evaluate(ctx, driverID, *settings)
	if err != nil {
		s.log.Error("balance evaluation after payment failed",
			logger.NewField("driver_id", driverID),
			logger.NewField("payment_id", payment.ID),
			logger.NewField("error", err),
		)
		return receipt, nil
	}
	receipt.Suspension = *evaluation

	s.log.Info("payment recorded",
		logger.NewField("driver_id", driverID),
		logger.NewField("payment_id", payment.ID),
		logger.NewField("amount", payment.Amount),
		logger.NewField("balance", snapshot.CurrentBalance),
		logger.NewField("transition", evaluation.Transition.String()),
	)
	return receipt, nil
}

func (s *Service) ListPayments(ctx context.Context, driverID int64, limit uint64) ([]entities.Payment, error) {
	if driverID <= 0 {
		return nil, ErrInvalidDriverID
	}
	return s.ledger.ListPayments(ctx, driverID, limit)
}

// CheckFleet проверка баланса всех водителей по текущим настройкам.
func (s *Service) CheckFleet(ctx context.Context) (entities.SweepResult, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return entities.SweepResult{}, fmt.Errorf("get dispatch settings: %w", err)
	}

	result, err := s.evaluator.EvaluateAll(ctx, *settings)
	if err != nil {
		return result, fmt.Errorf("evaluate fleet: %w", err)
	}

	s.log.Info("fleet balance check finished",
		logger.NewField("checked", result.Checked),
		logger.NewField("suspended", result.Suspended),
		logger.NewField("reactivated", result.Reactivated),
		logger.NewField("failed", result.Failed),
	)
	return result, nil
}
