package suspension

import (
	"context"
	"fmt"
	"sync"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"

	"golang.org/x/sync/errgroup"
)

const (
	maxEvaluateAttempts = 3
	defaultSweepLimit   = 8
)

// Machine единственное место, где меняется Driver.IsActive.
type Machine struct {
	repository Repository
	balances   BalanceCalculator
	log        serviceLogger
	sweepLimit int
}

func New(repository Repository, balances BalanceCalculator, log serviceLogger, sweepLimit int) *Machine {
	if sweepLimit <= 0 {
		sweepLimit = defaultSweepLimit
	}
	return &Machine{
		repository: repository,
		balances:   balances,
		log:        log,
		sweepLimit: sweepLimit,
	}
}

// Decide balance <= 0 активирует, balance >= max приостанавливает, между ними
// состояние не меняется.
func Decide(wasActive bool, balance, maxAllowed float64) (bool, entities.SuspensionTransition) {
	next := wasActive
	switch {
	case balance <= 0:
		next = true
	case balance >= maxAllowed:
		next = false
	}

	switch {
	case wasActive && !next:
		return next, entities.TransitionSuspended
	case !wasActive && next:
		return next, entities.TransitionReactivated
	default:
		return next, entities.TransitionNone
	}
}

// Evaluate идемпотентна: повторный вызов без изменений истории ничего не меняет.
func (m *Machine) Evaluate(
	ctx context.Context,
	driverID int64,
	settings entities.DispatchSettings,
) (*entities.SuspensionEvaluation, error) {
	if driverID <= 0 {
		return nil, ErrInvalidDriverID
	}

	for attempt := 0; attempt < maxEvaluateAttempts; attempt++ {
		wasActive, err := m.repository.GetActivity(ctx, driverID)
		if err != nil {
			return nil, fmt.Errorf("get driver activity: %w", err)
		}

		snapshot, err := m.balances.ComputeBalance(ctx, driverID, settings)
		if err != nil {
			return nil, fmt.Errorf("compute balance: %w", err)
		}

		next, transition := Decide(wasActive, snapshot.CurrentBalance, settings.MaxAllowedBalance)
		evaluation := &entities.SuspensionEvaluation{
			DriverID:          driverID,
			Balance:           snapshot.CurrentBalance,
			MaxAllowedBalance: settings.MaxAllowedBalance,
			WasActive:         wasActive,
			IsActive:          next,
			Transition:        transition,
		}
		if transition == entities.TransitionNone {
			return evaluation, nil
		}

		swapped, err := m.repository.CompareAndSetActive(ctx, driverID, wasActive, next)
		if err != nil {
			return nil, fmt.Errorf("set driver activity: %w", err)
		}
		if !swapped {
			// состояние поменяли между чтением и записью, перечитываем
			continue
		}

		transitionsTotal.WithLabelValues(transition.String()).Inc()
		m.log.Info("driver activity changed",
			logger.NewField("driver_id", driverID),
			logger.NewField("transition", transition.String()),
			logger.NewField("balance", snapshot.CurrentBalance),
			logger.NewField("max_allowed_balance", settings.MaxAllowedBalance),
		)
		return evaluation, nil
	}

	return nil, ErrConcurrentUpdate
}

// EvaluateAll проверяет всех водителей. Ошибка по отдельному водителю попадает в
// счетчик Failed и не прерывает обход.
func (m *Machine) EvaluateAll(ctx context.Context, settings entities.DispatchSettings) (entities.SweepResult, error) {
	start := time.Now()
	defer func() {
		sweepDuration.Observe(time.Since(start).Seconds())
	}()

	ids, err := m.repository.ListDriverIDs(ctx)
	if err != nil {
		return entities.SweepResult{}, fmt.Errorf("list drivers: %w", err)
	}

	var (
		mu     sync.Mutex
		result = entities.SweepResult{Checked: len(ids)}
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.sweepLimit)

	for _, id := range ids {
		g.Go(func() error {
			evaluation, err := m.Evaluate(gctx, id, settings)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				result.Failed++
				m.log.Warn("driver evaluation failed",
					logger.NewField("driver_id", id),
					logger.NewField("error", err),
				)
				return nil
			}

			switch evaluation.Transition {
			case entities.TransitionSuspended:
				result.Suspended++
			case entities.TransitionReactivated:
				result.Reactivated++
			}
			return nil
		})
	}

	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("sweep interrupted: %w", err)
	}
	return result, nil
}

// Override ручное переключение администратором. Держится, пока баланс внутри
// полосы гистерезиса; выход за порог при следующей проверке вернет автоматику.
func (m *Machine) Override(ctx context.Context, driverID int64, active bool) (*entities.Driver, error) {
	if driverID <= 0 {
		return nil, ErrInvalidDriverID
	}

	driver, err := m.repository.SetActive(ctx, driverID, active)
	if err != nil {
		return nil, fmt.Errorf("override driver activity: %w", err)
	}

	m.log.Info("driver activity overridden",
		logger.NewField("driver_id", driverID),
		logger.NewField("active", active),
	)
	return driver, nil
}
