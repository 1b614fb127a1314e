package ledger

import (
	"context"
	"fmt"
	"math"
	"time"

	"dispatch/internal/entities"
)

const defaultPaymentsLimit = 100

type Ledger struct {
	repository Repository
}

func New(repository Repository) *Ledger {
	return &Ledger{
		repository: repository,
	}
}

// Snapshot owed = revenue * commission / 100, balance = owed - paid.
// Отрицательный баланс означает переплату.
func Snapshot(driverID int64, totals entities.BalanceTotals, commissionPercentage float64) entities.BalanceSnapshot {
	owed := roundCents(totals.DeliveredRevenue * commissionPercentage / 100)
	return entities.BalanceSnapshot{
		DriverID:             driverID,
		TotalDeliveryRevenue: totals.DeliveredRevenue,
		CommissionPercentage: commissionPercentage,
		CommissionOwed:       owed,
		TotalPaid:            totals.TotalPaid,
		CurrentBalance:       roundCents(owed - totals.TotalPaid),
	}
}

// ComputeBalance каждый раз пересчитывает баланс по всей истории водителя.
func (l *Ledger) ComputeBalance(
	ctx context.Context,
	driverID int64,
	settings entities.DispatchSettings,
) (*entities.BalanceSnapshot, error) {
	if driverID <= 0 {
		return nil, ErrInvalidDriverID
	}

	totals, err := l.repository.GetTotals(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("get balance totals: %w", err)
	}

	snapshot := Snapshot(driverID, totals, settings.CommissionPercentage)
	return &snapshot, nil
}

// AppendPayment платежи только добавляются, баланс пересчитывается при следующем чтении.
func (l *Ledger) AppendPayment(ctx context.Context, driverID int64, amount float64, note string) (*entities.Payment, error) {
	if driverID <= 0 {
		return nil, ErrInvalidDriverID
	}
	if !isValidAmount(amount) {
		return nil, ErrInvalidAmount
	}

	payment, err := l.repository.CreatePayment(ctx, entities.Payment{
		DriverID: driverID,
		Amount:   roundCents(amount),
		Note:     note,
		PaidAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}
	return payment, nil
}

// ListPayments от новых к старым.
func (l *Ledger) ListPayments(ctx context.Context, driverID int64, limit uint64) ([]entities.Payment, error) {
	if driverID <= 0 {
		return nil, ErrInvalidDriverID
	}
	if limit == 0 {
		limit = defaultPaymentsLimit
	}

	payments, err := l.repository.ListPayments(ctx, driverID, limit)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
