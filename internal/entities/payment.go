package entities

import "time"

type Payment struct {
	ID       int64
	DriverID int64
	Amount   float64
	Note     string
	PaidAt   time.Time
}

type BalanceTotals struct {
	DeliveredRevenue float64
	TotalPaid        float64
}

// BalanceSnapshot производное значение, не хранится.
type BalanceSnapshot struct {
	DriverID             int64
	TotalDeliveryRevenue float64
	CommissionPercentage float64
	CommissionOwed       float64
	TotalPaid            float64
	CurrentBalance       float64
}

type PaymentReceipt struct {
	Payment    Payment
	Balance    BalanceSnapshot
	Suspension SuspensionEvaluation
}
