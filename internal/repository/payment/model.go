package payment

import "time"

type PaymentDB struct {
	ID       int64
	DriverID int64
	Amount   float64
	Note     string
	PaidAt   time.Time
}
