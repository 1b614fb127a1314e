package dto

import "time"

type Balance struct {
	DriverID             int64   `json:"driver_id"`
	TotalDeliveryRevenue float64 `json:"total_delivery_revenue"`
	CommissionPercentage float64 `json:"commission_percentage"`
	CommissionOwed       float64 `json:"commission_owed"`
	TotalPaid            float64 `json:"total_paid"`
	CurrentBalance       float64 `json:"current_balance"`
}

type PaymentCreate struct {
	Amount float64 `json:"amount" validate:"gt=0"`
	Note   string  `json:"note" validate:"max=512"`
}

type Payment struct {
	ID       int64     `json:"id"`
	DriverID int64     `json:"driver_id"`
	Amount   float64   `json:"amount"`
	Note     string    `json:"note"`
	PaidAt   time.Time `json:"paid_at"`
}

type SuspensionEvaluation struct {
	Balance           float64 `json:"balance"`
	MaxAllowedBalance float64 `json:"max_allowed_balance"`
	WasActive         bool    `json:"was_active"`
	IsActive          bool    `json:"is_active"`
	Transition        string  `json:"transition"`
}

type PaymentReceipt struct {
	Payment    Payment              `json:"payment"`
	Balance    Balance              `json:"balance"`
	Suspension SuspensionEvaluation `json:"suspension"`
}

type SuspensionOverride struct {
	Active *bool `json:"active" validate:"required"`
}

type SweepResult struct {
	Checked     int `json:"checked"`
	Suspended   int `json:"suspended"`
	Reactivated int `json:"reactivated"`
	Failed      int `json:"failed"`
}
