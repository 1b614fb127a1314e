package entities

type SuspensionTransition string

const (
	TransitionNone        SuspensionTransition = "none"
	TransitionSuspended   SuspensionTransition = "suspended"
	TransitionReactivated SuspensionTransition = "reactivated"
)

func (t SuspensionTransition) String() string {
	return string(t)
}

type SuspensionEvaluation struct {
	DriverID          int64
	Balance           float64
	MaxAllowedBalance float64
	WasActive         bool
	IsActive          bool
	Transition        SuspensionTransition
}

type SweepResult struct {
	Checked     int
	Suspended   int
	Reactivated int
	Failed      int
}
