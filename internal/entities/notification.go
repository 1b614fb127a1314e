package entities

import "strconv"

type PushTargetKind string

const (
	PushTargetDriver   PushTargetKind = "driver"
	PushTargetCustomer PushTargetKind = "customer"
)

type PushTarget struct {
	Kind PushTargetKind
	ID   int64
}

func (t PushTarget) String() string {
	return string(t.Kind) + ":" + strconv.FormatInt(t.ID, 10)
}

type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

type DispatchResult struct {
	Notified   int
	Skipped    int
	Failed     int
	Expansions int
	Radius     RadiusConfig
}
