package domain

// ReservationState is the lifecycle of any commitment in the ecosystem.
// The only transition is Active -> Cancelled, and it is terminal.
type ReservationState string

const (
	ReservationActive    ReservationState = "active"
	ReservationCancelled ReservationState = "cancelled"
)
