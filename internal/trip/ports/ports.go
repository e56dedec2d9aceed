// Package ports holds the narrow interfaces through which the trip planner
// consumes the subsystems. Each subsystem registry satisfies its port
// directly; the planner never sees registry internals.
package ports

import (
	"context"
	"time"

	"github.com/afonsob/travelbooker/internal/activity"
	"github.com/afonsob/travelbooker/internal/car"
	"github.com/afonsob/travelbooker/internal/hotel"
)

type ActivityReserver interface {
	Reserve(age int, begin, end time.Time, buyerNIF string) (string, error)
	Reservation(reference string) (activity.ReservationData, error)
	CancelReservation(reference string) (string, error)
}

type RoomBooker interface {
	Book(kind hotel.RoomType, arrival, departure time.Time, buyerNIF string) (string, error)
	Booking(reference string) (hotel.BookingData, error)
	CancelBooking(reference string) (string, error)
}

type VehicleRenter interface {
	Rent(kind car.Kind, license, buyerNIF, buyerIBAN string, begin, end time.Time) (string, error)
	Renting(reference string) (car.RentingData, error)
	CancelRenting(reference string) (string, error)
}

type PaymentProcessor interface {
	ProcessPayment(iban string, amount int64) (string, error)
	CancelPayment(reference string) (string, error)
}

type InvoiceIssuer interface {
	SubmitInvoice(sellerNIF, buyerNIF, itemType string, value int64, date time.Time) (string, error)
	CancelInvoice(reference string) (string, error)
}

type TripNotifier interface {
	NotifyTripConfirmed(ctx context.Context, tripID string, amount int64)
	NotifyTripCompensated(ctx context.Context, tripID, failedStep string)
}
