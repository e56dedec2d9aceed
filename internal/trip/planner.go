package trip

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/afonsob/travelbooker/internal/car"
	"github.com/afonsob/travelbooker/internal/domain"
	"github.com/afonsob/travelbooker/internal/hotel"
	"github.com/afonsob/travelbooker/internal/trip/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

// invoiceItemType is the item type trips are invoiced under; the tax
// registry must have it registered.
const invoiceItemType = "ADVENTURE"

type Status string

const (
	StatusConfirmed   Status = "confirmed"
	StatusCompensated Status = "compensated"
)

// Trip records one composite transaction: which references were obtained
// from each subsystem and how it ended. When a step fails, the planner
// cancels the earlier references in reverse order; there is no atomicity
// across subsystems, only compensation.
type Trip struct {
	ID                string
	Status            Status
	ActivityReference string
	BookingReference  string
	RentingReference  string
	PaymentReference  string
	InvoiceReference  string
	Amount            int64
	FailedStep        string
	CreatedAt         time.Time
}

type Input struct {
	Begin     time.Time
	End       time.Time
	Age       int
	BuyerNIF  string
	BuyerIBAN string
	WithCar   bool
	License   string
}

type Planner struct {
	activities ports.ActivityReserver
	hotels     ports.RoomBooker
	cars       ports.VehicleRenter
	bank       ports.PaymentProcessor
	tax        ports.InvoiceIssuer
	notifier   ports.TripNotifier
	log        logger.Logger

	mu    sync.RWMutex
	trips map[string]*Trip
}

func NewPlanner(
	activities ports.ActivityReserver,
	hotels ports.RoomBooker,
	cars ports.VehicleRenter,
	bank ports.PaymentProcessor,
	tax ports.InvoiceIssuer,
	notifier ports.TripNotifier,
	log logger.Logger,
) *Planner {
	return &Planner{
		activities: activities,
		hotels:     hotels,
		cars:       cars,
		bank:       bank,
		tax:        tax,
		notifier:   notifier,
		log:        log,
		trips:      make(map[string]*Trip),
	}
}

// compensation undoes one already-committed step.
type compensation struct {
	step string
	undo func() (string, error)
}

// Plan runs the composite transaction: reserve activity, book a room when
// the trip spans nights, rent a car when asked, pay, invoice. Each step
// commits locally in its own subsystem; on failure the completed steps are
// compensated in reverse and the trip is returned with the step that failed.
func (p *Planner) Plan(ctx context.Context, input Input) (*Trip, error) {
	if input.BuyerNIF == "" || input.BuyerIBAN == "" {
		return nil, fmt.Errorf("%w: buyer NIF and IBAN are required", domain.ErrInvalidArgument)
	}
	if input.WithCar && input.License == "" {
		return nil, fmt.Errorf("%w: driving license is required to rent a car", domain.ErrInvalidArgument)
	}
	window, err := domain.NewDateRange(input.Begin, input.End)
	if err != nil {
		return nil, err
	}

	t := &Trip{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
	}

	var (
		compensations []compensation
		providerNIF   string
	)

	fail := func(step string, stepErr error) (*Trip, error) {
		t.Status = StatusCompensated
		t.FailedStep = step
		p.compensate(t.ID, compensations)
		p.store(t)

		go p.notifier.NotifyTripCompensated(context.WithoutCancel(ctx), t.ID, step)

		return t, fmt.Errorf("%s: %w", step, stepErr)
	}

	// reserve activity
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	activityRef, err := p.activities.Reserve(input.Age, window.Begin, window.End, input.BuyerNIF)
	if err != nil {
		return fail("reserve activity", err)
	}
	t.ActivityReference = activityRef
	compensations = append(compensations, compensation{
		step: "cancel activity reservation",
		undo: func() (string, error) { return p.activities.CancelReservation(activityRef) },
	})

	reservation, err := p.activities.Reservation(activityRef)
	if err != nil {
		return fail("load activity reservation", err)
	}
	t.Amount += reservation.Amount
	providerNIF = reservation.ProviderNIF

	// book room for overnight trips
	if window.Nights() > 0 {
		if err := ctx.Err(); err != nil {
			return fail("book room", err)
		}
		bookingRef, err := p.hotels.Book(hotel.RoomSingle, window.Begin, window.End, input.BuyerNIF)
		if err != nil {
			return fail("book room", err)
		}
		t.BookingReference = bookingRef
		compensations = append(compensations, compensation{
			step: "cancel room booking",
			undo: func() (string, error) { return p.hotels.CancelBooking(bookingRef) },
		})

		booking, err := p.hotels.Booking(bookingRef)
		if err != nil {
			return fail("load room booking", err)
		}
		t.Amount += booking.Amount
	}

	// rent car on request
	if input.WithCar {
		if err := ctx.Err(); err != nil {
			return fail("rent vehicle", err)
		}
		rentingRef, err := p.cars.Rent(car.KindCar, input.License, input.BuyerNIF, input.BuyerIBAN, window.Begin, window.End)
		if err != nil {
			return fail("rent vehicle", err)
		}
		t.RentingReference = rentingRef
		compensations = append(compensations, compensation{
			step: "cancel vehicle renting",
			undo: func() (string, error) { return p.cars.CancelRenting(rentingRef) },
		})

		renting, err := p.cars.Renting(rentingRef)
		if err != nil {
			return fail("load vehicle renting", err)
		}
		t.Amount += renting.Amount
	}

	// pay
	if err := ctx.Err(); err != nil {
		return fail("process payment", err)
	}
	paymentRef, err := p.bank.ProcessPayment(input.BuyerIBAN, t.Amount)
	if err != nil {
		return fail("process payment", err)
	}
	t.PaymentReference = paymentRef
	compensations = append(compensations, compensation{
		step: "cancel payment",
		undo: func() (string, error) { return p.bank.CancelPayment(paymentRef) },
	})

	// invoice the sale
	if err := ctx.Err(); err != nil {
		return fail("submit invoice", err)
	}
	invoiceRef, err := p.tax.SubmitInvoice(providerNIF, input.BuyerNIF, invoiceItemType, t.Amount, window.Begin)
	if err != nil {
		return fail("submit invoice", err)
	}
	t.InvoiceReference = invoiceRef

	t.Status = StatusConfirmed
	p.store(t)

	p.log.Info("trip confirmed",
		logger.String("trip_id", t.ID),
		logger.Int64("amount", t.Amount),
	)

	go p.notifier.NotifyTripConfirmed(context.WithoutCancel(ctx), t.ID, t.Amount)

	return t, nil
}

// compensate runs the undo stack in reverse. A failed compensation is
// logged and the walk continues: the remaining references must still be
// released.
func (p *Planner) compensate(tripID string, compensations []compensation) {
	for i := len(compensations) - 1; i >= 0; i-- {
		c := compensations[i]
		token, err := c.undo()
		if err != nil {
			p.log.Error("compensation failed",
				logger.String("trip_id", tripID),
				logger.String("step", c.step),
				logger.String("error", err.Error()),
			)
			continue
		}
		p.log.Info("compensated",
			logger.String("trip_id", tripID),
			logger.String("step", c.step),
			logger.String("token", token),
		)
	}
}

func (p *Planner) store(t *Trip) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.trips[t.ID] = t
}

// Trip returns a snapshot of a recorded trip.
func (p *Planner) Trip(id string) (Trip, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	t, ok := p.trips[id]
	if !ok {
		return Trip{}, fmt.Errorf("%w: trip %q", domain.ErrNotFound, id)
	}
	return *t, nil
}
