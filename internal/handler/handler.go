package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/afonsob/travelbooker/internal/activity"
	"github.com/afonsob/travelbooker/internal/bank"
	"github.com/afonsob/travelbooker/internal/car"
	"github.com/afonsob/travelbooker/internal/domain"
	"github.com/afonsob/travelbooker/internal/handler/dto"
	"github.com/afonsob/travelbooker/internal/hotel"
	"github.com/afonsob/travelbooker/internal/tax"
	"github.com/afonsob/travelbooker/internal/trip"
	"github.com/wb-go/wbf/ginext"
)

// dateLayout is the wire format for calendar dates. Reservations work in
// whole days, so requests carry dates, not timestamps.
const dateLayout = "2006-01-02"

type BankSvc interface {
	Create(name, code string) error
	OpenAccount(bankCode, holder string) (string, error)
	Deposit(iban string, amount int64) (string, error)
	Withdraw(iban string, amount int64) (string, error)
	ProcessPayment(iban string, amount int64) (string, error)
	CancelPayment(reference string) (string, error)
	Operation(reference string) (bank.OperationData, error)
	Account(iban string) (bank.AccountData, error)
	Delete(code string) error
}

type HotelSvc interface {
	Create(code, name, nif, iban string, priceSingle, priceDouble int64) error
	AddRoom(hotelCode, number string, kind hotel.RoomType) error
	Book(kind hotel.RoomType, arrival, departure time.Time, buyerNIF string) (string, error)
	CancelBooking(reference string) (string, error)
	Booking(reference string) (hotel.BookingData, error)
	Delete(code string) error
}

type RentACarSvc interface {
	Create(name, nif, iban string) (string, error)
	AddVehicle(companyCode string, kind car.Kind, plate string, pricePerDay int64) error
	Rent(kind car.Kind, license, buyerNIF, buyerIBAN string, begin, end time.Time) (string, error)
	CancelRenting(reference string) (string, error)
	Renting(reference string) (car.RentingData, error)
	Delete(code string) error
}

type ActivitySvc interface {
	Create(code, name, nif, iban string) error
	NewActivity(providerCode, name string, capacity, minAge, maxAge int) (string, error)
	NewOffer(activityCode string, begin, end time.Time, amount int64) (string, error)
	Reserve(age int, begin, end time.Time, buyerNIF string) (string, error)
	CancelReservation(reference string) (string, error)
	Reservation(reference string) (activity.ReservationData, error)
	Delete(code string) error
}

type TaxSvc interface {
	RegisterTaxPayer(kind tax.PayerKind, nif, name string) error
	NewItemType(name string, rate int) error
	SubmitInvoice(sellerNIF, buyerNIF, itemType string, value int64, date time.Time) (string, error)
	CancelInvoice(reference string) (string, error)
	Invoice(reference string) (tax.InvoiceData, error)
}

type TripSvc interface {
	Plan(ctx context.Context, input trip.Input) (*trip.Trip, error)
	Trip(id string) (trip.Trip, error)
}

type Handler struct {
	banks      BankSvc
	hotels     HotelSvc
	rentacars  RentACarSvc
	activities ActivitySvc
	taxes      TaxSvc
	trips      TripSvc
}

func NewHandler(banks BankSvc, hotels HotelSvc, rentacars RentACarSvc, activities ActivitySvc, taxes TaxSvc, trips TripSvc) *Handler {
	return &Handler{
		banks:      banks,
		hotels:     hotels,
		rentacars:  rentacars,
		activities: activities,
		taxes:      taxes,
		trips:      trips,
	}
}

// parseDate reads a "2006-01-02" value and replies 400 itself when the
// value does not parse.
func (h *Handler) parseDate(c *ginext.Context, field, value string) (time.Time, bool) {
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid " + field + " format, expected " + dateLayout,
		})
		return time.Time{}, false
	}
	return d.UTC(), true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrAccountNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNoAvailability),
		errors.Is(err, domain.ErrAlreadyCancelled),
		errors.Is(err, domain.ErrDuplicateIdentity),
		errors.Is(err, domain.ErrInsufficientFunds):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidArgument),
		errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, domain.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
