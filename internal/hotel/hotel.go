package hotel

import (
	"time"

	"github.com/afonsob/travelbooker/internal/domain"
)

const codeLength = 7

type RoomType string

const (
	RoomSingle RoomType = "SINGLE"
	RoomDouble RoomType = "DOUBLE"
)

// Hotel owns its rooms; a room owns its bookings. Code, prices and room
// numbers are immutable after creation.
type Hotel struct {
	code        string
	name        string
	nif         string
	iban        string
	priceSingle int64
	priceDouble int64
	rooms       []*room
}

type room struct {
	number   string
	kind     RoomType
	bookings []*booking
}

type booking struct {
	reference    string
	cancellation string
	state        domain.ReservationState
	window       domain.DateRange
	buyerNIF     string
}

func (h *Hotel) Code() string { return h.code }
func (h *Hotel) Name() string { return h.name }

func (h *Hotel) price(kind RoomType) int64 {
	if kind == RoomDouble {
		return h.priceDouble
	}
	return h.priceSingle
}

func (h *Hotel) hasRoom(number string) bool {
	for _, rm := range h.rooms {
		if rm.number == number {
			return true
		}
	}
	return false
}

// free reports whether the room has no active booking overlapping the
// window. Stays are half-open: a departure day is free for the next arrival.
func (rm *room) free(window domain.DateRange) bool {
	for _, b := range rm.bookings {
		if b.state == domain.ReservationActive && b.window.Overlaps(window) {
			return false
		}
	}
	return true
}

// find matches the original reference, or the cancellation token of an
// already cancelled booking.
func (rm *room) find(reference string) *booking {
	for _, b := range rm.bookings {
		if b.reference == reference {
			return b
		}
		if b.state == domain.ReservationCancelled && b.cancellation == reference {
			return b
		}
	}
	return nil
}

type BookingData struct {
	Reference         string
	CancellationToken string
	State             domain.ReservationState
	HotelCode         string
	HotelName         string
	RoomNumber        string
	RoomType          RoomType
	Arrival           time.Time
	Departure         time.Time
	BuyerNIF          string
	Amount            int64
}

func snapshot(h *Hotel, rm *room, b *booking) BookingData {
	return BookingData{
		Reference:         b.reference,
		CancellationToken: b.cancellation,
		State:             b.state,
		HotelCode:         h.code,
		HotelName:         h.name,
		RoomNumber:        rm.number,
		RoomType:          rm.kind,
		Arrival:           b.window.Begin,
		Departure:         b.window.End,
		BuyerNIF:          b.buyerNIF,
		Amount:            int64(b.window.Nights()) * h.price(rm.kind),
	}
}
