package hotel

import (
	"fmt"
	"sync"
	"time"

	"github.com/afonsob/travelbooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// Registry is the process-wide index of hotels. Booking scans rooms across
// every registered hotel (pool of pools) and the first free room wins; no
// ordering by price or code is promised. All operations are serialized by
// the registry lock, so vacancy is re-checked at the moment the booking is
// recorded, never only at match time.
type Registry struct {
	mu     sync.Mutex
	hotels map[string]*Hotel
	seq    *domain.Sequence
	log    logger.Logger
}

func NewRegistry(log logger.Logger) *Registry {
	return &Registry{
		hotels: make(map[string]*Hotel),
		seq:    domain.NewSequence(),
		log:    log,
	}
}

func (r *Registry) Create(code, name, nif, iban string, priceSingle, priceDouble int64) error {
	if code == "" || name == "" || nif == "" || iban == "" {
		return fmt.Errorf("%w: hotel code, name, NIF and IBAN are required", domain.ErrInvalidArgument)
	}
	if len(code) != codeLength {
		return fmt.Errorf("%w: hotel code must have %d characters", domain.ErrInvalidArgument, codeLength)
	}
	if priceSingle <= 0 || priceDouble <= 0 {
		return fmt.Errorf("%w: room prices must be positive", domain.ErrInvalidAmount)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.hotels[code]; ok {
		return fmt.Errorf("%w: hotel %q", domain.ErrDuplicateIdentity, code)
	}

	r.hotels[code] = &Hotel{
		code:        code,
		name:        name,
		nif:         nif,
		iban:        iban,
		priceSingle: priceSingle,
		priceDouble: priceDouble,
	}

	r.log.Info("hotel created",
		logger.String("code", code),
		logger.String("name", name),
	)

	return nil
}

func (r *Registry) AddRoom(hotelCode, number string, kind RoomType) error {
	if number == "" {
		return fmt.Errorf("%w: room number is required", domain.ErrInvalidArgument)
	}
	if kind != RoomSingle && kind != RoomDouble {
		return fmt.Errorf("%w: unknown room type %q", domain.ErrInvalidArgument, kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.hotels[hotelCode]
	if !ok {
		return fmt.Errorf("%w: hotel %q", domain.ErrNotFound, hotelCode)
	}
	if h.hasRoom(number) {
		return fmt.Errorf("%w: room %s already exists in hotel %s", domain.ErrInvalidArgument, number, hotelCode)
	}

	h.rooms = append(h.rooms, &room{number: number, kind: kind})
	return nil
}

// Book reserves a room of the given type anywhere in the subsystem and
// returns the booking reference, prefixed by the owning hotel's code.
// Arrival equal to departure is a valid zero-night stay.
func (r *Registry) Book(kind RoomType, arrival, departure time.Time, buyerNIF string) (string, error) {
	if buyerNIF == "" {
		return "", fmt.Errorf("%w: buyer NIF is required", domain.ErrInvalidArgument)
	}
	window, err := domain.NewDateRange(arrival, departure)
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, h := range r.hotels {
		for _, rm := range h.rooms {
			if rm.kind != kind || !rm.free(window) {
				continue
			}

			b := &booking{
				reference: r.seq.Next(h.code),
				state:     domain.ReservationActive,
				window:    window,
				buyerNIF:  buyerNIF,
			}
			rm.bookings = append(rm.bookings, b)

			r.log.Info("room booked",
				logger.String("reference", b.reference),
				logger.String("room", rm.number),
				logger.String("window", window.String()),
			)

			return b.reference, nil
		}
	}

	return "", fmt.Errorf("%w: no free %s room for %s", domain.ErrNoAvailability, kind, window)
}

// CancelBooking flips an active booking to cancelled and returns the
// cancellation token. Exactly one concurrent caller can succeed; the rest
// observe the cancelled state.
func (r *Registry) CancelBooking(reference string) (string, error) {
	if reference == "" {
		return "", fmt.Errorf("%w: reference is required", domain.ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, _, b, err := r.find(reference)
	if err != nil {
		return "", err
	}
	if b.state == domain.ReservationCancelled {
		return "", fmt.Errorf("%w: booking %s", domain.ErrAlreadyCancelled, b.reference)
	}

	b.state = domain.ReservationCancelled
	b.cancellation = domain.CancelToken(b.reference)

	r.log.Info("booking cancelled",
		logger.String("reference", b.reference),
		logger.String("token", b.cancellation),
	)

	return b.cancellation, nil
}

// Booking resolves a reference or cancellation token into a snapshot.
func (r *Registry) Booking(reference string) (BookingData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, rm, b, err := r.find(reference)
	if err != nil {
		return BookingData{}, err
	}
	return snapshot(h, rm, b), nil
}

func (r *Registry) find(reference string) (*Hotel, *room, *booking, error) {
	for _, h := range r.hotels {
		for _, rm := range h.rooms {
			if b := rm.find(reference); b != nil {
				return h, rm, b, nil
			}
		}
	}
	return nil, nil, nil, fmt.Errorf("%w: booking %q", domain.ErrNotFound, reference)
}

// Delete tears a hotel down, cancelling every active booking of every room
// before removing the hotel from the index.
func (r *Registry) Delete(code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.hotels[code]
	if !ok {
		return fmt.Errorf("%w: hotel %q", domain.ErrNotFound, code)
	}

	for _, rm := range h.rooms {
		for _, b := range rm.bookings {
			if b.state == domain.ReservationActive {
				b.state = domain.ReservationCancelled
				b.cancellation = domain.CancelToken(b.reference)
			}
		}
		rm.bookings = nil
	}
	h.rooms = nil
	delete(r.hotels, code)

	return nil
}
