package activity

import (
	"fmt"
	"sync"
	"time"

	"github.com/afonsob/travelbooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// Registry is the process-wide index of activity providers. Reserve scans
// offers across every provider and books the first one whose activity admits
// the participant's age and whose window matches exactly. The registry lock
// makes the vacancy check and the booking record a single step.
type Registry struct {
	mu        sync.Mutex
	providers map[string]*Provider
	seq       *domain.Sequence
	log       logger.Logger
}

func NewRegistry(log logger.Logger) *Registry {
	return &Registry{
		providers: make(map[string]*Provider),
		seq:       domain.NewSequence(),
		log:       log,
	}
}

func (r *Registry) Create(code, name, nif, iban string) error {
	if code == "" || name == "" || nif == "" || iban == "" {
		return fmt.Errorf("%w: provider code, name, NIF and IBAN are required", domain.ErrInvalidArgument)
	}
	if len(code) != codeLength {
		return fmt.Errorf("%w: provider code must have %d characters", domain.ErrInvalidArgument, codeLength)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.providers[code]; ok {
		return fmt.Errorf("%w: provider %q", domain.ErrDuplicateIdentity, code)
	}
	for _, p := range r.providers {
		if p.nif == nif {
			return fmt.Errorf("%w: NIF %q", domain.ErrDuplicateIdentity, nif)
		}
	}

	r.providers[code] = &Provider{code: code, name: name, nif: nif, iban: iban}

	r.log.Info("activity provider created",
		logger.String("code", code),
		logger.String("name", name),
	)

	return nil
}

// NewActivity registers an activity and returns its code, used to attach
// offers to it.
func (r *Registry) NewActivity(providerCode, name string, capacity, minAge, maxAge int) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: activity name is required", domain.ErrInvalidArgument)
	}
	if capacity < 1 {
		return "", fmt.Errorf("%w: capacity must be at least 1", domain.ErrInvalidArgument)
	}
	if minAge < 0 || maxAge < minAge {
		return "", fmt.Errorf("%w: age range %d..%d", domain.ErrInvalidArgument, minAge, maxAge)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.providers[providerCode]
	if !ok {
		return "", fmt.Errorf("%w: provider %q", domain.ErrNotFound, providerCode)
	}

	a := &activityEntry{
		code:     r.seq.Next(p.code),
		name:     name,
		capacity: capacity,
		minAge:   minAge,
		maxAge:   maxAge,
	}
	p.activities = append(p.activities, a)

	return a.code, nil
}

// NewOffer opens a bookable slot of an activity for an exact window. The
// offer inherits the activity's capacity.
func (r *Registry) NewOffer(activityCode string, begin, end time.Time, amount int64) (string, error) {
	window, err := domain.NewDateRange(begin, end)
	if err != nil {
		return "", err
	}
	if amount < minAmount {
		return "", fmt.Errorf("%w: offer amount must be at least %d", domain.ErrInvalidAmount, minAmount)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.providers {
		for _, a := range p.activities {
			if a.code != activityCode {
				continue
			}

			o := &offer{
				code:     r.seq.Next(a.code),
				window:   window,
				capacity: a.capacity,
				amount:   amount,
			}
			a.offers = append(a.offers, o)
			return o.code, nil
		}
	}

	return "", fmt.Errorf("%w: activity %q", domain.ErrNotFound, activityCode)
}

// Reserve books a slot in the first available offer across all providers
// whose activity admits the given age and whose window matches exactly.
func (r *Registry) Reserve(age int, begin, end time.Time, buyerNIF string) (string, error) {
	if buyerNIF == "" {
		return "", fmt.Errorf("%w: buyer NIF is required", domain.ErrInvalidArgument)
	}
	window, err := domain.NewDateRange(begin, end)
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.providers {
		for _, a := range p.activities {
			if !a.matchesAge(age) {
				continue
			}
			for _, o := range a.offers {
				if !o.available(window) {
					continue
				}

				b := &booking{
					reference: r.seq.Next(o.code),
					state:     domain.ReservationActive,
					buyerNIF:  buyerNIF,
				}
				o.bookings = append(o.bookings, b)

				r.log.Info("activity reserved",
					logger.String("reference", b.reference),
					logger.String("offer", o.code),
					logger.String("window", window.String()),
				)

				return b.reference, nil
			}
		}
	}

	return "", fmt.Errorf("%w: no offer for age %d and %s", domain.ErrNoAvailability, age, window)
}

func (r *Registry) CancelReservation(reference string) (string, error) {
	if reference == "" {
		return "", fmt.Errorf("%w: reference is required", domain.ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, _, _, b, err := r.find(reference)
	if err != nil {
		return "", err
	}
	if b.state == domain.ReservationCancelled {
		return "", fmt.Errorf("%w: reservation %s", domain.ErrAlreadyCancelled, b.reference)
	}

	b.state = domain.ReservationCancelled
	b.cancellation = domain.CancelToken(b.reference)

	r.log.Info("activity reservation cancelled",
		logger.String("reference", b.reference),
		logger.String("token", b.cancellation),
	)

	return b.cancellation, nil
}

// Reservation resolves a reference or cancellation token into a snapshot.
func (r *Registry) Reservation(reference string) (ReservationData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, a, o, b, err := r.find(reference)
	if err != nil {
		return ReservationData{}, err
	}
	return snapshot(p, a, o, b), nil
}

func (r *Registry) find(reference string) (*Provider, *activityEntry, *offer, *booking, error) {
	for _, p := range r.providers {
		for _, a := range p.activities {
			for _, o := range a.offers {
				if b := o.find(reference); b != nil {
					return p, a, o, b, nil
				}
			}
		}
	}
	return nil, nil, nil, nil, fmt.Errorf("%w: reservation %q", domain.ErrNotFound, reference)
}

// Delete tears a provider down, walking activities and offers and cancelling
// every active booking before removing the provider from the index.
func (r *Registry) Delete(code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.providers[code]
	if !ok {
		return fmt.Errorf("%w: provider %q", domain.ErrNotFound, code)
	}

	for _, a := range p.activities {
		for _, o := range a.offers {
			for _, b := range o.bookings {
				if b.state == domain.ReservationActive {
					b.state = domain.ReservationCancelled
					b.cancellation = domain.CancelToken(b.reference)
				}
			}
			o.bookings = nil
		}
		a.offers = nil
	}
	p.activities = nil
	delete(r.providers, code)

	return nil
}
