package car

import (
	"fmt"
	"sync"
	"time"

	"github.com/afonsob/travelbooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// Registry is the process-wide index of rent-a-car companies. Renting scans
// vehicles across every company and takes the first free one; cancellation
// resolves a reference anywhere in the subsystem. The registry lock
// serializes allocation, so the vacancy check and the renting record are one
// step: two callers racing for the last vehicle cannot both win.
type Registry struct {
	mu        sync.Mutex
	companies map[string]*Company
	seq       *domain.Sequence
	log       logger.Logger
}

func NewRegistry(log logger.Logger) *Registry {
	return &Registry{
		companies: make(map[string]*Company),
		seq:       domain.NewSequence(),
		log:       log,
	}
}

// Create registers a company and returns its business code, derived from the
// NIF plus a counter. Two companies can never share a NIF.
func (r *Registry) Create(name, nif, iban string) (string, error) {
	if name == "" || nif == "" || iban == "" {
		return "", fmt.Errorf("%w: company name, NIF and IBAN are required", domain.ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.companies {
		if c.nif == nif {
			return "", fmt.Errorf("%w: NIF %q", domain.ErrDuplicateIdentity, nif)
		}
	}

	c := &Company{
		code: r.seq.Next(nif),
		name: name,
		nif:  nif,
		iban: iban,
	}
	r.companies[c.code] = c

	r.log.Info("rent-a-car company created",
		logger.String("code", c.code),
		logger.String("name", name),
	)

	return c.code, nil
}

func (r *Registry) AddVehicle(companyCode string, kind Kind, plate string, pricePerDay int64) error {
	if plate == "" {
		return fmt.Errorf("%w: vehicle plate is required", domain.ErrInvalidArgument)
	}
	if kind != KindCar && kind != KindMotorcycle {
		return fmt.Errorf("%w: unknown vehicle kind %q", domain.ErrInvalidArgument, kind)
	}
	if pricePerDay <= 0 {
		return fmt.Errorf("%w: price per day must be positive", domain.ErrInvalidAmount)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.companies[companyCode]
	if !ok {
		return fmt.Errorf("%w: company %q", domain.ErrNotFound, companyCode)
	}
	if c.hasVehicle(plate) {
		return fmt.Errorf("%w: plate %s already registered at %s", domain.ErrInvalidArgument, plate, companyCode)
	}

	c.vehicles = append(c.vehicles, &vehicle{kind: kind, plate: plate, pricePerDay: pricePerDay})
	return nil
}

// Rent reserves the first free vehicle of the given kind across the whole
// subsystem and returns the renting reference, prefixed by the owning
// company's code.
func (r *Registry) Rent(kind Kind, license, buyerNIF, buyerIBAN string, begin, end time.Time) (string, error) {
	if license == "" || buyerNIF == "" || buyerIBAN == "" {
		return "", fmt.Errorf("%w: driving license, buyer NIF and IBAN are required", domain.ErrInvalidArgument)
	}
	window, err := domain.NewDateRange(begin, end)
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.companies {
		for _, v := range c.vehicles {
			if v.kind != kind || !v.free(window) {
				continue
			}

			rt := &renting{
				reference: r.seq.Next(c.code),
				state:     domain.ReservationActive,
				window:    window,
				license:   license,
				buyerNIF:  buyerNIF,
				buyerIBAN: buyerIBAN,
			}
			v.rentings = append(v.rentings, rt)

			r.log.Info("vehicle rented",
				logger.String("reference", rt.reference),
				logger.String("plate", v.plate),
				logger.String("window", window.String()),
			)

			return rt.reference, nil
		}
	}

	return "", fmt.Errorf("%w: no free %s for %s", domain.ErrNoAvailability, kind, window)
}

func (r *Registry) CancelRenting(reference string) (string, error) {
	if reference == "" {
		return "", fmt.Errorf("%w: reference is required", domain.ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, _, rt, err := r.find(reference)
	if err != nil {
		return "", err
	}
	if rt.state == domain.ReservationCancelled {
		return "", fmt.Errorf("%w: renting %s", domain.ErrAlreadyCancelled, rt.reference)
	}

	rt.state = domain.ReservationCancelled
	rt.cancellation = domain.CancelToken(rt.reference)

	r.log.Info("renting cancelled",
		logger.String("reference", rt.reference),
		logger.String("token", rt.cancellation),
	)

	return rt.cancellation, nil
}

// Renting resolves a reference or cancellation token into a snapshot.
func (r *Registry) Renting(reference string) (RentingData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, v, rt, err := r.find(reference)
	if err != nil {
		return RentingData{}, err
	}
	return snapshot(c, v, rt), nil
}

func (r *Registry) find(reference string) (*Company, *vehicle, *renting, error) {
	for _, c := range r.companies {
		for _, v := range c.vehicles {
			if rt := v.find(reference); rt != nil {
				return c, v, rt, nil
			}
		}
	}
	return nil, nil, nil, fmt.Errorf("%w: renting %q", domain.ErrNotFound, reference)
}

// Delete tears a company down, cancelling active rentings vehicle by vehicle
// before removing the company from the index.
func (r *Registry) Delete(code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.companies[code]
	if !ok {
		return fmt.Errorf("%w: company %q", domain.ErrNotFound, code)
	}

	for _, v := range c.vehicles {
		for _, rt := range v.rentings {
			if rt.state == domain.ReservationActive {
				rt.state = domain.ReservationCancelled
				rt.cancellation = domain.CancelToken(rt.reference)
			}
		}
		v.rentings = nil
	}
	c.vehicles = nil
	delete(r.companies, code)

	return nil
}
