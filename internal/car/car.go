package car

import (
	"time"

	"github.com/afonsob/travelbooker/internal/domain"
)

type Kind string

const (
	KindCar        Kind = "CAR"
	KindMotorcycle Kind = "MOTORCYCLE"
)

// Company is a rent-a-car identity. The NIF is unique process-wide; the
// business code is derived from it at construction and never renumbered.
type Company struct {
	code     string
	name     string
	nif      string
	iban     string
	vehicles []*vehicle
}

// vehicle is a single-unit resource: one plate, one renter at a time.
type vehicle struct {
	kind        Kind
	plate       string
	pricePerDay int64
	rentings    []*renting
}

type renting struct {
	reference    string
	cancellation string
	state        domain.ReservationState
	window       domain.DateRange
	license      string
	buyerNIF     string
	buyerIBAN    string
}

func (c *Company) Code() string { return c.code }
func (c *Company) NIF() string  { return c.nif }

func (c *Company) hasVehicle(plate string) bool {
	for _, v := range c.vehicles {
		if v.plate == plate {
			return true
		}
	}
	return false
}

// free uses the inclusive-day overlap test: the return day is still an
// occupied day, unlike a hotel departure day.
func (v *vehicle) free(window domain.DateRange) bool {
	for _, rt := range v.rentings {
		if rt.state == domain.ReservationActive && rt.window.OverlapsInclusive(window) {
			return false
		}
	}
	return true
}

func (v *vehicle) find(reference string) *renting {
	for _, rt := range v.rentings {
		if rt.reference == reference {
			return rt
		}
		if rt.state == domain.ReservationCancelled && rt.cancellation == reference {
			return rt
		}
	}
	return nil
}

type RentingData struct {
	Reference         string
	CancellationToken string
	State             domain.ReservationState
	CompanyCode       string
	Plate             string
	Kind              Kind
	License           string
	Begin             time.Time
	End               time.Time
	BuyerNIF          string
	BuyerIBAN         string
	Amount            int64
}

func snapshot(c *Company, v *vehicle, rt *renting) RentingData {
	days := int64(rt.window.Nights()) + 1
	return RentingData{
		Reference:         rt.reference,
		CancellationToken: rt.cancellation,
		State:             rt.state,
		CompanyCode:       c.code,
		Plate:             v.plate,
		Kind:              v.kind,
		License:           rt.license,
		Begin:             rt.window.Begin,
		End:               rt.window.End,
		BuyerNIF:          rt.buyerNIF,
		BuyerIBAN:         rt.buyerIBAN,
		Amount:            days * v.pricePerDay,
	}
}
