package activity

import (
	"time"

	"github.com/afonsob/travelbooker/internal/domain"
)

const (
	codeLength = 6
	minAmount  = 1
)

// Provider owns activities; an activity owns offers; an offer owns bookings.
type Provider struct {
	code       string
	name       string
	nif        string
	iban       string
	activities []*activityEntry
}

type activityEntry struct {
	code     string
	name     string
	capacity int
	minAge   int
	maxAge   int
	offers   []*offer
}

// offer is a capacity pool: up to capacity simultaneous active bookings for
// one exact window.
type offer struct {
	code     string
	window   domain.DateRange
	capacity int
	amount   int64
	bookings []*booking
}

type booking struct {
	reference    string
	cancellation string
	state        domain.ReservationState
	buyerNIF     string
}

func (p *Provider) Code() string { return p.code }
func (p *Provider) Name() string { return p.name }

func (a *activityEntry) matchesAge(age int) bool {
	return age >= a.minAge && age <= a.maxAge
}

func (o *offer) activeBookings() int {
	count := 0
	for _, b := range o.bookings {
		if b.state == domain.ReservationActive {
			count++
		}
	}
	return count
}

// available requires vacancy and an exact window match; an offer is a fixed
// slot, not a sliding range.
func (o *offer) available(window domain.DateRange) bool {
	return o.activeBookings() < o.capacity && o.window.Equal(window)
}

func (o *offer) find(reference string) *booking {
	for _, b := range o.bookings {
		if b.reference == reference {
			return b
		}
		if b.state == domain.ReservationCancelled && b.cancellation == reference {
			return b
		}
	}
	return nil
}

type ReservationData struct {
	Reference         string
	CancellationToken string
	State             domain.ReservationState
	ProviderCode      string
	ProviderNIF       string
	ActivityName      string
	OfferCode         string
	Begin             time.Time
	End               time.Time
	BuyerNIF          string
	Amount            int64
}

func snapshot(p *Provider, a *activityEntry, o *offer, b *booking) ReservationData {
	return ReservationData{
		Reference:         b.reference,
		CancellationToken: b.cancellation,
		State:             b.state,
		ProviderCode:      p.code,
		ProviderNIF:       p.nif,
		ActivityName:      a.name,
		OfferCode:         o.code,
		Begin:             o.window.Begin,
		End:               o.window.End,
		BuyerNIF:          b.buyerNIF,
		Amount:            o.amount,
	}
}
