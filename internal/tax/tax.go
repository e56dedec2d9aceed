// Package tax is the tax-authority subsystem: it indexes tax payers and item
// types and records invoices for taxable sales. An invoice is a reservation
// like any other commitment in the ecosystem: it has a reference, it can be
// cancelled exactly once, and cancellation yields a token so a composite
// transaction can undo a registered sale.
package tax

import (
	"fmt"
	"sync"
	"time"

	"github.com/afonsob/travelbooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// referenceOwner prefixes every invoice reference; the authority is a
// singleton, so there is a single counter space.
const referenceOwner = "IRS"

type PayerKind string

const (
	PayerBuyer  PayerKind = "BUYER"
	PayerSeller PayerKind = "SELLER"
)

type taxPayer struct {
	kind PayerKind
	nif  string
	name string
}

type itemType struct {
	name string
	rate int // percent
}

type invoice struct {
	reference    string
	cancellation string
	state        domain.ReservationState
	sellerNIF    string
	buyerNIF     string
	itemType     string
	value        int64
	iva          int64
	date         time.Time
}

type InvoiceData struct {
	Reference         string
	CancellationToken string
	State             domain.ReservationState
	SellerNIF         string
	BuyerNIF          string
	ItemType          string
	Value             int64
	IVA               int64
	Date              time.Time
}

// Registry is the tax authority's index: tax payers by NIF, item types by
// name, invoices by reference.
type Registry struct {
	mu        sync.Mutex
	payers    map[string]*taxPayer
	itemTypes map[string]*itemType
	invoices  map[string]*invoice
	seq       *domain.Sequence
	log       logger.Logger
}

func NewRegistry(log logger.Logger) *Registry {
	return &Registry{
		payers:    make(map[string]*taxPayer),
		itemTypes: make(map[string]*itemType),
		invoices:  make(map[string]*invoice),
		seq:       domain.NewSequence(),
		log:       log,
	}
}

func (r *Registry) RegisterTaxPayer(kind PayerKind, nif, name string) error {
	if nif == "" || name == "" {
		return fmt.Errorf("%w: NIF and name are required", domain.ErrInvalidArgument)
	}
	if kind != PayerBuyer && kind != PayerSeller {
		return fmt.Errorf("%w: unknown tax payer kind %q", domain.ErrInvalidArgument, kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.payers[nif]; ok {
		return fmt.Errorf("%w: NIF %q", domain.ErrDuplicateIdentity, nif)
	}

	r.payers[nif] = &taxPayer{kind: kind, nif: nif, name: name}
	return nil
}

func (r *Registry) NewItemType(name string, rate int) error {
	if name == "" {
		return fmt.Errorf("%w: item type name is required", domain.ErrInvalidArgument)
	}
	if rate < 0 || rate > 100 {
		return fmt.Errorf("%w: tax rate %d%% out of range", domain.ErrInvalidArgument, rate)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.itemTypes[name]; ok {
		return fmt.Errorf("%w: item type %q", domain.ErrDuplicateIdentity, name)
	}

	r.itemTypes[name] = &itemType{name: name, rate: rate}
	return nil
}

// SubmitInvoice records a taxable sale between a registered seller and buyer
// and returns the invoice reference. The IVA due is fixed at submission from
// the item type's current rate.
func (r *Registry) SubmitInvoice(sellerNIF, buyerNIF, itemTypeName string, value int64, date time.Time) (string, error) {
	if value <= 0 {
		return "", fmt.Errorf("%w: invoice value must be positive, got %d", domain.ErrInvalidAmount, value)
	}
	if date.IsZero() || date.Year() < 1970 {
		return "", fmt.Errorf("%w: invoice date is required", domain.ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	seller, ok := r.payers[sellerNIF]
	if !ok {
		return "", fmt.Errorf("%w: seller %q", domain.ErrNotFound, sellerNIF)
	}
	if seller.kind != PayerSeller {
		return "", fmt.Errorf("%w: %q is not a seller", domain.ErrInvalidArgument, sellerNIF)
	}

	buyer, ok := r.payers[buyerNIF]
	if !ok {
		return "", fmt.Errorf("%w: buyer %q", domain.ErrNotFound, buyerNIF)
	}
	if buyer.kind != PayerBuyer {
		return "", fmt.Errorf("%w: %q is not a buyer", domain.ErrInvalidArgument, buyerNIF)
	}

	it, ok := r.itemTypes[itemTypeName]
	if !ok {
		return "", fmt.Errorf("%w: item type %q", domain.ErrNotFound, itemTypeName)
	}

	inv := &invoice{
		reference: r.seq.Next(referenceOwner),
		state:     domain.ReservationActive,
		sellerNIF: sellerNIF,
		buyerNIF:  buyerNIF,
		itemType:  it.name,
		value:     value,
		iva:       value * int64(it.rate) / 100,
		date:      date,
	}
	r.invoices[inv.reference] = inv

	r.log.Info("invoice submitted",
		logger.String("reference", inv.reference),
		logger.String("seller", sellerNIF),
		logger.Int64("value", value),
	)

	return inv.reference, nil
}

// CancelInvoice undoes a registered sale and returns the cancellation token.
func (r *Registry) CancelInvoice(reference string) (string, error) {
	if reference == "" {
		return "", fmt.Errorf("%w: reference is required", domain.ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	inv, err := r.find(reference)
	if err != nil {
		return "", err
	}
	if inv.state == domain.ReservationCancelled {
		return "", fmt.Errorf("%w: invoice %s", domain.ErrAlreadyCancelled, inv.reference)
	}

	inv.state = domain.ReservationCancelled
	inv.cancellation = domain.CancelToken(inv.reference)

	r.log.Info("invoice cancelled",
		logger.String("reference", inv.reference),
		logger.String("token", inv.cancellation),
	)

	return inv.cancellation, nil
}

// Invoice resolves a reference or cancellation token into a snapshot.
func (r *Registry) Invoice(reference string) (InvoiceData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inv, err := r.find(reference)
	if err != nil {
		return InvoiceData{}, err
	}

	return InvoiceData{
		Reference:         inv.reference,
		CancellationToken: inv.cancellation,
		State:             inv.state,
		SellerNIF:         inv.sellerNIF,
		BuyerNIF:          inv.buyerNIF,
		ItemType:          inv.itemType,
		Value:             inv.value,
		IVA:               inv.iva,
		Date:              inv.date,
	}, nil
}

func (r *Registry) find(reference string) (*invoice, error) {
	if inv, ok := r.invoices[reference]; ok {
		return inv, nil
	}
	for _, inv := range r.invoices {
		if inv.state == domain.ReservationCancelled && inv.cancellation == reference {
			return inv, nil
		}
	}
	return nil, fmt.Errorf("%w: invoice %q", domain.ErrNotFound, reference)
}
