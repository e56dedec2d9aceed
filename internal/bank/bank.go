package bank

import (
	"time"

	"github.com/afonsob/travelbooker/internal/domain"
)

const codeLength = 4

type OperationType string

const (
	OperationDeposit  OperationType = "DEPOSIT"
	OperationWithdraw OperationType = "WITHDRAW"
)

// Bank owns its accounts and the full history of operations against them.
// Code and name are immutable after construction.
type Bank struct {
	name       string
	code       string
	accounts   map[string]*account // by IBAN
	operations map[string]*operation
}

type account struct {
	iban    string
	holder  string
	balance int64
}

type operation struct {
	reference    string
	cancellation string
	state        domain.ReservationState
	kind         OperationType
	iban         string
	amount       int64
	at           time.Time
}

func (b *Bank) Name() string { return b.name }
func (b *Bank) Code() string { return b.code }

// OperationData is the read-only snapshot handed to callers; callers never
// touch live bank state.
type OperationData struct {
	Reference         string
	CancellationToken string
	State             domain.ReservationState
	Type              OperationType
	IBAN              string
	Amount            int64
	Time              time.Time
}

type AccountData struct {
	IBAN    string
	Holder  string
	Balance int64
}

func (b *Bank) record(seq *domain.Sequence, kind OperationType, iban string, amount int64) string {
	op := &operation{
		reference: seq.Next(b.code),
		state:     domain.ReservationActive,
		kind:      kind,
		iban:      iban,
		amount:    amount,
		at:        time.Now().UTC(),
	}
	b.operations[op.reference] = op
	return op.reference
}
