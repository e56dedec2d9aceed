package bank

import (
	"fmt"
	"sync"

	"github.com/afonsob/travelbooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// Registry is the process-wide index of banks, keyed by business code. It is
// the only entry point other subsystems use: every operation locks the
// registry, so account allocation and payment processing are serialized
// against each other.
type Registry struct {
	mu    sync.Mutex
	banks map[string]*Bank
	seq   *domain.Sequence
	log   logger.Logger
}

func NewRegistry(log logger.Logger) *Registry {
	return &Registry{
		banks: make(map[string]*Bank),
		seq:   domain.NewSequence(),
		log:   log,
	}
}

// Create registers a bank. The business code must be unique across every
// bank in the process and is never renumbered.
func (r *Registry) Create(name, code string) error {
	if name == "" || code == "" {
		return fmt.Errorf("%w: bank name and code are required", domain.ErrInvalidArgument)
	}
	if len(code) != codeLength {
		return fmt.Errorf("%w: bank code must have %d characters", domain.ErrInvalidArgument, codeLength)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.banks[code]; ok {
		return fmt.Errorf("%w: bank %q", domain.ErrDuplicateIdentity, code)
	}

	r.banks[code] = &Bank{
		name:       name,
		code:       code,
		accounts:   make(map[string]*account),
		operations: make(map[string]*operation),
	}

	r.log.Info("bank created",
		logger.String("code", code),
		logger.String("name", name),
	)

	return nil
}

// OpenAccount opens an account for a holder and returns its IBAN, which is
// the bank code followed by a counter.
func (r *Registry) OpenAccount(bankCode, holder string) (string, error) {
	if holder == "" {
		return "", fmt.Errorf("%w: account holder is required", domain.ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.banks[bankCode]
	if !ok {
		return "", fmt.Errorf("%w: bank %q", domain.ErrNotFound, bankCode)
	}

	acc := &account{iban: r.seq.Next(b.code), holder: holder}
	b.accounts[acc.iban] = acc

	return acc.iban, nil
}

func (r *Registry) Deposit(iban string, amount int64) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, acc, err := r.lookupAccount(iban, amount)
	if err != nil {
		return "", err
	}

	acc.balance += amount
	return b.record(r.seq, OperationDeposit, iban, amount), nil
}

func (r *Registry) Withdraw(iban string, amount int64) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.withdraw(iban, amount)
}

// ProcessPayment debits an account on behalf of another subsystem and
// returns the operation reference. The caller keeps the reference: it is the
// only handle for compensating the payment later.
func (r *Registry) ProcessPayment(iban string, amount int64) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ref, err := r.withdraw(iban, amount)
	if err != nil {
		return "", err
	}

	r.log.Info("payment processed",
		logger.String("reference", ref),
		logger.String("iban", iban),
		logger.Int64("amount", amount),
	)

	return ref, nil
}

// withdraw holds the single debit path; callers must hold r.mu.
func (r *Registry) withdraw(iban string, amount int64) (string, error) {
	b, acc, err := r.lookupAccount(iban, amount)
	if err != nil {
		return "", err
	}

	if acc.balance < amount {
		return "", fmt.Errorf("%w: balance %d, requested %d", domain.ErrInsufficientFunds, acc.balance, amount)
	}

	acc.balance -= amount
	return b.record(r.seq, OperationWithdraw, iban, amount), nil
}

func (r *Registry) lookupAccount(iban string, amount int64) (*Bank, *account, error) {
	if iban == "" {
		return nil, nil, fmt.Errorf("%w: IBAN is required", domain.ErrInvalidArgument)
	}
	if amount <= 0 {
		return nil, nil, fmt.Errorf("%w: amount must be positive, got %d", domain.ErrInvalidAmount, amount)
	}

	for _, b := range r.banks {
		if acc, ok := b.accounts[iban]; ok {
			return b, acc, nil
		}
	}

	return nil, nil, fmt.Errorf("%w: IBAN %q", domain.ErrAccountNotFound, iban)
}

// CancelPayment compensates a processed payment: the debited amount is
// deposited back and the original operation is marked cancelled. Like any
// reservation, a payment can be compensated exactly once.
func (r *Registry) CancelPayment(reference string) (string, error) {
	if reference == "" {
		return "", fmt.Errorf("%w: reference is required", domain.ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	b, op, err := r.findOperation(reference)
	if err != nil {
		return "", err
	}
	if op.state == domain.ReservationCancelled {
		return "", fmt.Errorf("%w: payment %s", domain.ErrAlreadyCancelled, op.reference)
	}
	if op.kind != OperationWithdraw {
		return "", fmt.Errorf("%w: operation %s is not a payment", domain.ErrInvalidArgument, op.reference)
	}

	acc, ok := b.accounts[op.iban]
	if !ok {
		return "", fmt.Errorf("%w: IBAN %q", domain.ErrAccountNotFound, op.iban)
	}

	acc.balance += op.amount
	b.record(r.seq, OperationDeposit, op.iban, op.amount)

	op.state = domain.ReservationCancelled
	op.cancellation = domain.CancelToken(op.reference)

	r.log.Info("payment cancelled",
		logger.String("reference", op.reference),
		logger.String("token", op.cancellation),
	)

	return op.cancellation, nil
}

// Operation resolves an operation reference or cancellation token anywhere
// in the subsystem.
func (r *Registry) Operation(reference string) (OperationData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, op, err := r.findOperation(reference)
	if err != nil {
		return OperationData{}, err
	}

	return OperationData{
		Reference:         op.reference,
		CancellationToken: op.cancellation,
		State:             op.state,
		Type:              op.kind,
		IBAN:              op.iban,
		Amount:            op.amount,
		Time:              op.at,
	}, nil
}

func (r *Registry) findOperation(reference string) (*Bank, *operation, error) {
	for _, b := range r.banks {
		if op, ok := b.operations[reference]; ok {
			return b, op, nil
		}
		for _, op := range b.operations {
			if op.state == domain.ReservationCancelled && op.cancellation == reference {
				return b, op, nil
			}
		}
	}
	return nil, nil, fmt.Errorf("%w: operation %q", domain.ErrNotFound, reference)
}

func (r *Registry) Account(iban string) (AccountData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.banks {
		if acc, ok := b.accounts[iban]; ok {
			return AccountData{IBAN: acc.iban, Holder: acc.holder, Balance: acc.balance}, nil
		}
	}

	return AccountData{}, fmt.Errorf("%w: IBAN %q", domain.ErrAccountNotFound, iban)
}

// Delete tears a bank down: accounts and operation history are dropped with
// it. The walk is explicit so a half-deleted bank is never observable.
func (r *Registry) Delete(code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.banks[code]
	if !ok {
		return fmt.Errorf("%w: bank %q", domain.ErrNotFound, code)
	}

	for iban := range b.accounts {
		delete(b.accounts, iban)
	}
	for ref := range b.operations {
		delete(b.operations, ref)
	}
	delete(r.banks, code)

	return nil
}
