package bank

import (
	"strings"
	"sync"
	"testing"

	"github.com/afonsob/travelbooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newFundedAccount(t *testing.T, r *Registry, bankCode string, balance int64) string {
	t.Helper()
	iban, err := r.OpenAccount(bankCode, "António")
	require.NoError(t, err)
	_, err = r.Deposit(iban, balance)
	require.NoError(t, err)
	return iban
}

func TestRegistry_Create_DuplicateCode(t *testing.T) {
	r := NewRegistry(newTestLogger(t))

	require.NoError(t, r.Create("Money", "BK01"))
	err := r.Create("OtherDream", "BK01")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateIdentity)
}

func TestRegistry_Create_InvalidCode(t *testing.T) {
	r := NewRegistry(newTestLogger(t))

	assert.ErrorIs(t, r.Create("Money", ""), domain.ErrInvalidArgument)
	assert.ErrorIs(t, r.Create("Money", "BK"), domain.ErrInvalidArgument)
	assert.ErrorIs(t, r.Create("", "BK01"), domain.ErrInvalidArgument)
}

func TestRegistry_ProcessPayment_Success(t *testing.T) {
	r := NewRegistry(newTestLogger(t))
	require.NoError(t, r.Create("Money", "BK01"))
	iban := newFundedAccount(t, r, "BK01", 500)

	ref, err := r.ProcessPayment(iban, 50)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "BK01"))

	op, err := r.Operation(ref)
	require.NoError(t, err)
	assert.Equal(t, OperationWithdraw, op.Type)
	assert.Equal(t, int64(50), op.Amount)

	acc, err := r.Account(iban)
	require.NoError(t, err)
	assert.Equal(t, int64(450), acc.Balance)
}

func TestRegistry_ProcessPayment_TwoBanks(t *testing.T) {
	r := NewRegistry(newTestLogger(t))
	require.NoError(t, r.Create("Money", "BK01"))
	require.NoError(t, r.Create("OtherDream", "BK02"))

	first := newFundedAccount(t, r, "BK01", 500)
	second := newFundedAccount(t, r, "BK02", 1000)

	ref, err := r.ProcessPayment(second, 100)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "BK02"))

	_, err = r.ProcessPayment(first, 100)
	require.NoError(t, err)

	acc, err := r.Account(first)
	require.NoError(t, err)
	assert.Equal(t, int64(400), acc.Balance)
}

func TestRegistry_ProcessPayment_Failures(t *testing.T) {
	r := NewRegistry(newTestLogger(t))
	require.NoError(t, r.Create("Money", "BK01"))
	iban := newFundedAccount(t, r, "BK01", 500)

	_, err := r.ProcessPayment("", 100)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = r.ProcessPayment(iban, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = r.ProcessPayment(iban, -5)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = r.ProcessPayment("XPTO", 100)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	_, err = r.ProcessPayment(iban, 501)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestRegistry_ProcessPayment_MinimumAmount(t *testing.T) {
	r := NewRegistry(newTestLogger(t))
	require.NoError(t, r.Create("Money", "BK01"))
	iban := newFundedAccount(t, r, "BK01", 500)

	_, err := r.ProcessPayment(iban, 1)
	require.NoError(t, err)

	acc, err := r.Account(iban)
	require.NoError(t, err)
	assert.Equal(t, int64(499), acc.Balance)
}

func TestRegistry_ProcessPayment_ConcurrentDebits(t *testing.T) {
	r := NewRegistry(newTestLogger(t))
	require.NoError(t, r.Create("Money", "BK01"))
	iban := newFundedAccount(t, r, "BK01", 100)

	// 100 on the account, 40 callers want 10 each: exactly ten can succeed.
	const callers = 40
	errs := make(chan error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.ProcessPayment(iban, 10)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded int
	for err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		}
	}
	assert.Equal(t, 10, succeeded)

	acc, err := r.Account(iban)
	require.NoError(t, err)
	assert.Equal(t, int64(0), acc.Balance)
}

func TestRegistry_CancelPayment_RestoresBalance(t *testing.T) {
	r := NewRegistry(newTestLogger(t))
	require.NoError(t, r.Create("Money", "BK01"))
	iban := newFundedAccount(t, r, "BK01", 500)

	ref, err := r.ProcessPayment(iban, 50)
	require.NoError(t, err)

	token, err := r.CancelPayment(ref)
	require.NoError(t, err)
	assert.NotEqual(t, ref, token)

	acc, err := r.Account(iban)
	require.NoError(t, err)
	assert.Equal(t, int64(500), acc.Balance)

	op, err := r.Operation(token)
	require.NoError(t, err)
	assert.Equal(t, ref, op.Reference)
	assert.Equal(t, domain.ReservationCancelled, op.State)
}

func TestRegistry_CancelPayment_Twice(t *testing.T) {
	r := NewRegistry(newTestLogger(t))
	require.NoError(t, r.Create("Money", "BK01"))
	iban := newFundedAccount(t, r, "BK01", 500)

	ref, err := r.ProcessPayment(iban, 50)
	require.NoError(t, err)

	_, err = r.CancelPayment(ref)
	require.NoError(t, err)

	_, err = r.CancelPayment(ref)
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
}

func TestRegistry_CancelPayment_DepositNotCancellable(t *testing.T) {
	r := NewRegistry(newTestLogger(t))
	require.NoError(t, r.Create("Money", "BK01"))
	iban, err := r.OpenAccount("BK01", "António")
	require.NoError(t, err)

	depositRef, err := r.Deposit(iban, 500)
	require.NoError(t, err)

	_, err = r.CancelPayment(depositRef)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestRegistry_Withdraw_InsufficientFunds(t *testing.T) {
	r := NewRegistry(newTestLogger(t))
	require.NoError(t, r.Create("Money", "BK01"))
	iban := newFundedAccount(t, r, "BK01", 10)

	_, err := r.Withdraw(iban, 11)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestRegistry_Operation_NotFound(t *testing.T) {
	r := NewRegistry(newTestLogger(t))
	require.NoError(t, r.Create("Money", "BK01"))

	_, err := r.Operation("BK01999")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegistry_Delete_Cascades(t *testing.T) {
	r := NewRegistry(newTestLogger(t))
	require.NoError(t, r.Create("Money", "BK01"))
	iban := newFundedAccount(t, r, "BK01", 500)

	ref, err := r.ProcessPayment(iban, 50)
	require.NoError(t, err)

	require.NoError(t, r.Delete("BK01"))

	_, err = r.Account(iban)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	_, err = r.Operation(ref)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// code is free again after teardown
	assert.NoError(t, r.Create("Money", "BK01"))
}
