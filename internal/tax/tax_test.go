package tax

import (
	"strings"
	"testing"
	"time"

	"github.com/afonsob/travelbooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

var invoiceDate = domain.Date(2016, time.December, 21)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newPopulatedRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry(newTestLogger(t))
	require.NoError(t, r.RegisterTaxPayer(PayerSeller, "123456789", "Hotel Londres"))
	require.NoError(t, r.RegisterTaxPayer(PayerBuyer, "987654321", "Manuel"))
	require.NoError(t, r.NewItemType("HOUSING", 10))
	return r
}

func TestRegistry_RegisterTaxPayer_Duplicate(t *testing.T) {
	r := newPopulatedRegistry(t)

	err := r.RegisterTaxPayer(PayerBuyer, "123456789", "Someone Else")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateIdentity)
}

func TestRegistry_NewItemType_Validations(t *testing.T) {
	r := NewRegistry(newTestLogger(t))

	assert.ErrorIs(t, r.NewItemType("", 10), domain.ErrInvalidArgument)
	assert.ErrorIs(t, r.NewItemType("HOUSING", 101), domain.ErrInvalidArgument)

	require.NoError(t, r.NewItemType("HOUSING", 10))
	assert.ErrorIs(t, r.NewItemType("HOUSING", 15), domain.ErrDuplicateIdentity)
}

func TestRegistry_SubmitInvoice_Success(t *testing.T) {
	r := newPopulatedRegistry(t)

	ref, err := r.SubmitInvoice("123456789", "987654321", "HOUSING", 200, invoiceDate)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "IRS"))

	data, err := r.Invoice(ref)
	require.NoError(t, err)
	assert.Equal(t, int64(200), data.Value)
	assert.Equal(t, int64(20), data.IVA) // 10% of 200
	assert.Equal(t, domain.ReservationActive, data.State)
}

func TestRegistry_SubmitInvoice_Failures(t *testing.T) {
	r := newPopulatedRegistry(t)

	_, err := r.SubmitInvoice("123456789", "987654321", "HOUSING", 0, invoiceDate)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = r.SubmitInvoice("123456789", "987654321", "HOUSING", 200, time.Time{})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = r.SubmitInvoice("000000000", "987654321", "HOUSING", 200, invoiceDate)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = r.SubmitInvoice("123456789", "000000000", "HOUSING", 200, invoiceDate)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// roles are not interchangeable
	_, err = r.SubmitInvoice("987654321", "123456789", "HOUSING", 200, invoiceDate)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = r.SubmitInvoice("123456789", "987654321", "TRANSPORT", 200, invoiceDate)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegistry_CancelInvoice(t *testing.T) {
	r := newPopulatedRegistry(t)

	ref, err := r.SubmitInvoice("123456789", "987654321", "HOUSING", 200, invoiceDate)
	require.NoError(t, err)

	token, err := r.CancelInvoice(ref)
	require.NoError(t, err)
	assert.NotEqual(t, ref, token)

	_, err = r.CancelInvoice(ref)
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)

	data, err := r.Invoice(token)
	require.NoError(t, err)
	assert.Equal(t, ref, data.Reference)
	assert.Equal(t, domain.ReservationCancelled, data.State)
}

func TestRegistry_CancelInvoice_NotFound(t *testing.T) {
	r := newPopulatedRegistry(t)

	_, err := r.CancelInvoice("IRS999")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
