package activity

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/afonsob/travelbooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

var (
	begin = domain.Date(2016, time.December, 19)
	end   = domain.Date(2016, time.December, 21)
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// newProviderWithOffer builds a provider with one activity (ages 18..80,
// given capacity) and one offer for begin..end at 30.
func newProviderWithOffer(t *testing.T, capacity int) (*Registry, string) {
	t.Helper()
	r := NewRegistry(newTestLogger(t))
	require.NoError(t, r.Create("XtremX", "ExtremeAdventure", "503987123", "IBAN7"))
	activityCode, err := r.NewActivity("XtremX", "Bush Walking", capacity, 18, 80)
	require.NoError(t, err)
	offerCode, err := r.NewOffer(activityCode, begin, end, 30)
	require.NoError(t, err)
	return r, offerCode
}

func TestRegistry_Create_Validations(t *testing.T) {
	r := NewRegistry(newTestLogger(t))

	assert.ErrorIs(t, r.Create("XX", "ExtremeAdventure", "503987123", "IBAN7"), domain.ErrInvalidArgument)
	assert.ErrorIs(t, r.Create("XtremX", "", "503987123", "IBAN7"), domain.ErrInvalidArgument)

	require.NoError(t, r.Create("XtremX", "ExtremeAdventure", "503987123", "IBAN7"))
	assert.ErrorIs(t, r.Create("XtremX", "Other", "503987124", "IBAN8"), domain.ErrDuplicateIdentity)
}

func TestRegistry_NewActivity_Validations(t *testing.T) {
	r := NewRegistry(newTestLogger(t))
	require.NoError(t, r.Create("XtremX", "ExtremeAdventure", "503987123", "IBAN7"))

	_, err := r.NewActivity("XtremX", "", 10, 18, 80)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = r.NewActivity("XtremX", "Bush Walking", 0, 18, 80)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = r.NewActivity("XtremX", "Bush Walking", 10, 80, 18)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = r.NewActivity("NOPE99", "Bush Walking", 10, 18, 80)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegistry_NewOffer_Validations(t *testing.T) {
	r := NewRegistry(newTestLogger(t))
	require.NoError(t, r.Create("XtremX", "ExtremeAdventure", "503987123", "IBAN7"))
	activityCode, err := r.NewActivity("XtremX", "Bush Walking", 10, 18, 80)
	require.NoError(t, err)

	_, err = r.NewOffer(activityCode, end, begin, 30)
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

	_, err = r.NewOffer(activityCode, begin, end, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = r.NewOffer("unknown", begin, end, 30)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegistry_Reserve_Success(t *testing.T) {
	r, offerCode := newProviderWithOffer(t, 3)

	ref, err := r.Reserve(25, begin, end, "123456789")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, offerCode))

	data, err := r.Reservation(ref)
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationActive, data.State)
	assert.Equal(t, int64(30), data.Amount)
	assert.Equal(t, "Bush Walking", data.ActivityName)
}

func TestRegistry_Reserve_AgeOutOfRange(t *testing.T) {
	r, _ := newProviderWithOffer(t, 3)

	_, err := r.Reserve(10, begin, end, "123456789")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoAvailability)
}

func TestRegistry_Reserve_WindowMustMatchExactly(t *testing.T) {
	r, _ := newProviderWithOffer(t, 3)

	_, err := r.Reserve(25, begin, domain.Date(2016, time.December, 20), "123456789")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoAvailability)
}

func TestRegistry_Reserve_CapacityExhausted(t *testing.T) {
	r, _ := newProviderWithOffer(t, 2)

	_, err := r.Reserve(25, begin, end, "111111111")
	require.NoError(t, err)
	_, err = r.Reserve(30, begin, end, "222222222")
	require.NoError(t, err)

	_, err = r.Reserve(35, begin, end, "333333333")
	assert.ErrorIs(t, err, domain.ErrNoAvailability)
}

func TestRegistry_Reserve_CapacityNeverExceededConcurrently(t *testing.T) {
	const capacity = 3
	r, _ := newProviderWithOffer(t, capacity)

	const callers = 12
	errs := make(chan error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.Reserve(25, begin, end, "123456789")
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
			assert.ErrorIs(t, err, domain.ErrNoAvailability)
		}
	}
	assert.Equal(t, capacity, succeeded)
}

func TestRegistry_CancelReservation_FreesCapacity(t *testing.T) {
	r, _ := newProviderWithOffer(t, 1)

	ref, err := r.Reserve(25, begin, end, "123456789")
	require.NoError(t, err)

	_, err = r.Reserve(30, begin, end, "987654321")
	assert.ErrorIs(t, err, domain.ErrNoAvailability)

	token, err := r.CancelReservation(ref)
	require.NoError(t, err)
	assert.NotEqual(t, ref, token)

	_, err = r.Reserve(30, begin, end, "987654321")
	assert.NoError(t, err)
}

func TestRegistry_CancelReservation_Twice(t *testing.T) {
	r, _ := newProviderWithOffer(t, 1)

	ref, err := r.Reserve(25, begin, end, "123456789")
	require.NoError(t, err)

	_, err = r.CancelReservation(ref)
	require.NoError(t, err)

	_, err = r.CancelReservation(ref)
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
}

func TestRegistry_Reservation_ByToken(t *testing.T) {
	r, _ := newProviderWithOffer(t, 1)

	ref, err := r.Reserve(25, begin, end, "123456789")
	require.NoError(t, err)

	token, err := r.CancelReservation(ref)
	require.NoError(t, err)

	data, err := r.Reservation(token)
	require.NoError(t, err)
	assert.Equal(t, ref, data.Reference)
	assert.Equal(t, domain.ReservationCancelled, data.State)
}

func TestRegistry_Reservation_NotFound(t *testing.T) {
	r, _ := newProviderWithOffer(t, 1)

	_, err := r.Reservation("XtremX999")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegistry_Delete_CancelsReservations(t *testing.T) {
	r, _ := newProviderWithOffer(t, 2)

	_, err := r.Reserve(25, begin, end, "123456789")
	require.NoError(t, err)

	require.NoError(t, r.Delete("XtremX"))

	_, err = r.Reserve(25, begin, end, "123456789")
	assert.ErrorIs(t, err, domain.ErrNoAvailability)
}
