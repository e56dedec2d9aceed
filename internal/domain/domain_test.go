package domain

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateRange_EndBeforeBegin(t *testing.T) {
	_, err := NewDateRange(Date(2016, time.December, 21), Date(2016, time.December, 19))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestNewDateRange_ZeroLength(t *testing.T) {
	r, err := NewDateRange(Date(2016, time.December, 19), Date(2016, time.December, 19))

	require.NoError(t, err)
	assert.Equal(t, 0, r.Nights())
}

func TestNewDateRange_ZeroValueDates(t *testing.T) {
	_, err := NewDateRange(time.Time{}, Date(2016, time.December, 19))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDateRange_Overlaps(t *testing.T) {
	stay, err := NewDateRange(Date(2016, time.December, 19), Date(2016, time.December, 21))
	require.NoError(t, err)

	departureDay, err := NewDateRange(Date(2016, time.December, 21), Date(2016, time.December, 23))
	require.NoError(t, err)

	inside, err := NewDateRange(Date(2016, time.December, 20), Date(2016, time.December, 21))
	require.NoError(t, err)

	assert.False(t, stay.Overlaps(departureDay), "back-to-back stays do not conflict")
	assert.True(t, stay.Overlaps(inside))
}

func TestDateRange_OverlapsInclusive(t *testing.T) {
	rental, err := NewDateRange(Date(2016, time.December, 19), Date(2016, time.December, 21))
	require.NoError(t, err)

	sameDayPickup, err := NewDateRange(Date(2016, time.December, 21), Date(2016, time.December, 23))
	require.NoError(t, err)

	after, err := NewDateRange(Date(2016, time.December, 22), Date(2016, time.December, 23))
	require.NoError(t, err)

	assert.True(t, rental.OverlapsInclusive(sameDayPickup), "return day is still occupied")
	assert.False(t, rental.OverlapsInclusive(after))
}

func TestSequence_Next(t *testing.T) {
	seq := NewSequence()

	assert.Equal(t, "BK011", seq.Next("BK01"))
	assert.Equal(t, "BK012", seq.Next("BK01"))
	assert.Equal(t, "XPTO1231", seq.Next("XPTO123"))
}

func TestSequence_ConcurrentNext(t *testing.T) {
	seq := NewSequence()

	const workers = 50
	refs := make(chan string, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			refs <- seq.Next("BK01")
		}()
	}
	wg.Wait()
	close(refs)

	seen := make(map[string]bool)
	for ref := range refs {
		assert.False(t, seen[ref], "duplicate reference %s", ref)
		seen[ref] = true
	}
	assert.Len(t, seen, workers)
}

func TestCancelToken(t *testing.T) {
	assert.Equal(t, "CANCELBK011", CancelToken("BK011"))
}
