package domain

import (
	"fmt"
	"time"
)

// DateRange is a calendar window [Begin, End], both at UTC midnight.
// Begin == End is a valid zero-length range (e.g. a zero-night hotel stay).
type DateRange struct {
	Begin time.Time
	End   time.Time
}

// Date builds a calendar date at UTC midnight.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func NewDateRange(begin, end time.Time) (DateRange, error) {
	if begin.IsZero() || end.IsZero() {
		return DateRange{}, fmt.Errorf("%w: begin and end dates are required", ErrInvalidArgument)
	}
	begin = truncate(begin)
	end = truncate(end)
	if end.Before(begin) {
		return DateRange{}, fmt.Errorf("%w: %s before %s", ErrInvalidDateRange,
			end.Format("2006-01-02"), begin.Format("2006-01-02"))
	}
	return DateRange{Begin: begin, End: end}, nil
}

func truncate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (r DateRange) Equal(other DateRange) bool {
	return r.Begin.Equal(other.Begin) && r.End.Equal(other.End)
}

// Overlaps treats ranges as half-open [Begin, End): a stay departing on the
// day another arrives does not conflict, and a zero-length range conflicts
// with nothing.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.Begin.Before(other.End) && other.Begin.Before(r.End)
}

// OverlapsInclusive treats both ends as occupied days: a rental ending on the
// day another starts conflicts. This is the vehicle-rental semantics.
func (r DateRange) OverlapsInclusive(other DateRange) bool {
	return !r.End.Before(other.Begin) && !other.End.Before(r.Begin)
}

// Nights is the number of nights spanned; zero for Begin == End.
func (r DateRange) Nights() int {
	return int(r.End.Sub(r.Begin).Hours() / 24)
}

func (r DateRange) String() string {
	return r.Begin.Format("2006-01-02") + ".." + r.End.Format("2006-01-02")
}
