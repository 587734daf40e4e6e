package interval

import (
	"time"

	"vet-scheduler/internal/pkg/errs"
)

const (
	NaiveLayout           = "2006-01-02T15:04"
	DateLayout            = "2006-01-02"
	DisplayDateLayout     = "02/01/2006"
	DisplayDateTimeLayout = "02/01/2006 15:04"
)

var (
	ErrInvalidNaive     = errs.New("expected local date-time as YYYY-MM-DDTHH:MM")
	ErrInvalidDate      = errs.New("expected date as YYYY-MM-DD")
	ErrNonexistentNaive = errs.New("local date-time does not exist in the configured time zone")
)

// Overlaps reports whether [startA, startA+durA) and [startB, startB+durB) intersect.
// Intervals that only touch at an end point do not overlap.
func Overlaps(startA time.Time, durA time.Duration, startB time.Time, durB time.Duration) bool {
	endA := startA.Add(durA)
	endB := startB.Add(durB)
	return startA.Before(endB) && startB.Before(endA)
}

// SameCalendarDay compares the date portion only, in each value's own location.
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ToLocalNaive shifts t by the UTC offset loc has at that instant and encodes the
// shifted UTC value without any zone, so the receiving side keeps the wall-clock hour.
func ToLocalNaive(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	_, offset := t.In(loc).Zone()
	shifted := t.UTC().Add(time.Duration(offset) * time.Second)
	return shifted.Format(NaiveLayout)
}

// ParseLocalNaive reads a zone-less wall clock as a time in loc. Wall clocks
// skipped by a daylight-saving jump are rejected rather than shifted.
func ParseLocalNaive(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(NaiveLayout, s, loc)
	if err != nil {
		return time.Time{}, ErrInvalidNaive
	}
	if ToLocalNaive(t, loc) != s {
		return time.Time{}, ErrNonexistentNaive
	}
	return t, nil
}

// ParseDate reads a calendar date. The result is midnight UTC of that date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// FormatDisplayDate renders a date-only value. Dates are stored zone-less, so they
// are formatted as-is rather than converted.
func FormatDisplayDate(t time.Time) string {
	return t.Format(DisplayDateLayout)
}

func FormatDisplayDateTime(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DisplayDateTimeLayout)
}
