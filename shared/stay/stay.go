package stay

import (
	"time"

	"pousada/shared/failure"
	"pousada/shared/money"
)

const (
	// DateFormat is the wire format for calendar dates. Dates are naive local
	// calendar days, never instants; parsing pins them to UTC midnight so
	// arithmetic at one-day granularity cannot shift across a timezone.
	DateFormat = "2006-01-02"
)

// DateRange is a half-open stay interval [CheckIn, CheckOut). The checkout
// day itself is not occupied.
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// NewRange builds a validated range from midnight-aligned dates.
func NewRange(checkIn, checkOut time.Time) (DateRange, error) {
	r := DateRange{
		CheckIn:  midnight(checkIn),
		CheckOut: midnight(checkOut),
	}

	if !r.CheckIn.Before(r.CheckOut) {
		return DateRange{}, failure.BadRequestFromString("check-in date must be before check-out date") //nolint:wrapcheck
	}

	return r, nil
}

// ParseRange parses a pair of yyyy-MM-dd wire dates into a validated range.
func ParseRange(checkIn, checkOut string) (DateRange, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return DateRange{}, err
	}

	out, err := ParseDate(checkOut)
	if err != nil {
		return DateRange{}, err
	}

	return NewRange(in, out)
}

// ParseDate parses a single yyyy-MM-dd wire date as a naive calendar day.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateFormat, value)
	if err != nil {
		return time.Time{}, failure.BadRequestFromString("invalid date, expected yyyy-MM-dd: " + value) //nolint:wrapcheck
	}

	return t, nil
}

// Conflicts reports whether two stays hold at least one night in common.
// Half-open semantics make a checkout-day handoff legal: a stay ending on X
// never conflicts with a stay starting on X. That is the business rule for
// same-day turnover, not an off-by-one.
func Conflicts(a, b DateRange) bool {
	return a.CheckIn.Before(b.CheckOut) && a.CheckOut.After(b.CheckIn)
}

// Nights returns the number of occupied nights in the range.
func (r DateRange) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

// Days enumerates every occupied calendar day in [CheckIn, CheckOut).
func (r DateRange) Days() []time.Time {
	days := make([]time.Time, 0, r.Nights())

	for d := r.CheckIn; d.Before(r.CheckOut); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}

	return days
}

// Contains reports whether the given day is an occupied night of the range.
func (r DateRange) Contains(day time.Time) bool {
	day = midnight(day)

	return !day.Before(r.CheckIn) && day.Before(r.CheckOut)
}

// Quote prices the stay night by night: Saturday and Sunday nights at the
// weekend rate, all other nights at the weekday rate.
func Quote(r DateRange, weekdayRate, weekendRate money.Cents) money.Cents {
	var total money.Cents

	for _, day := range r.Days() {
		if IsWeekend(day) {
			total += weekendRate
		} else {
			total += weekdayRate
		}
	}

	return total
}

// IsWeekend reports whether the night of the given day is priced as weekend.
func IsWeekend(day time.Time) bool {
	wd := day.Weekday()

	return wd == time.Saturday || wd == time.Sunday
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
