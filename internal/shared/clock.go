package shared

import "time"

// DateLayout is the calendar date format used for sale records.
const DateLayout = "2006-01-02"

// Clock abstracts the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now.
func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant.
type FixedClock struct {
	At time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time { return c.At }

// DateOf normalises an instant to its UTC calendar date.
func DateOf(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// Today returns the current UTC calendar date for clock.
func Today(clock Clock) string {
	if clock == nil {
		clock = SystemClock{}
	}
	return DateOf(clock.Now())
}
