package kernel

import (
	"fmt"
	"time"

	"logistics/internal/pkg/errs"
)

// dateLayout is the canonical textual form of a Date.
const dateLayout = "2006-01-02"

// ErrDateIsNotConstructed indicates that a Date was not initialized through
// one of the constructor functions.
var ErrDateIsNotConstructed = errs.NewValueIsRequiredError("Date must be created via NewDate, DateFromTime, ParseDate, or Today")

// Date is a value object representing a calendar date without a time-of-day
// component. It is used for delivery dates, vacation intervals, and driver
// join dates, where only the day matters and time zones must not influence
// comparisons.
//
// Internally the date is normalized to midnight UTC. Date is immutable and
// safe for concurrent use. The zero value is invalid.
type Date struct {
	t time.Time
}

// NewDate creates a Date from a year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateFromTime creates a Date by truncating a time.Time to its calendar day.
func DateFromTime(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// Today returns the current calendar date.
func Today() Date {
	return DateFromTime(time.Now())
}

// ParseDate parses a Date from its "YYYY-MM-DD" representation.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date", err)
	}
	return DateFromTime(t), nil
}

// Time returns the date as a time.Time at midnight UTC.
func (d Date) Time() time.Time {
	return d.t
}

// String returns the "YYYY-MM-DD" representation of the date.
func (d Date) String() string {
	return d.t.Format(dateLayout)
}

// Before reports whether d is strictly before other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// After reports whether d is strictly after other.
func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

// IsEqual reports whether two dates fall on the same calendar day.
func (d Date) IsEqual(other Date) bool {
	return d.t.Equal(other.t)
}

// AddDays returns the date shifted by the given number of days.
// Negative values shift into the past.
func (d Date) AddDays(days int) Date {
	return DateFromTime(d.t.AddDate(0, 0, days))
}

// Validate checks if the Date is properly constructed.
// Returns ErrDateIsNotConstructed for the zero value.
func (d Date) Validate() error {
	if d.t.IsZero() {
		return ErrDateIsNotConstructed
	}
	return nil
}

// YearMonth identifies a reporting period of one calendar month.
// Used by the monthly revenue aggregation to bound its date range.
type YearMonth struct {
	year  int
	month time.Month
}

// NewYearMonth creates a YearMonth for the given year and month.
func NewYearMonth(year int, month time.Month) (YearMonth, error) {
	if month < time.January || month > time.December {
		return YearMonth{}, errs.NewValueIsInvalidErrorWithCause("yearMonth",
			fmt.Errorf("%d is not a valid month", month))
	}
	if year <= 0 {
		return YearMonth{}, errs.NewValueIsInvalidErrorWithCause("yearMonth",
			fmt.Errorf("%d is not a valid year", year))
	}
	return YearMonth{year: year, month: month}, nil
}

// ParseYearMonth parses a YearMonth from its "YYYY-MM" representation.
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return YearMonth{}, errs.NewValueIsInvalidErrorWithCause("yearMonth", err)
	}
	return YearMonth{year: t.Year(), month: t.Month()}, nil
}

// Year returns the calendar year of the period.
func (ym YearMonth) Year() int {
	return ym.year
}

// Month returns the calendar month of the period.
func (ym YearMonth) Month() time.Month {
	return ym.month
}

// FirstDay returns the first date of the month.
func (ym YearMonth) FirstDay() Date {
	return NewDate(ym.year, ym.month, 1)
}

// LastDay returns the last date of the month.
func (ym YearMonth) LastDay() Date {
	return NewDate(ym.year, ym.month, 1).AddDays(daysIn(ym.year, ym.month) - 1)
}

// Contains reports whether the given date falls inside the month.
func (ym YearMonth) Contains(d Date) bool {
	return !d.Before(ym.FirstDay()) && !d.After(ym.LastDay())
}

// String returns the "YYYY-MM" representation of the period.
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.year, int(ym.month))
}

// Validate checks if the YearMonth is properly constructed.
func (ym YearMonth) Validate() error {
	if ym.year == 0 || ym.month == 0 {
		return errs.NewValueIsRequiredError("yearMonth")
	}
	return nil
}

func daysIn(year int, month time.Month) int {
	// The zeroth day of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
