// Package calendar provides pure date arithmetic for the scheduling views:
// days-per-month, weekday offsets, week-start alignment and unit stepping.
// Weeks start on Sunday everywhere in the application.
package calendar

import (
	"fmt"
	"time"
)

// Unit is a navigation step size.
type Unit string

const (
	UnitDay   Unit = "day"
	UnitWeek  Unit = "week"
	UnitMonth Unit = "month"
)

func (u Unit) IsValid() bool {
	switch u {
	case UnitDay, UnitWeek, UnitMonth:
		return true
	default:
		return false
	}
}

// Date is a calendar date without a time component.
type Date struct {
	Year  int
	Month int
	Day   int
}

// Today returns the current date in local time.
func Today() Date {
	return FromTime(time.Now())
}

// FromTime truncates a time.Time to its calendar date.
func FromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// IsLeapYear reports whether year has a February 29.
func IsLeapYear(year int) bool {
	if year%400 == 0 {
		return true
	}
	if year%100 == 0 {
		return false
	}
	return year%4 == 0
}

var monthLengths = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the number of days in the given month (1-12).
func DaysInMonth(year, month int) int {
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthLengths[month]
}

// IsValid reports whether the date is structurally valid: month 1-12 and a
// day that exists in that month for that year.
func (d Date) IsValid() bool {
	if d.Year < 1 || d.Month < 1 || d.Month > 12 {
		return false
	}
	return d.Day >= 1 && d.Day <= DaysInMonth(d.Year, d.Month)
}

func (d Date) time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns 0-6 with 0 = Sunday.
func (d Date) Weekday() int {
	return int(d.time().Weekday())
}

// Compare orders two dates chronologically.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return d.Year - other.Year
	case d.Month != other.Month:
		return d.Month - other.Month
	default:
		return d.Day - other.Day
	}
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool  { return d.Compare(other) > 0 }

// Key renders the canonical YYYY-MM-DD form.
func (d Date) Key() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d Date) String() string { return d.Key() }

// ParseKey is the exact inverse of Key. It accepts only zero-padded
// YYYY-MM-DD strings naming a structurally valid date.
func ParseKey(s string) (Date, bool) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return Date{}, false
	}
	year, ok := parseDigits(s[0:4])
	if !ok {
		return Date{}, false
	}
	month, ok := parseDigits(s[5:7])
	if !ok {
		return Date{}, false
	}
	day, ok := parseDigits(s[8:10])
	if !ok {
		return Date{}, false
	}
	d := Date{Year: year, Month: month, Day: day}
	if !d.IsValid() {
		return Date{}, false
	}
	return d, true
}

func parseDigits(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// FirstWeekday returns the weekday (0 = Sunday) of the first day of the
// month, used to size the leading pad cells of the month grid.
func FirstWeekday(year, month int) int {
	return Date{Year: year, Month: month, Day: 1}.Weekday()
}

// StartOfWeek returns the Sunday of the 7-day window containing d.
func StartOfWeek(d Date) Date {
	return d.AddDays(-d.Weekday())
}

// AddDays steps the date by n days with full month and year rollover.
func (d Date) AddDays(n int) Date {
	return FromTime(d.time().AddDate(0, 0, n))
}

// Step moves the date one unit in the given direction (-1 or +1).
// A month step keeps the day-of-month, clamped to the length of the
// target month; December to January and back roll the year.
func Step(d Date, unit Unit, direction int) Date {
	switch unit {
	case UnitDay:
		return d.AddDays(direction)
	case UnitWeek:
		return d.AddDays(7 * direction)
	case UnitMonth:
		return stepMonth(d, direction)
	default:
		return d
	}
}

func stepMonth(d Date, direction int) Date {
	year, month := d.Year, d.Month+direction
	if month < 1 {
		month = 12
		year--
	} else if month > 12 {
		month = 1
		year++
	}
	day := d.Day
	if limit := DaysInMonth(year, month); day > limit {
		day = limit
	}
	return Date{Year: year, Month: month, Day: day}
}
