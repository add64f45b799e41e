// Package nav owns the calendar's anchor date and view mode. It is
// independent of the task collection; it only decides which window the
// calendar projection renders.
package nav

import (
	"opsboard/internal/calendar"
)

type Mode string

const (
	ModeMonth Mode = "month"
	ModeWeek  Mode = "week"
	ModeDay   Mode = "day"
)

func (m Mode) IsValid() bool {
	switch m {
	case ModeMonth, ModeWeek, ModeDay:
		return true
	default:
		return false
	}
}

func (m Mode) Unit() calendar.Unit {
	switch m {
	case ModeDay:
		return calendar.UnitDay
	case ModeWeek:
		return calendar.UnitWeek
	default:
		return calendar.UnitMonth
	}
}

// Window is the set of dates a calendar render covers. In month mode
// LeadingPad counts the date-less cells before day 1; those cells never
// hold tasks.
type Window struct {
	Mode       Mode
	Anchor     calendar.Date
	Days       []calendar.Date
	LeadingPad int
}

// Controller holds (anchor, mode) and applies prev/next/today/set-mode
// transitions. It remembers the anchor's day-of-month across month steps
// so that Next followed by Prev restores the anchor exactly even when an
// intermediate month is too short (Jan 31 -> Feb 28 -> Jan 31).
type Controller struct {
	anchor       calendar.Date
	mode         Mode
	preferredDay int
	now          func() calendar.Date
}

func New(anchor calendar.Date, mode Mode) *Controller {
	if !mode.IsValid() {
		mode = ModeMonth
	}
	return &Controller{
		anchor:       anchor,
		mode:         mode,
		preferredDay: anchor.Day,
		now:          calendar.Today,
	}
}

// WithClock overrides the source of the current date, for tests.
func (c *Controller) WithClock(now func() calendar.Date) *Controller {
	c.now = now
	return c
}

func (c *Controller) Anchor() calendar.Date { return c.anchor }
func (c *Controller) Mode() Mode            { return c.mode }

func (c *Controller) Prev() { c.step(-1) }
func (c *Controller) Next() { c.step(1) }

func (c *Controller) step(direction int) {
	if c.mode == ModeMonth {
		// Step from the remembered day-of-month, not the clamped one.
		from := calendar.Date{Year: c.anchor.Year, Month: c.anchor.Month, Day: 1}
		next := calendar.Step(from, calendar.UnitMonth, direction)
		day := c.preferredDay
		if limit := calendar.DaysInMonth(next.Year, next.Month); day > limit {
			day = limit
		}
		c.anchor = calendar.Date{Year: next.Year, Month: next.Month, Day: day}
		return
	}
	c.anchor = calendar.Step(c.anchor, c.mode.Unit(), direction)
	c.preferredDay = c.anchor.Day
}

// Goto re-anchors on an explicit date; the mode is unchanged.
func (c *Controller) Goto(d calendar.Date) {
	if !d.IsValid() {
		return
	}
	c.anchor = d
	c.preferredDay = d.Day
}

// Today re-anchors on the current date; the mode is unchanged.
func (c *Controller) Today() {
	c.anchor = c.now()
	c.preferredDay = c.anchor.Day
}

// SetMode switches the view granularity; the anchor is unchanged, so a
// day-to-month switch shows the month containing the anchor day.
func (c *Controller) SetMode(mode Mode) {
	if mode.IsValid() {
		c.mode = mode
	}
}

// Window materializes the date range the current (anchor, mode) renders.
func (c *Controller) Window() Window {
	win := Window{Mode: c.mode, Anchor: c.anchor}
	switch c.mode {
	case ModeDay:
		win.Days = []calendar.Date{c.anchor}
	case ModeWeek:
		start := calendar.StartOfWeek(c.anchor)
		win.Days = make([]calendar.Date, 0, 7)
		for i := 0; i < 7; i++ {
			win.Days = append(win.Days, start.AddDays(i))
		}
	default:
		win.LeadingPad = calendar.FirstWeekday(c.anchor.Year, c.anchor.Month)
		total := calendar.DaysInMonth(c.anchor.Year, c.anchor.Month)
		win.Days = make([]calendar.Date, 0, total)
		for day := 1; day <= total; day++ {
			win.Days = append(win.Days, calendar.Date{Year: c.anchor.Year, Month: c.anchor.Month, Day: day})
		}
	}
	return win
}
