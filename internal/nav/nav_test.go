package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsboard/internal/calendar"
)

func TestNextPrevIsInverse(t *testing.T) {
	anchors := []calendar.Date{
		{Year: 2024, Month: 6, Day: 15},
		{Year: 2024, Month: 1, Day: 31},
		{Year: 2024, Month: 12, Day: 31},
		{Year: 2023, Month: 3, Day: 31},
		{Year: 2024, Month: 2, Day: 29},
	}
	for _, mode := range []Mode{ModeDay, ModeWeek, ModeMonth} {
		for _, anchor := range anchors {
			c := New(anchor, mode)
			c.Next()
			c.Prev()
			assert.Equal(t, anchor, c.Anchor(), "mode %s anchor %s", mode, anchor)

			c.Prev()
			c.Next()
			assert.Equal(t, anchor, c.Anchor(), "mode %s anchor %s (prev first)", mode, anchor)
		}
	}
}

func TestMonthStepClampsShortMonth(t *testing.T) {
	c := New(calendar.Date{Year: 2024, Month: 1, Day: 31}, ModeMonth)
	c.Next()
	assert.Equal(t, calendar.Date{Year: 2024, Month: 2, Day: 29}, c.Anchor())
	c.Next()
	// The remembered day-of-month survives the clamped February.
	assert.Equal(t, calendar.Date{Year: 2024, Month: 3, Day: 31}, c.Anchor())
}

func TestMonthStepAcrossYear(t *testing.T) {
	c := New(calendar.Date{Year: 2024, Month: 12, Day: 15}, ModeMonth)
	c.Next()
	assert.Equal(t, calendar.Date{Year: 2025, Month: 1, Day: 15}, c.Anchor())
	c.Prev()
	c.Prev()
	assert.Equal(t, calendar.Date{Year: 2024, Month: 11, Day: 15}, c.Anchor())
}

func TestTodayKeepsMode(t *testing.T) {
	today := calendar.Date{Year: 2024, Month: 6, Day: 19}
	c := New(calendar.Date{Year: 2020, Month: 1, Day: 1}, ModeWeek).
		WithClock(func() calendar.Date { return today })
	c.Today()
	assert.Equal(t, today, c.Anchor())
	assert.Equal(t, ModeWeek, c.Mode())
}

func TestSetModeKeepsAnchor(t *testing.T) {
	anchor := calendar.Date{Year: 2024, Month: 6, Day: 19}
	c := New(anchor, ModeDay)
	c.SetMode(ModeMonth)
	assert.Equal(t, anchor, c.Anchor(), "switching day to month keeps the anchor day")
	assert.Equal(t, ModeMonth, c.Mode())

	c.SetMode(Mode("quarter"))
	assert.Equal(t, ModeMonth, c.Mode(), "invalid modes are ignored")
}

func TestGoto(t *testing.T) {
	c := New(calendar.Date{Year: 2024, Month: 1, Day: 1}, ModeWeek)
	c.Goto(calendar.Date{Year: 2024, Month: 6, Day: 19})
	assert.Equal(t, calendar.Date{Year: 2024, Month: 6, Day: 19}, c.Anchor())
	assert.Equal(t, ModeWeek, c.Mode())

	c.Goto(calendar.Date{Year: 2024, Month: 2, Day: 30})
	assert.Equal(t, calendar.Date{Year: 2024, Month: 6, Day: 19}, c.Anchor(), "invalid dates are ignored")
}

func TestWindowDay(t *testing.T) {
	anchor := calendar.Date{Year: 2024, Month: 6, Day: 19}
	win := New(anchor, ModeDay).Window()
	require.Len(t, win.Days, 1)
	assert.Equal(t, anchor, win.Days[0])
	assert.Equal(t, 0, win.LeadingPad)
}

func TestWindowWeekBoundary(t *testing.T) {
	// Anchor Wednesday 2024-06-19: the window runs Sunday 16th to Saturday 22nd.
	win := New(calendar.Date{Year: 2024, Month: 6, Day: 19}, ModeWeek).Window()
	require.Len(t, win.Days, 7)
	assert.Equal(t, calendar.Date{Year: 2024, Month: 6, Day: 16}, win.Days[0])
	assert.Equal(t, calendar.Date{Year: 2024, Month: 6, Day: 22}, win.Days[6])
}

func TestWindowMonthGrid(t *testing.T) {
	win := New(calendar.Date{Year: 2024, Month: 6, Day: 15}, ModeMonth).Window()
	require.Len(t, win.Days, 30)
	assert.Equal(t, calendar.Date{Year: 2024, Month: 6, Day: 1}, win.Days[0])
	assert.Equal(t, calendar.Date{Year: 2024, Month: 6, Day: 30}, win.Days[29])
	// 2024-06-01 is a Saturday, so six pad cells lead the grid.
	assert.Equal(t, 6, win.LeadingPad)
}
