package travel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysMonthGridShape(t *testing.T) {
	days := Days(ViewMonth, date("2024-06-15"))

	assert.Equal(t, 0, len(days)%7)
	assert.Equal(t, time.Monday, days[0].Weekday())
	assert.Equal(t, time.Sunday, days[len(days)-1].Weekday())
	assert.False(t, days[0].After(date("2024-06-01")))
	assert.False(t, days[len(days)-1].Before(date("2024-06-30")))

	// June 2024 starts on a Saturday, so the grid leads with late May days.
	assert.Equal(t, date("2024-05-27"), days[0])
	assert.Equal(t, date("2024-06-30"), days[len(days)-1])
	assert.Len(t, days, 35)
}

func TestDaysWeek(t *testing.T) {
	days := Days(ViewWeek, date("2024-06-12")) // a Wednesday

	assert.Len(t, days, 7)
	assert.Equal(t, date("2024-06-10"), days[0])
	assert.Equal(t, date("2024-06-16"), days[6])
	for i, d := range days {
		assert.Equal(t, days[0].AddDate(0, 0, i), d)
	}
}

func TestEventsForDateInclusiveBounds(t *testing.T) {
	events := []Event{
		{ID: 1, CustomerID: 1, StartDate: "2024-06-10", EndDate: "2024-06-12"},
	}

	for _, d := range []string{"2024-06-10", "2024-06-11", "2024-06-12"} {
		assert.Len(t, EventsForDate(events, date(d)), 1, "expected event on %s", d)
	}
	assert.Empty(t, EventsForDate(events, date("2024-06-09")))
	assert.Empty(t, EventsForDate(events, date("2024-06-13")))
}

func TestEventsForDateSkipsMalformed(t *testing.T) {
	events := []Event{
		{ID: 1, StartDate: "bogus", EndDate: "2024-06-12"},
		{ID: 2, StartDate: "2024-06-10", EndDate: "2024-06-12"},
	}
	matched := EventsForDate(events, date("2024-06-11"))
	assert.Len(t, matched, 1)
	assert.Equal(t, uint(2), matched[0].ID)
}

func TestNavigate(t *testing.T) {
	current := date("2024-06-15")

	assert.Equal(t, date("2024-07-15"), Navigate(ViewMonth, current, 1))
	assert.Equal(t, date("2024-05-15"), Navigate(ViewMonth, current, -1))
	assert.Equal(t, date("2024-06-22"), Navigate(ViewWeek, current, 1))
	assert.Equal(t, date("2024-06-08"), Navigate(ViewWeek, current, -1))
}

func TestNavigateClampsAtMonthEnd(t *testing.T) {
	// Jan 31 forward must land in February, not roll through to March.
	assert.Equal(t, date("2024-02-29"), Navigate(ViewMonth, date("2024-01-31"), 1))
	assert.Equal(t, date("2023-02-28"), Navigate(ViewMonth, date("2023-01-31"), 1))
	assert.Equal(t, date("2024-02-29"), Navigate(ViewMonth, date("2024-03-31"), -1))
	assert.Equal(t, date("2024-06-30"), Navigate(ViewMonth, date("2024-05-31"), 1))

	// A clamped cursor still reaches every month in sequence.
	cursor := date("2024-01-31")
	for _, want := range []time.Month{time.February, time.March, time.April} {
		cursor = Navigate(ViewMonth, cursor, 1)
		assert.Equal(t, want, cursor.Month())
	}
}

func TestColorForCustomerStable(t *testing.T) {
	for _, id := range []uint{1, 2, 42, 999, 12345} {
		first := ColorForCustomer(id)
		second := ColorForCustomer(id)
		assert.Equal(t, first, second)
		assert.Contains(t, palette, first)
	}
}

func TestVisibleLimit(t *testing.T) {
	assert.Equal(t, 4, VisibleLimit(ViewMonth))
	assert.Equal(t, 8, VisibleLimit(ViewWeek))
}
