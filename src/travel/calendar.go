package travel

import (
	"fmt"
	"hash/fnv"
	"time"
)

type View string

const (
	ViewMonth View = "month"
	ViewWeek  View = "week"
)

// Event is the projection of a booking onto the calendar grid.
type Event struct {
	ID           uint   `json:"id"`
	CustomerID   uint   `json:"customer_id"`
	CustomerName string `json:"customer_name,omitempty"`
	Destination  string `json:"destination,omitempty"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Status       string `json:"status,omitempty"`
	Color        string `json:"color,omitempty"`
}

var palette = [10]string{
	"#2563eb", // blue
	"#16a34a", // green
	"#d97706", // amber
	"#dc2626", // red
	"#7c3aed", // violet
	"#0891b2", // cyan
	"#db2777", // pink
	"#65a30d", // lime
	"#ea580c", // orange
	"#0f766e", // teal
}

// ColorForCustomer maps a customer id onto a fixed 10-color palette. The hash
// depends only on the id, so a customer keeps its color across sessions.
func ColorForCustomer(id uint) string {
	h := fnv.New32a()
	fmt.Fprintf(h, "%d", id)
	return palette[h.Sum32()%uint32(len(palette))]
}

func startOfWeek(day time.Time) time.Time {
	for day.Weekday() != time.Monday {
		day = day.AddDate(0, 0, -1)
	}
	return day
}

// Days returns the visible grid for a view. Month view runs from the Monday
// on or before the 1st through the Sunday on or after the last day, always a
// multiple of 7. Week view is Monday through Sunday around current.
func Days(view View, current time.Time) []time.Time {
	current = Day(current)
	if view == ViewWeek {
		day := startOfWeek(current)
		days := make([]time.Time, 0, 7)
		for i := 0; i < 7; i++ {
			days = append(days, day.AddDate(0, 0, i))
		}
		return days
	}
	first := time.Date(current.Year(), current.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	day := startOfWeek(first)
	var days []time.Time
	for !day.After(last) || day.Weekday() != time.Monday {
		days = append(days, day)
		day = day.AddDate(0, 0, 1)
	}
	return days
}

// EventsForDate buckets an event onto every day its range overlaps, endpoints
// inclusive. Events with malformed dates are skipped, never surfaced as errors.
func EventsForDate(events []Event, day time.Time) []Event {
	day = Day(day)
	matched := make([]Event, 0)
	for _, e := range events {
		start := ParseDate(e.StartDate)
		end := ParseDate(e.EndDate)
		if start == nil || end == nil {
			continue
		}
		if !day.Before(*start) && !day.After(*end) {
			matched = append(matched, e)
		}
	}
	return matched
}

// Navigate moves the cursor one page in either direction: a week in week view,
// a month in month view. The day component is clamped to the target month so a
// step from Jan 31 lands in February, never rolls through to March.
func Navigate(view View, current time.Time, direction int) time.Time {
	current = Day(current)
	if view == ViewWeek {
		return current.AddDate(0, 0, 7*direction)
	}
	first := time.Date(current.Year(), current.Month(), 1, 0, 0, 0, 0, time.UTC)
	target := first.AddDate(0, direction, 0)
	last := target.AddDate(0, 1, -1)
	day := current.Day()
	if day > last.Day() {
		day = last.Day()
	}
	return time.Date(target.Year(), target.Month(), day, 0, 0, 0, 0, time.UTC)
}

// VisibleLimit is how many events a day cell shows before collapsing the rest
// into a "+K more" counter.
func VisibleLimit(view View) int {
	if view == ViewWeek {
		return 8
	}
	return 4
}
