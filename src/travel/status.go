package travel

import (
	"time"

	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/config"
	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/models"
	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/types"
)

// Window is the date range used to decide a customer's current lifecycle
// status. It comes either from a booking or from the customer's own primary
// trip dates.
type Window struct {
	Start       time.Time `json:"start_date"`
	End         time.Time `json:"end_date"`
	Destination string    `json:"destination,omitempty"`
	Status      string    `json:"status,omitempty"`
	TotalAmount float64   `json:"total_amount"`
	BookingID   uint      `json:"booking_id,omitempty"`
	FromBooking bool      `json:"from_booking"`
}

// Day truncates t to midnight, date-only.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string. A malformed or empty value yields nil:
// the caller falls through to its next precedence rule instead of failing.
func ParseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(config.DATE_PARSE_FORMAT, s)
	if err != nil {
		return nil
	}
	d := Day(t)
	return &d
}

func parseDatePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	return ParseDate(*s)
}

func bookingWindow(b models.Booking) *Window {
	start := ParseDate(b.StartDate)
	end := ParseDate(b.EndDate)
	if start == nil || end == nil {
		return nil
	}
	return &Window{
		Start:       *start,
		End:         *end,
		Destination: b.Destination,
		Status:      b.Status,
		TotalAmount: b.TotalAmount,
		BookingID:   b.ID,
		FromBooking: true,
	}
}

func customerWindow(c models.Customer) *Window {
	start := parseDatePtr(c.StartDate)
	end := parseDatePtr(c.EndDate)
	if start == nil || end == nil {
		return nil
	}
	w := &Window{Start: *start, End: *end, Status: c.Status}
	if c.Destination != nil {
		w.Destination = *c.Destination
	}
	if c.Value != nil {
		w.TotalAmount = *c.Value
	}
	return w
}

func contains(w *Window, day time.Time) bool {
	return w != nil && !day.Before(w.Start) && !day.After(w.End)
}

// referenceWindow picks the window that decides the customer's status, in
// order: a booking containing today, the customer's own window containing
// today, the earliest future booking (lowest id on a start-date tie), the
// customer's primary dates, and finally the most recent past booking.
// Cancelled bookings never participate, same as on the calendar.
func referenceWindow(c models.Customer, bookings []models.Booking, today time.Time) *Window {
	var future *Window
	var past *Window
	for _, b := range bookings {
		if b.Status == string(types.BOOKING_CANCELED) {
			continue
		}
		w := bookingWindow(b)
		if w == nil {
			continue
		}
		if contains(w, today) {
			return w
		}
		if w.Start.After(today) {
			if future == nil || w.Start.Before(future.Start) ||
				(w.Start.Equal(future.Start) && w.BookingID < future.BookingID) {
				future = w
			}
		}
		if w.End.Before(today) {
			if past == nil || w.End.After(past.End) {
				past = w
			}
		}
	}
	if cw := customerWindow(c); contains(cw, today) {
		return cw
	}
	if future != nil {
		return future
	}
	if cw := customerWindow(c); cw != nil {
		return cw
	}
	return past
}

// ResolveStatus computes the single display status for a customer from its
// bookings and the injected clock. Pure: same (customer, bookings, today)
// always yields the same answer.
func ResolveStatus(c models.Customer, bookings []models.Booking, today time.Time) string {
	today = Day(today)
	w := referenceWindow(c, bookings, today)
	if w == nil {
		return c.Status
	}
	if contains(w, today) {
		return string(types.TRAVEL_TRAVELING)
	}
	if w.Start.After(today) {
		if w.FromBooking && w.Status == string(types.BOOKING_CONFIRMED) && w.TotalAmount > 0 {
			return string(types.TRAVEL_ACTIVE)
		}
		if c.Status == string(types.TRAVEL_ACTIVE) {
			return string(types.TRAVEL_ACTIVE)
		}
		return string(types.TRAVEL_PLANNING)
	}
	return string(types.TRAVEL_COMPLETED)
}

// NextTravelWindow returns the booking shown as "upcoming travel" next to a
// customer row: the earliest booking starting on or after today, the lowest
// booking id breaking a start-date tie. With no such booking the customer's
// own primary dates stand in; nil means no travel dates at all.
func NextTravelWindow(c models.Customer, bookings []models.Booking, today time.Time) *Window {
	today = Day(today)
	var next *Window
	for _, b := range bookings {
		if b.Status == string(types.BOOKING_CANCELED) {
			continue
		}
		w := bookingWindow(b)
		if w == nil || w.Start.Before(today) {
			continue
		}
		if next == nil || w.Start.Before(next.Start) ||
			(w.Start.Equal(next.Start) && w.BookingID < next.BookingID) {
			next = w
		}
	}
	if next != nil {
		return next
	}
	return customerWindow(c)
}
