package travel

import (
	"testing"
	"time"

	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/models"
	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string {
	return &s
}

func date(s string) time.Time {
	d := ParseDate(s)
	if d == nil {
		panic("bad test date: " + s)
	}
	return *d
}

func TestResolveStatusTravelingBooking(t *testing.T) {
	customer := models.Customer{ID: 1, Status: "Planning"}
	bookings := []models.Booking{
		{ID: 1, CustomerID: 1, StartDate: "2024-01-01", EndDate: "2024-01-05", Status: "Confirmed", TotalAmount: 5000},
	}
	status := ResolveStatus(customer, bookings, date("2024-01-03"))
	assert.Equal(t, "Traveling", status)
}

func TestResolveStatusTravelingOnBoundaries(t *testing.T) {
	customer := models.Customer{ID: 1, Status: "Planning"}
	bookings := []models.Booking{
		{ID: 1, StartDate: "2024-01-01", EndDate: "2024-01-05"},
	}
	assert.Equal(t, "Traveling", ResolveStatus(customer, bookings, date("2024-01-01")))
	assert.Equal(t, "Traveling", ResolveStatus(customer, bookings, date("2024-01-05")))
	assert.NotEqual(t, "Traveling", ResolveStatus(customer, bookings, date("2024-01-06")))
}

func TestResolveStatusConfirmedPaidFutureBooking(t *testing.T) {
	customer := models.Customer{ID: 1, Status: "Lead"}
	bookings := []models.Booking{
		{ID: 1, StartDate: "2024-07-01", EndDate: "2024-07-10", Status: "Confirmed", TotalAmount: 2500},
	}
	status := ResolveStatus(customer, bookings, date("2024-06-01"))
	assert.Equal(t, "Active", status)
}

func TestResolveStatusUnconfirmedFutureBooking(t *testing.T) {
	bookings := []models.Booking{
		{ID: 1, StartDate: "2024-07-01", EndDate: "2024-07-10", Status: "Pending", TotalAmount: 0},
	}

	planning := models.Customer{ID: 1, Status: "Planning"}
	assert.Equal(t, "Planning", ResolveStatus(planning, bookings, date("2024-06-01")))

	// A customer already marked Active keeps it even without a paid booking.
	active := models.Customer{ID: 2, Status: "Active"}
	assert.Equal(t, "Active", ResolveStatus(active, bookings, date("2024-06-01")))
}

func TestResolveStatusConfirmedButUnpaidFutureBooking(t *testing.T) {
	customer := models.Customer{ID: 1, Status: "Planning"}
	bookings := []models.Booking{
		{ID: 1, StartDate: "2024-07-01", EndDate: "2024-07-10", Status: "Confirmed", TotalAmount: 0},
	}
	assert.Equal(t, "Planning", ResolveStatus(customer, bookings, date("2024-06-01")))
}

func TestResolveStatusAllBookingsPast(t *testing.T) {
	customer := models.Customer{ID: 1, Status: "Active"}
	bookings := []models.Booking{
		{ID: 1, StartDate: "2023-03-01", EndDate: "2023-03-10", Status: "Confirmed", TotalAmount: 3000},
		{ID: 2, StartDate: "2023-09-01", EndDate: "2023-09-05", Status: "Confirmed", TotalAmount: 1500},
	}
	assert.Equal(t, "Completed", ResolveStatus(customer, bookings, date("2024-06-01")))
}

func TestResolveStatusNoWindowKeepsStoredStatus(t *testing.T) {
	customer := models.Customer{ID: 1, Status: "Qualified Lead"}
	first := ResolveStatus(customer, nil, date("2024-06-01"))
	second := ResolveStatus(customer, nil, date("2024-06-01"))
	assert.Equal(t, "Qualified Lead", first)
	assert.Equal(t, first, second)
}

func TestResolveStatusCustomerPrimaryDatesFallback(t *testing.T) {
	customer := models.Customer{
		ID:        1,
		Status:    "Planning",
		StartDate: strptr("2024-12-01"),
		EndDate:   strptr("2024-12-10"),
	}
	assert.Equal(t, "Planning", ResolveStatus(customer, nil, date("2024-06-01")))

	customer.Status = "Active"
	assert.Equal(t, "Active", ResolveStatus(customer, nil, date("2024-06-01")))

	// Primary dates containing today override the stored label entirely.
	assert.Equal(t, "Traveling", ResolveStatus(customer, nil, date("2024-12-05")))

	// And fully past primary dates read as a finished trip.
	assert.Equal(t, "Completed", ResolveStatus(customer, nil, date("2025-02-01")))
}

func TestResolveStatusMalformedDatesFallThrough(t *testing.T) {
	customer := models.Customer{ID: 1, Status: "Planning", StartDate: strptr("not-a-date"), EndDate: strptr("2024-12-10")}
	bookings := []models.Booking{
		{ID: 1, StartDate: "06/15/2024", EndDate: "garbage"},
	}
	assert.NotPanics(t, func() {
		status := ResolveStatus(customer, bookings, date("2024-06-01"))
		assert.Equal(t, "Planning", status)
	})
}

func TestResolveStatusFutureBookingBeatsPrimaryDates(t *testing.T) {
	customer := models.Customer{
		ID:        1,
		Status:    "Planning",
		StartDate: strptr("2025-01-01"),
		EndDate:   strptr("2025-01-10"),
	}
	bookings := []models.Booking{
		{ID: 9, StartDate: "2024-08-01", EndDate: "2024-08-05", Status: "Confirmed", TotalAmount: 900},
	}
	assert.Equal(t, "Active", ResolveStatus(customer, bookings, date("2024-06-01")))
}

func TestResolveStatusIgnoresCancelledBookings(t *testing.T) {
	customer := models.Customer{ID: 1, Status: "Planning"}

	// A cancelled booking spanning today must not read as Traveling.
	spanning := []models.Booking{
		{ID: 1, StartDate: "2024-06-01", EndDate: "2024-06-10", Status: "Cancelled", TotalAmount: 4000},
	}
	assert.Equal(t, "Planning", ResolveStatus(customer, spanning, date("2024-06-05")))

	// A cancelled future booking must not pull the customer forward either.
	future := []models.Booking{
		{ID: 2, StartDate: "2024-08-01", EndDate: "2024-08-10", Status: "Cancelled", TotalAmount: 4000},
	}
	assert.Equal(t, "Planning", ResolveStatus(customer, future, date("2024-06-05")))
}

func TestNextTravelWindowIgnoresCancelledBookings(t *testing.T) {
	customer := models.Customer{ID: 1}
	bookings := []models.Booking{
		{ID: 1, StartDate: "2024-07-01", EndDate: "2024-07-05", Status: "Cancelled"},
		{ID: 2, StartDate: "2024-09-01", EndDate: "2024-09-10", Status: "Pending"},
	}
	w := NextTravelWindow(customer, bookings, date("2024-06-01"))
	assert.NotNil(t, w)
	assert.Equal(t, uint(2), w.BookingID)
}

func TestNextTravelWindowPicksEarliestFuture(t *testing.T) {
	customer := models.Customer{ID: 1}
	bookings := []models.Booking{
		{ID: 3, StartDate: "2024-09-01", EndDate: "2024-09-10"},
		{ID: 1, StartDate: "2024-07-01", EndDate: "2024-07-05"},
		{ID: 2, StartDate: "2023-01-01", EndDate: "2023-01-05"},
	}
	w := NextTravelWindow(customer, bookings, date("2024-06-01"))
	assert.NotNil(t, w)
	assert.Equal(t, uint(1), w.BookingID)
	assert.True(t, w.FromBooking)
}

func TestNextTravelWindowTieBreaksOnLowestID(t *testing.T) {
	customer := models.Customer{ID: 1}
	bookings := []models.Booking{
		{ID: 7, StartDate: "2024-07-01", EndDate: "2024-07-09"},
		{ID: 4, StartDate: "2024-07-01", EndDate: "2024-07-05"},
	}
	w := NextTravelWindow(customer, bookings, date("2024-06-01"))
	assert.NotNil(t, w)
	assert.Equal(t, uint(4), w.BookingID)
}

func TestNextTravelWindowIncludesBookingStartingToday(t *testing.T) {
	customer := models.Customer{ID: 1}
	bookings := []models.Booking{
		{ID: 1, StartDate: "2024-06-01", EndDate: "2024-06-07"},
	}
	w := NextTravelWindow(customer, bookings, date("2024-06-01"))
	assert.NotNil(t, w)
	assert.Equal(t, uint(1), w.BookingID)
}

func TestNextTravelWindowSyntheticFromCustomer(t *testing.T) {
	customer := models.Customer{
		ID:          1,
		Status:      "Planning",
		Destination: strptr("Cusco"),
		Value:       func() *float64 { v := 1800.0; return &v }(),
		StartDate:   strptr("2024-12-01"),
		EndDate:     strptr("2024-12-10"),
	}
	w := NextTravelWindow(customer, nil, date("2024-06-01"))
	assert.NotNil(t, w)
	assert.False(t, w.FromBooking)
	assert.Equal(t, "Cusco", w.Destination)
	assert.Equal(t, 1800.0, w.TotalAmount)
}

func TestNextTravelWindowNone(t *testing.T) {
	customer := models.Customer{ID: 1, Status: "Planning"}
	assert.Nil(t, NextTravelWindow(customer, nil, date("2024-06-01")))
}

func TestParseDateMalformed(t *testing.T) {
	assert.Nil(t, ParseDate(""))
	assert.Nil(t, ParseDate("15-06-2024"))
	assert.Nil(t, ParseDate("2024-13-40"))
	assert.NotNil(t, ParseDate("2024-06-15"))
}
