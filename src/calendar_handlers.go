package main

import (
	"net/http"
	"time"

	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/config"
	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/db"
	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/models"
	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/travel"
	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/types"
	"github.com/gin-gonic/gin"
)

type calendarCell struct {
	Date   string         `json:"date"`
	Events []travel.Event `json:"events"`
	More   int            `json:"more"`
	Today  bool           `json:"today"`
}

// loadCalendarEvents pulls every non-cancelled booking overlapping [first, last]
// and projects it onto calendar events with the customer's stable color.
func loadCalendarEvents(first, last time.Time) ([]travel.Event, error) {
	type row struct {
		ID           uint
		CustomerID   uint
		CustomerName string
		Destination  string
		StartDate    string
		EndDate      string
		Status       string
	}
	var rows []row
	db := db.GetDb()
	err := db.
		Model(&models.Booking{}).
		Select("bookings.id, bookings.customer_id, customers.name AS customer_name, bookings.destination, bookings.start_date, bookings.end_date, bookings.status").
		Joins("LEFT JOIN customers ON customers.id = bookings.customer_id").
		Where("bookings.start_date <= ? AND bookings.end_date >= ?", last.Format(config.DATE_PARSE_FORMAT), first.Format(config.DATE_PARSE_FORMAT)).
		Where("bookings.status <> ?", types.BOOKING_CANCELED).
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}
	events := make([]travel.Event, 0, len(rows))
	for _, r := range rows {
		name := r.CustomerName
		if name == "" {
			name = "Unknown"
		}
		events = append(events, travel.Event{
			ID:           r.ID,
			CustomerID:   r.CustomerID,
			CustomerName: name,
			Destination:  r.Destination,
			StartDate:    r.StartDate,
			EndDate:      r.EndDate,
			Status:       r.Status,
			Color:        travel.ColorForCustomer(r.CustomerID),
		})
	}
	return events, nil
}

func calendarHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/calendar", func(ctx *gin.Context) {
			var query types.CalendarQuery
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			view := travel.View(query.View)
			if view != travel.ViewWeek {
				view = travel.ViewMonth
			}
			today := travel.Day(time.Now())
			current := today
			if d := travel.ParseDate(query.Date); d != nil {
				current = *d
			}
			days := travel.Days(view, current)
			events, err := loadCalendarEvents(days[0], days[len(days)-1])
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			limit := travel.VisibleLimit(view)
			cells := make([]calendarCell, 0, len(days))
			for _, day := range days {
				evs := travel.EventsForDate(events, day)
				more := 0
				if len(evs) > limit {
					more = len(evs) - limit
					evs = evs[:limit]
				}
				cells = append(cells, calendarCell{
					Date:   day.Format(config.DATE_PARSE_FORMAT),
					Events: evs,
					More:   more,
					Today:  day.Equal(today),
				})
			}
			ctx.JSON(http.StatusOK, gin.H{
				"view":    view,
				"date":    current.Format(config.DATE_PARSE_FORMAT),
				"today":   today.Format(config.DATE_PARSE_FORMAT),
				"prev":    travel.Navigate(view, current, -1).Format(config.DATE_PARSE_FORMAT),
				"next":    travel.Navigate(view, current, 1).Format(config.DATE_PARSE_FORMAT),
				"cells":   cells,
				"maxRows": limit,
			})
		}).
		GET("/calendar/day/:date", func(ctx *gin.Context) {
			var params struct {
				Date string `uri:"date" binding:"required"`
			}
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			day := travel.ParseDate(params.Date)
			if day == nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
				return
			}
			events, err := loadCalendarEvents(*day, *day)
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			// The selected-day panel always shows the untruncated list.
			matched := travel.EventsForDate(events, *day)
			ctx.JSON(http.StatusOK, gin.H{"data": matched, "count": len(matched)})
		})
	return g
}
