package models

import (
	"time"

	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/types"
)

// Customer keeps its dates as raw YYYY-MM-DD strings. They arrive from intake
// forms and integrations and are treated as untrusted until parsed.
type Customer struct {
	ID             uint       `gorm:"primarykey" json:"id"`
	Name           string     `json:"name,omitempty"`
	Email          string     `json:"email,omitempty"`
	Phone          *string    `json:"phone,omitempty"`
	Nationality    *string    `json:"nationality,omitempty"`
	Status         string     `gorm:"default:'Planning'" json:"status,omitempty"`
	Destination    *string    `json:"destination,omitempty"`
	TripType       *string    `json:"trip_type,omitempty"`
	NumberOfPeople *uint      `json:"number_of_people,omitempty"`
	Value          *float64   `json:"value,omitempty"`
	StartDate      *string    `json:"start_date,omitempty"`
	EndDate        *string    `json:"end_date,omitempty"`
	LastContact    *time.Time `json:"last_contact,omitempty"`

	Bookings    []Booking   `gorm:"foreignKey:customer_id" json:"bookings,omitempty"`
	Itineraries []Itinerary `gorm:"foreignKey:customer_id" json:"itineraries,omitempty"`

	types.Timestamps
}
