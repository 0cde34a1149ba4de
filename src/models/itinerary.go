package models

import "github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/types"

type Itinerary struct {
	ID            uint    `gorm:"primarykey" json:"id"`
	CustomerID    uint    `json:"customer_id,omitempty"`
	Title         string  `json:"title,omitempty"`
	Slug          string  `gorm:"index" json:"slug,omitempty"`
	Destination   string  `json:"destination,omitempty"`
	Status        string  `gorm:"default:'draft'" json:"status,omitempty"`
	MarkupPercent float64 `json:"markup_percent"`

	Customer *Customer      `gorm:"foreignKey:customer_id" json:"customer,omitempty"`
	Days     []ItineraryDay `gorm:"foreignKey:itinerary_id" json:"days,omitempty"`

	types.Timestamps
}

type ItineraryDay struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	ItineraryID uint   `json:"itinerary_id,omitempty"`
	DayNumber   uint   `json:"day_number"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`

	Items []ItineraryItem `gorm:"foreignKey:itinerary_day_id" json:"items,omitempty"`

	types.Timestamps
}

type ItineraryItem struct {
	ID             uint    `gorm:"primarykey" json:"id"`
	ItineraryDayID uint    `json:"itinerary_day_id,omitempty"`
	Description    string  `json:"description,omitempty"`
	UnitPrice      float64 `json:"unit_price"`
	Qty            uint    `json:"qty"`

	types.Timestamps
}
