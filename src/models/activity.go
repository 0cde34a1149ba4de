package models

import "github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/types"

type Activity struct {
	ID            uint    `gorm:"primarykey" json:"id"`
	Name          string  `json:"name,omitempty"`
	Destination   string  `json:"destination,omitempty"`
	Description   *string `json:"description,omitempty"`
	DurationHours uint    `json:"duration_hours,omitempty"`

	Rates []ActivityRate `gorm:"foreignKey:activity_id" json:"rates,omitempty"`

	types.Timestamps
}

type ActivityRate struct {
	ID             uint    `gorm:"primarykey" json:"id"`
	ActivityID     uint    `json:"activity_id,omitempty"`
	PricePerPerson float64 `json:"price_per_person"`
	MinPeople      uint    `json:"min_people,omitempty"`
	Currency       string  `gorm:"default:'USD'" json:"currency,omitempty"`

	types.Timestamps
}
