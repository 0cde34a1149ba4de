package models

import "github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/types"

type Guide struct {
	ID          uint    `gorm:"primarykey" json:"id"`
	Name        string  `json:"name,omitempty"`
	Destination string  `json:"destination,omitempty"`
	Languages   string  `json:"languages,omitempty"`
	Phone       *string `json:"phone,omitempty"`

	Rates []GuideRate `gorm:"foreignKey:guide_id" json:"rates,omitempty"`

	types.Timestamps
}

type GuideRate struct {
	ID        uint    `gorm:"primarykey" json:"id"`
	GuideID   uint    `json:"guide_id,omitempty"`
	Service   string  `json:"service,omitempty"`
	DailyRate float64 `json:"daily_rate"`
	Currency  string  `gorm:"default:'USD'" json:"currency,omitempty"`

	types.Timestamps
}
