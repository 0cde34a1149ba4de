package models

import "github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/types"

type Hotel struct {
	ID           uint    `gorm:"primarykey" json:"id"`
	Name         string  `json:"name,omitempty"`
	Destination  string  `json:"destination,omitempty"`
	Category     string  `json:"category,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty"`

	Rates []HotelRate `gorm:"foreignKey:hotel_id" json:"rates,omitempty"`

	types.Timestamps
}

type HotelRate struct {
	ID          uint    `gorm:"primarykey" json:"id"`
	HotelID     uint    `json:"hotel_id,omitempty"`
	RoomType    string  `json:"room_type,omitempty"`
	SeasonStart string  `json:"season_start,omitempty"`
	SeasonEnd   string  `json:"season_end,omitempty"`
	NightlyRate float64 `json:"nightly_rate"`
	Currency    string  `gorm:"default:'USD'" json:"currency,omitempty"`

	types.Timestamps
}
