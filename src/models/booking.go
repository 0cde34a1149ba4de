package models

import "github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/types"

type Booking struct {
	ID               uint    `gorm:"primarykey" json:"id"`
	CustomerID       uint    `json:"customer_id,omitempty"`
	Destination      string  `json:"destination,omitempty"`
	StartDate        string  `json:"start_date,omitempty"`
	EndDate          string  `json:"end_date,omitempty"`
	Status           string  `gorm:"default:'Pending'" json:"status,omitempty"`
	TotalAmount      float64 `json:"total_amount"`
	BookingReference string  `gorm:"uniqueIndex" json:"booking_reference,omitempty"`
	PaymentLinkURL   *string `json:"payment_link_url,omitempty"`
	HotelID          *uint   `json:"hotel_id,omitempty"`

	Customer *Customer `gorm:"foreignKey:customer_id" json:"customer,omitempty"`
	Hotel    *Hotel    `gorm:"foreignKey:hotel_id" json:"hotel,omitempty"`

	types.Timestamps
}
