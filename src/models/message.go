package models

import (
	"time"

	"github.com/Ja5ya/wanderlust-whisper-drafts-sub000/src/types"
)

// InboxMessage is an incoming email or WhatsApp message. A generated draft
// reply is stored alongside it until an agent sends or discards it.
type InboxMessage struct {
	ID          uint            `gorm:"primarykey" json:"id"`
	CustomerID  *uint           `json:"customer_id,omitempty"`
	Channel     string          `json:"channel,omitempty"`
	FromAddress string          `json:"from,omitempty"`
	Subject     *string         `json:"subject,omitempty"`
	Body        string          `json:"body,omitempty"`
	Status      string          `gorm:"default:'unread'" json:"status,omitempty"`
	DraftBody   *string         `json:"draft_body,omitempty"`
	DraftedAt   *time.Time      `json:"drafted_at,omitempty"`
	Metadata    *types.Metadata `gorm:"type:jsonb" json:"metadata,omitempty"`

	Customer *Customer `gorm:"foreignKey:customer_id" json:"customer,omitempty"`

	types.Timestamps
}
