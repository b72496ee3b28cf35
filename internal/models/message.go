package models

import "time"

// Messages are append-only: never updated or deleted in normal operation.
type Message struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ConversationID string `gorm:"size:100;index;not null" json:"conversation_id"`

	SenderID uint    `json:"sender_id"`
	Sender   Profile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"sender"`

	Content string `gorm:"size:2000;not null" json:"content"`
	Read    bool   `gorm:"default:false" json:"read"`

	CreatedAt time.Time `json:"created_at"`
}
