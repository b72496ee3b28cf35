package models

import "time"

type AdminInvitation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	InvitedEmail string `gorm:"size:100;index;not null" json:"invited_email"`
	InvitedBy    uint   `json:"invited_by"`
	Status       string `gorm:"size:20;default:'pending'" json:"status"`
	ExpiresAt    time.Time `json:"expires_at"`

	CreatedAt time.Time `json:"created_at"`
}
