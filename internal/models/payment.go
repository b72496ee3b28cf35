package models

import "time"

type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID uint    `json:"booking_id"`
	Booking   Booking `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"booking"`

	Amount float64 `json:"amount"`
	Method string  `gorm:"size:20;default:'card'" json:"method"`
	Status string  `gorm:"size:20;default:'pending'" json:"status"`

	// Payment-intent id for card payments, local reference for manual ones.
	ProcessorRef string `gorm:"size:100;index" json:"processor_ref"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
