package models

import "time"

type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	BarberID string `gorm:"size:36;index" json:"barber_id"`
	Barber   User   `gorm:"foreignKey:BarberID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	ClientID string `gorm:"size:36;index" json:"client_id"`
	Client   User   `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	SlotID string   `gorm:"size:36;index" json:"slot_id"`
	Slot   TimeSlot `gorm:"foreignKey:SlotID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"slot"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	DeclinedAt  *time.Time `json:"declined_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
