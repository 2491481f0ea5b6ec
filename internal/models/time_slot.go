package models

import "time"

type TimeSlot struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	BarberID string `gorm:"size:36;index;uniqueIndex:idx_barber_date_time" json:"barber_id"`
	Barber   User   `gorm:"foreignKey:BarberID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Date string `gorm:"size:10;uniqueIndex:idx_barber_date_time" json:"date"` // YYYY-MM-DD
	Time string `gorm:"size:5;uniqueIndex:idx_barber_date_time" json:"time"`  // HH:MM

	Available bool `gorm:"default:true" json:"available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
