package models

import "time"

// Perfil público do barbeiro, exibido na busca
type BarberProfile struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	BarberID string `gorm:"size:36;uniqueIndex" json:"barber_id"`
	Barber   User   `gorm:"foreignKey:BarberID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"barber"`

	Description string  `gorm:"size:255" json:"description"`
	PhotoURL    string  `gorm:"size:255" json:"photo_url"`
	Rating      float64 `gorm:"default:0" json:"rating"`
	Approved    bool    `gorm:"default:false" json:"approved"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
