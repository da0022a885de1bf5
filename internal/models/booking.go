package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date string `gorm:"size:20;uniqueIndex;not null" json:"date"`

	StatusID uint   `json:"status_id"`
	Status   Status `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"status"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	ParticipantsID uint         `json:"participants_id"`
	Participants   Participants `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"participants"`

	TimeSlotID uint     `json:"time_slot_id"`
	TimeSlot   TimeSlot `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"time_slot"`

	LocationID uint     `json:"location_id"`
	Location   Location `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"location"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
