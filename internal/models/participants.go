package models

// Participants holds a participant-count bracket such as "1-9" or "20+".
type Participants struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Amount string `gorm:"size:10;uniqueIndex;not null" json:"amount"`
}
