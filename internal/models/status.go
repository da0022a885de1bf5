package models

type Status struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StatusText string `gorm:"size:20;uniqueIndex;not null" json:"status_text"`
}
