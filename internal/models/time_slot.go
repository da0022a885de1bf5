package models

// TimeSlot start and end are 4-character clock strings ("0800", "1100").
type TimeSlot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StartTime string `gorm:"size:4;not null" json:"start_time"`
	EndTime   string `gorm:"size:4;not null" json:"end_time"`
}
