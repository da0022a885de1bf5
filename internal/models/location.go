package models

import "time"

// Location is unique per (address, postal code) pair; the same street
// address may repeat across postal codes.
type Location struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Address    string `gorm:"size:255;not null;uniqueIndex:idx_locations_address_postal" json:"address"`
	PostalCode string `gorm:"size:10;not null;uniqueIndex:idx_locations_address_postal" json:"postal_code"`
	City       string `gorm:"size:100;not null" json:"city"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
