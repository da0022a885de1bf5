package dto

// BookingRow is the flattened read model for one booking.
type BookingRow struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	PhoneNumber  string `json:"phone_number"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	PostalCode   string `json:"postal_code"`
	City         string `json:"city"`
	Date         string `json:"date"`
	Status       string `json:"status"`
	Participants string `json:"participants"`
	Time         string `json:"time"` // rendered "start-end", e.g. "0800-1100"
}
