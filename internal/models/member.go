package models

// Member represents a restaurant membership record.
type Member struct {
	// ID is the membership number ("1166" + unpadded suffix).
	ID string

	// Name is the holder's name, free text.
	Name string

	// Frequency counts visits, including the enrollment visit.
	Frequency int

	// Phone is the contact number, digits only.
	Phone string
}
