package domain

// Dentist represents a clinic dentist. Only active dentists participate
// in capacity computation and new booking assignment; historical
// bookings referencing inactive dentists remain valid.
type Dentist struct {
	ID     int64
	Code   string
	Name   string
	Phone  *string
	Active bool
}

// ClinicService is a catalog service bookings may reference.
type ClinicService struct {
	ID     int64
	NameTH string
	Active bool
}
