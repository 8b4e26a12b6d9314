package domain

import (
	"errors"
	"strings"
)

var (
	// ErrNoPatientIdentity is returned when a booking resolves to neither
	// a registered patient nor a named walk-in
	ErrNoPatientIdentity = errors.New("domain: booking has no patient identity")

	// ErrAmbiguousPatientIdentity is returned when both a patient id and
	// walk-in fields are populated
	ErrAmbiguousPatientIdentity = errors.New("domain: booking has both registered and walk-in identity")
)

// PatientRef binds a booking to exactly one patient identity: a
// registered patient (by id) or a walk-in described by free-text fields.
type PatientRef struct {
	PatientID *int64

	WalkinNameTH *string
	WalkinNameEN *string
	WalkinPhone  *string
}

// RegisteredPatient builds a reference to an existing patient record.
func RegisteredPatient(patientID int64) PatientRef {
	return PatientRef{PatientID: &patientID}
}

// WalkInPatient builds a reference to a patient known only by name/phone.
func WalkInPatient(nameTH, nameEN, phone *string) PatientRef {
	return PatientRef{WalkinNameTH: nameTH, WalkinNameEN: nameEN, WalkinPhone: phone}
}

// IsRegistered reports whether the reference points at a patient record.
func (r PatientRef) IsRegistered() bool {
	return r.PatientID != nil
}

// hasWalkInName reports whether at least one walk-in name field is
// non-empty after trimming.
func (r PatientRef) hasWalkInName() bool {
	return hasText(r.WalkinNameTH) || hasText(r.WalkinNameEN)
}

// Validate enforces the exactly-one-case invariant: either a patient id,
// or at least one non-empty walk-in name, never both.
func (r PatientRef) Validate() error {
	if r.IsRegistered() {
		if r.hasWalkInName() || hasText(r.WalkinPhone) {
			return ErrAmbiguousPatientIdentity
		}
		return nil
	}
	if !r.hasWalkInName() {
		return ErrNoPatientIdentity
	}
	return nil
}

func hasText(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

// PatientLite is the directory search result shape.
type PatientLite struct {
	ID     int64
	HN     string
	NameTH *string
	NameEN *string
	Phone  *string
}
