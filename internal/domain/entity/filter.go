package entity

import (
	"strings"

	"github.com/google/uuid"
)

// DoctorOrderPrice orders doctors by ascending price; prefix with "-" for descending
const DoctorOrderPrice = "price"

// DoctorFilter is a domain-level filter for querying doctors.
// Used by repository layer to avoid coupling with delivery DTOs.
type DoctorFilter struct {
	Search   string // Substring match over price and working days (ILIKE)
	PriceGT  *int
	PriceLT  *int
	Ordering string // "price", "-price" or empty
	Limit    int
	Offset   int
}

// NameFilter filters departments and specialties by name.
type NameFilter struct {
	Search string
	Limit  int
	Offset int
}

// ScopeFilter restricts per-actor lists to rows linked to a patient and/or doctor.
// A nil ID means no restriction on that side.
type ScopeFilter struct {
	PatientID *uuid.UUID
	DoctorID  *uuid.UUID
	Limit     int
	Offset    int
}

// SearchTerms splits a search string the way list endpoints expect:
// whitespace and commas separate terms and every term must match.
func SearchTerms(search string) []string {
	return strings.FieldsFunc(search, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}
