package domain

import "time"

// MedicineType is the coarse dosage-form classification derived from a
// medicine's product name.
type MedicineType string

const (
	TypeTablet MedicineType = "Tablet"
	TypeSyrup  MedicineType = "Syrup"
	TypeOther  MedicineType = "Other"
)

// TypeFilter narrows a recommendation query to a single medicine type.
// FilterAll is the sentinel that disables type filtering.
type TypeFilter string

const (
	FilterAll    TypeFilter = "All"
	FilterTablet TypeFilter = TypeFilter(TypeTablet)
	FilterSyrup  TypeFilter = TypeFilter(TypeSyrup)
	FilterOther  TypeFilter = TypeFilter(TypeOther)
)

// Matches reports whether a medicine of type t passes the filter.
func (f TypeFilter) Matches(t MedicineType) bool {
	return f == FilterAll || TypeFilter(t) == f
}

// Medicine is one usable catalog entry. TreatsRaw is the first treatment
// clause extracted from the description; Treats is its normalized form.
type Medicine struct {
	Name         string       `json:"name"`
	Manufacturer string       `json:"manufacturer"`
	Description  string       `json:"description"`
	TreatsRaw    string       `json:"treatsRaw"`
	Treats       string       `json:"treats"`
	Type         MedicineType `json:"type"`
}

type User struct {
	PatientID    string    `json:"patientId"`
	Name         string    `json:"name"`
	PhoneNumber  string    `json:"phoneNumber"`
	Location     string    `json:"location"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SearchEntry is one append-only search-history record.
type SearchEntry struct {
	ID         int64     `json:"id"`
	PatientID  string    `json:"patientId"`
	Query      string    `json:"query"`
	SearchedAt time.Time `json:"searchedAt"`
}
