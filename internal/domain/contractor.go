package domain

// Contractor is a directory entry for an assignable repair company. Immutable
// from the claim's perspective; claims reference it by ID.
type Contractor struct {
	ID          string
	CompanyName string
	ContactName string
	Email       string
	Specialty   string
}
