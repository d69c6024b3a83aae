package valueobjects

import "strconv"

// ModelID is a value object representing a unique model identifier.
// Identifiers are assigned by the persistence collaborator; zero means
// "no model", which is how an absent parent reference is encoded.
type ModelID int64

// NewModelID creates a ModelID from a raw identifier
func NewModelID(id int64) ModelID {
	return ModelID(id)
}

// String returns the string representation of the ModelID
func (id ModelID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Equals checks if two ModelIDs are equal
func (id ModelID) Equals(other ModelID) bool {
	return id == other
}

// IsZero checks if the ModelID is the zero value
func (id ModelID) IsZero() bool {
	return id == 0
}
